package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accountsvc-cli",
		Short: "Account service CLI tool",
		Long:  `A command line interface for interacting with the account service API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the account service API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	getCmd := &cobra.Command{
		Use:   "get [account-id]",
		Short: "Fetch an account by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON(fmt.Sprintf("/api/v1/accounts/%s", args[0]))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts")
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance [account-id]",
		Short: "Fetch the balance of an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON(fmt.Sprintf("/api/v1/accounts/%s/balance", args[0]))
		},
	}

	limitCmd := &cobra.Command{
		Use:   "limit [account-id]",
		Short: "Fetch the transaction limit of an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON(fmt.Sprintf("/api/v1/accounts/%s/limit", args[0]))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [account-id]",
		Short: "Delete an account by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteAccount(args[0])
		},
	}

	accountCmd.AddCommand(getCmd, listCmd, balanceCmd, limitCmd, deleteCmd)
	rootCmd.AddCommand(accountCmd)

	ownerCmd := &cobra.Command{
		Use:   "owner",
		Short: "Owner operations",
	}

	ownerAccountsCmd := &cobra.Command{
		Use:   "accounts [owner-id]",
		Short: "List accounts of an owner",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON(fmt.Sprintf("/api/v1/owners/%s/accounts", args[0]))
		},
	}

	ownerBalancesCmd := &cobra.Command{
		Use:   "balances [owner-id]",
		Short: "List balances of an owner's accounts",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON(fmt.Sprintf("/api/v1/owners/%s/balances", args[0]))
		},
	}

	ownerCmd.AddCommand(ownerAccountsCmd, ownerBalancesCmd)
	rootCmd.AddCommand(ownerCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return
	}

	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}

func deleteAccount(id string) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/v1/accounts/%s", baseURL, id), nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Delete failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Account deleted")
}
