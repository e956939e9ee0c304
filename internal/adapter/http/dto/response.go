package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountsvc/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	AccountID     int64           `json:"account_id"`
	OwnerID       int64           `json:"owner_id"`
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		AccountID:     a.ID,
		OwnerID:       a.OwnerID,
		AccountNumber: a.AccountNumber,
		AccountType:   a.AccountType,
		Balance:       a.Balance,
		Currency:      a.Currency,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// BalanceResponse represents an account balance lookup result.
type BalanceResponse struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransactionLimitResponse reports the per-transaction limit of an account.
type TransactionLimitResponse struct {
	AccountID        int64           `json:"account_id"`
	TransactionLimit decimal.Decimal `json:"transaction_limit"`
}

// OwnerBalanceEntry is one account's balance in an owner-wide overview.
type OwnerBalanceEntry struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
}

// OwnerBalancesResponse lists the balances of all accounts of one owner.
type OwnerBalancesResponse struct {
	OwnerID  int64                `json:"owner_id"`
	Balances []*OwnerBalanceEntry `json:"balances"`
}

// OwnerBalancesFromDomain converts domain accounts to a balance overview.
func OwnerBalancesFromDomain(ownerID int64, accounts []*domain.Account) *OwnerBalancesResponse {
	balances := make([]*OwnerBalanceEntry, len(accounts))
	for i, a := range accounts {
		balances[i] = &OwnerBalanceEntry{
			AccountID: a.ID,
			Balance:   a.Balance,
			Currency:  a.Currency,
		}
	}
	return &OwnerBalancesResponse{OwnerID: ownerID, Balances: balances}
}

// AuditEntryResponse represents an audit trail entry in API responses.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	AccountID int64     `json:"account_id"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditEntriesFromDomain converts domain audit entries to responses.
func AuditEntriesFromDomain(entries []*domain.AuditLog) []*AuditEntryResponse {
	result := make([]*AuditEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = &AuditEntryResponse{
			ID:        e.ID,
			Action:    string(e.Action),
			AccountID: e.AccountID,
			OwnerID:   e.OwnerID,
			CreatedAt: e.CreatedAt,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
