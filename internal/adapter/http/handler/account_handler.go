package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/accountsvc/internal/adapter/http/dto"
	"github.com/iho/accountsvc/internal/domain"
	"github.com/iho/accountsvc/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
	ListAccountsByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error)
	UpdateAccountByOwner(ctx context.Context, ownerID, id int64, input usecase.UpdateAccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	ListBalancesByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error)
	GetBalance(ctx context.Context, id int64) (decimal.Decimal, error)
	GetTransactionLimit(ctx context.Context, id int64) decimal.Decimal
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
	validate  *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		validate:  validator.New(),
	}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid account payload", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// List lists all accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultListLimit)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// ListByOwner lists the accounts of one owner.
func (h *AccountHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseIDParam(r, "ownerID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid owner ID", err.Error())
		return
	}

	accounts, err := h.accountUC.ListAccountsByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Update replaces the mutable fields of an account addressed by account ID.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	req, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	account, err := h.accountUC.UpdateAccount(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// UpdateByOwner replaces the mutable fields of the account addressed by the
// (owner ID, account ID) pair given as query parameters.
func (h *AccountHandler) UpdateByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseIDQuery(r, "owner_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid owner_id parameter", err.Error())
		return
	}
	id, err := parseIDQuery(r, "account_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account_id parameter", err.Error())
		return
	}

	req, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	account, err := h.accountUC.UpdateAccountByOwner(r.Context(), ownerID, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Delete removes an account by ID.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	if err := h.accountUC.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete account", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Balance returns the balance of the account addressed by the path segment.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	h.writeBalance(w, r, id)
}

// BalanceByQuery returns the balance of the account addressed by the
// account_id query parameter. Resolves to the same lookup as Balance.
func (h *AccountHandler) BalanceByQuery(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDQuery(r, "account_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account_id parameter", err.Error())
		return
	}

	h.writeBalance(w, r, id)
}

// TransactionLimit reports the fixed per-transaction limit for an account.
func (h *AccountHandler) TransactionLimit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	limit := h.accountUC.GetTransactionLimit(r.Context(), id)

	writeJSON(w, http.StatusOK, dto.TransactionLimitResponse{
		AccountID:        id,
		TransactionLimit: limit,
	})
}

// BalancesByOwner returns a balance overview for all accounts of one owner.
func (h *AccountHandler) BalancesByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseIDParam(r, "ownerID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid owner ID", err.Error())
		return
	}

	accounts, err := h.accountUC.ListBalancesByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OwnerBalancesFromDomain(ownerID, accounts))
}

func (h *AccountHandler) writeBalance(w http.ResponseWriter, r *http.Request, id int64) {
	balance, err := h.accountUC.GetBalance(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: id,
		Balance:   balance,
	})
}

func (h *AccountHandler) decodeUpdate(w http.ResponseWriter, r *http.Request) (*dto.UpdateAccountRequest, bool) {
	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid account payload", err.Error())
		return nil, false
	}
	return &req, true
}
