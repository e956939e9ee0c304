package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountsvc/internal/adapter/http/handler"
	"github.com/iho/accountsvc/internal/domain"
	"github.com/iho/accountsvc/internal/usecase"
)

type routerAccountService struct{}

func (routerAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: 1, OwnerID: input.OwnerID, AccountNumber: input.AccountNumber, Currency: input.Currency}, nil
}

func (routerAccountService) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (routerAccountService) ListAccountsByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (routerAccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return &domain.Account{ID: id, OwnerID: 1, Currency: "USD"}, nil
}

func (routerAccountService) UpdateAccount(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: id, OwnerID: 1, Currency: input.Currency}, nil
}

func (routerAccountService) UpdateAccountByOwner(ctx context.Context, ownerID, id int64, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: id, OwnerID: ownerID, Currency: input.Currency}, nil
}

func (routerAccountService) DeleteAccount(ctx context.Context, id int64) error {
	return nil
}

func (routerAccountService) ListBalancesByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (routerAccountService) GetBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (routerAccountService) GetTransactionLimit(ctx context.Context, id int64) decimal.Decimal {
	return usecase.TransactionLimit
}

type routerAuditService struct{}

func (routerAuditService) ListEntries(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.AuditLog, error) {
	return []*domain.AuditLog{}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(RouterConfig{
		AccountHandler: handler.NewAccountHandler(routerAccountService{}),
		AuditHandler:   handler.NewAuditHandler(routerAuditService{}),
		HealthHandler:  handler.NewHealthHandler(nil, nil),
		Logger:         zerolog.Nop(),
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/accounts", http.StatusOK},
		{http.MethodGet, "/api/v1/accounts/7", http.StatusOK},
		{http.MethodGet, "/api/v1/accounts/7/balance", http.StatusOK},
		{http.MethodGet, "/api/v1/accounts/balance?account_id=7", http.StatusOK},
		{http.MethodGet, "/api/v1/accounts/7/limit", http.StatusOK},
		{http.MethodDelete, "/api/v1/accounts/7", http.StatusNoContent},
		{http.MethodGet, "/api/v1/owners/1/accounts", http.StatusOK},
		{http.MethodGet, "/api/v1/owners/1/balances", http.StatusOK},
		{http.MethodGet, "/api/v1/audit", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
		{http.MethodPatch, "/api/v1/accounts/7", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}
