package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/accountsvc/internal/adapter/http/dto"
	"github.com/iho/accountsvc/internal/domain"
	"github.com/iho/accountsvc/internal/usecase"
)

type accountServiceStub struct {
	createFn        func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	listFn          func(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
	listByOwnerFn   func(ctx context.Context, ownerID int64) ([]*domain.Account, error)
	getFn           func(ctx context.Context, id int64) (*domain.Account, error)
	updateFn        func(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error)
	updateByOwnerFn func(ctx context.Context, ownerID, id int64, input usecase.UpdateAccountInput) (*domain.Account, error)
	deleteFn        func(ctx context.Context, id int64) error
	balancesFn      func(ctx context.Context, ownerID int64) ([]*domain.Account, error)
	balanceFn       func(ctx context.Context, id int64) (decimal.Decimal, error)
}

func (s *accountServiceStub) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, input)
}

func (s *accountServiceStub) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error) {
	return s.listFn(ctx, input)
}

func (s *accountServiceStub) ListAccountsByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

func (s *accountServiceStub) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *accountServiceStub) UpdateAccount(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return s.updateFn(ctx, id, input)
}

func (s *accountServiceStub) UpdateAccountByOwner(ctx context.Context, ownerID, id int64, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return s.updateByOwnerFn(ctx, ownerID, id, input)
}

func (s *accountServiceStub) DeleteAccount(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *accountServiceStub) ListBalancesByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
	return s.balancesFn(ctx, ownerID)
}

func (s *accountServiceStub) GetBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	return s.balanceFn(ctx, id)
}

func (s *accountServiceStub) GetTransactionLimit(ctx context.Context, id int64) decimal.Decimal {
	return usecase.TransactionLimit
}

// testRouter mounts the handler the way the real router does, so URL
// parameters resolve.
func testRouter(h *AccountHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/accounts", h.Create)
	r.Get("/accounts", h.List)
	r.Get("/accounts/balance", h.BalanceByQuery)
	r.Put("/accounts/update", h.UpdateByOwner)
	r.Get("/accounts/{id}", h.Get)
	r.Put("/accounts/{id}", h.Update)
	r.Delete("/accounts/{id}", h.Delete)
	r.Get("/accounts/{id}/balance", h.Balance)
	r.Get("/accounts/{id}/limit", h.TransactionLimit)
	r.Get("/owners/{ownerID}/accounts", h.ListByOwner)
	r.Get("/owners/{ownerID}/balances", h.BalancesByOwner)
	return r
}

func TestAccountHandler_Create_Success(t *testing.T) {
	account := &domain.Account{
		ID:            7,
		OwnerID:       1,
		AccountNumber: "AC100",
		AccountType:   "SAVINGS",
		Balance:       decimal.RequireFromString("500.00"),
		Currency:      "USD",
	}

	var captured usecase.CreateAccountInput
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			captured = input
			return account, nil
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{
		OwnerID:       1,
		AccountNumber: "AC100",
		AccountType:   "SAVINGS",
		Balance:       decimal.RequireFromString("500.00"),
		Currency:      "USD",
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.OwnerID != 1 || captured.AccountNumber != "AC100" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccountID != 7 {
		t.Fatalf("expected account ID 7, got %d", resp.AccountID)
	}
}

func TestAccountHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			t.Fatal("CreateAccount should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_ValidationFailure(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			t.Fatal("CreateAccount should not be called for invalid payload")
			return nil, nil
		},
	})

	// Missing owner_id and currency too short.
	body, _ := json.Marshal(map[string]any{
		"account_number": "AC1",
		"currency":       "US",
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_OwnerNotFound(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			return nil, domain.ErrOwnerNotFound
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{
		OwnerID:       42,
		AccountNumber: "AC1",
		Currency:      "USD",
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		getFn      func(ctx context.Context, id int64) (*domain.Account, error)
		wantStatus int
	}{
		{
			name:   "existing account",
			target: "/accounts/7",
			getFn: func(ctx context.Context, id int64) (*domain.Account, error) {
				return &domain.Account{ID: id, OwnerID: 1, Currency: "USD"}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing account",
			target: "/accounts/999",
			getFn: func(ctx context.Context, id int64) (*domain.Account, error) {
				return nil, domain.ErrAccountNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			target:     "/accounts/abc",
			getFn:      nil,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(NewAccountHandler(&accountServiceStub{getFn: tt.getFn}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAccountHandler_Update(t *testing.T) {
	var capturedID int64
	router := testRouter(NewAccountHandler(&accountServiceStub{
		updateFn: func(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error) {
			capturedID = id
			return &domain.Account{ID: id, OwnerID: 1, AccountNumber: input.AccountNumber, Balance: input.Balance, Currency: input.Currency}, nil
		},
	}))

	body, _ := json.Marshal(dto.UpdateAccountRequest{
		AccountNumber: "AC100",
		AccountType:   "SAVINGS",
		Balance:       decimal.RequireFromString("750.00"),
		Currency:      "USD",
	})

	req := httptest.NewRequest(http.MethodPut, "/accounts/7", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedID != 7 {
		t.Fatalf("expected update of account 7, got %d", capturedID)
	}
}

func TestAccountHandler_UpdateByOwner(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "both parameters present", target: "/accounts/update?owner_id=1&account_id=7", wantStatus: http.StatusOK},
		{name: "missing owner_id", target: "/accounts/update?account_id=7", wantStatus: http.StatusBadRequest},
		{name: "missing account_id", target: "/accounts/update?owner_id=1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(NewAccountHandler(&accountServiceStub{
				updateByOwnerFn: func(ctx context.Context, ownerID, id int64, input usecase.UpdateAccountInput) (*domain.Account, error) {
					return &domain.Account{ID: id, OwnerID: ownerID, AccountNumber: input.AccountNumber, Currency: input.Currency}, nil
				},
			}))

			body, _ := json.Marshal(dto.UpdateAccountRequest{
				AccountNumber: "AC100",
				Currency:      "USD",
			})

			req := httptest.NewRequest(http.MethodPut, tt.target, bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAccountHandler_Delete(t *testing.T) {
	router := testRouter(NewAccountHandler(&accountServiceStub{
		deleteFn: func(ctx context.Context, id int64) error {
			if id != 7 {
				return domain.ErrAccountNotFound
			}
			return nil
		},
	}))

	req := httptest.NewRequest(http.MethodDelete, "/accounts/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/accounts/8", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_BalancePathAndQueryAgree(t *testing.T) {
	balance := decimal.RequireFromString("123.45")
	router := testRouter(NewAccountHandler(&accountServiceStub{
		balanceFn: func(ctx context.Context, id int64) (decimal.Decimal, error) {
			if id != 7 {
				return decimal.Zero, domain.ErrAccountNotFound
			}
			return balance, nil
		},
	}))

	var bodies []string
	for _, target := range []string{"/accounts/7/balance", "/accounts/balance?account_id=7"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Fatalf("path and query balance lookups disagree:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestAccountHandler_TransactionLimit(t *testing.T) {
	router := testRouter(NewAccountHandler(&accountServiceStub{}))

	// No balanceFn or getFn: the limit endpoint must not consult the store.
	req := httptest.NewRequest(http.MethodGet, "/accounts/999/limit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.TransactionLimitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.TransactionLimit.Equal(decimal.RequireFromString("10000.00")) {
		t.Fatalf("expected limit 10000.00, got %s", resp.TransactionLimit)
	}
}

func TestAccountHandler_ListByOwner(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(ctx context.Context, ownerID int64) ([]*domain.Account, error)
		wantStatus int
		wantTotal  int64
	}{
		{
			name: "owner with accounts",
			fn: func(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
				return []*domain.Account{{ID: 1, OwnerID: ownerID}, {ID: 2, OwnerID: ownerID}}, nil
			},
			wantStatus: http.StatusOK,
			wantTotal:  2,
		},
		{
			name: "owner without accounts",
			fn: func(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
				return []*domain.Account{}, nil
			},
			wantStatus: http.StatusOK,
			wantTotal:  0,
		},
		{
			name: "unknown owner",
			fn: func(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
				return nil, domain.ErrOwnerNotFound
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(NewAccountHandler(&accountServiceStub{listByOwnerFn: tt.fn}))

			req := httptest.NewRequest(http.MethodGet, "/owners/1/accounts", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp dto.ListAccountsResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Total != tt.wantTotal {
				t.Fatalf("expected total %d, got %d", tt.wantTotal, resp.Total)
			}
		})
	}
}

func TestAccountHandler_BalancesByOwner(t *testing.T) {
	router := testRouter(NewAccountHandler(&accountServiceStub{
		balancesFn: func(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: 1, OwnerID: ownerID, Balance: decimal.RequireFromString("10.00"), Currency: "USD"},
				{ID: 2, OwnerID: ownerID, Balance: decimal.RequireFromString("20.00"), Currency: "EUR"},
			}, nil
		},
	}))

	req := httptest.NewRequest(http.MethodGet, "/owners/1/balances", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.OwnerBalancesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.OwnerID != 1 || len(resp.Balances) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
