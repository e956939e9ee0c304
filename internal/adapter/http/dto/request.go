package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/accountsvc/internal/usecase"
)

// CreateAccountRequest represents a request to create an account. The
// account ID is assigned by the store; the owner must be known to the
// identity service.
type CreateAccountRequest struct {
	OwnerID       int64           `json:"owner_id"       validate:"required,gt=0"`
	AccountNumber string          `json:"account_number" validate:"required"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"       validate:"required,len=3"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		OwnerID:       r.OwnerID,
		AccountNumber: r.AccountNumber,
		AccountType:   r.AccountType,
		Balance:       r.Balance,
		Currency:      r.Currency,
	}
}

// UpdateAccountRequest carries replacement values for the four mutable
// account fields. owner_id and account_id in the payload are ignored.
type UpdateAccountRequest struct {
	AccountNumber string          `json:"account_number" validate:"required"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"       validate:"required,len=3"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		AccountNumber: r.AccountNumber,
		AccountType:   r.AccountType,
		Balance:       r.Balance,
		Currency:      r.Currency,
	}
}
