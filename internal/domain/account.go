package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account held by an external owner.
type Account struct {
	ID            int64
	OwnerID       int64
	AccountNumber string
	AccountType   string
	Balance       decimal.Decimal
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccountUpdate carries replacement values for the mutable account fields.
// ID and OwnerID are never part of an update.
type AccountUpdate struct {
	AccountNumber string
	AccountType   string
	Balance       decimal.Decimal
	Currency      string
}

// ApplyUpdate replaces the four mutable fields wholesale.
func (a *Account) ApplyUpdate(u AccountUpdate) {
	a.AccountNumber = u.AccountNumber
	a.AccountType = u.AccountType
	a.Balance = u.Balance
	a.Currency = u.Currency
}
