package usecase

import "github.com/shopspring/decimal"

const (
	// DefaultListLimit is the page size used when a list request does not set one.
	DefaultListLimit = 20

	// MaxListLimit caps the page size of list requests.
	MaxListLimit = 100
)

// TransactionLimit is the fixed per-transaction limit reported for every
// account. Limit policy per account type is not defined yet, so the value is
// a constant and the lookup performs no existence check.
var TransactionLimit = decimal.RequireFromString("10000.00")
