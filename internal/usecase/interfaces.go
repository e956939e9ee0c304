package usecase

import (
	"context"
	"time"

	"github.com/iho/accountsvc/internal/domain"
)

// AccountRepository defines data access for account records.
type AccountRepository interface {
	// Create inserts the account and fills in the store-assigned ID.
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByOwnerAndID(ctx context.Context, ownerID, id int64) (*domain.Account, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id int64) error
}

// OwnerChecker reports whether an owner is known to the external identity
// service. Implementations never return an error: any lookup failure is a
// negative answer.
type OwnerChecker interface {
	Exists(ctx context.Context, ownerID int64) bool
}

// AuditRepository defines data access for the audit trail.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
}

// IDGenerator generates unique IDs for audit entries.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
