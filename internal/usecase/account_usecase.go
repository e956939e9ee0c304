package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountsvc/internal/domain"
)

// AccountUseCase implements the account registry: CRUD plus balance and
// limit queries, with owner existence checked against the identity service
// before every owner-scoped operation.
type AccountUseCase struct {
	accountRepo AccountRepository
	ownerCheck  OwnerChecker
	auditRepo   AuditRepository
	idGen       IDGenerator
	logger      zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	accountRepo AccountRepository,
	ownerCheck OwnerChecker,
	auditRepo AuditRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		ownerCheck:  ownerCheck,
		auditRepo:   auditRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	OwnerID       int64
	AccountNumber string
	AccountType   string
	Balance       decimal.Decimal
	Currency      string
}

// UpdateAccountInput carries replacement values for the mutable fields.
type UpdateAccountInput struct {
	AccountNumber string
	AccountType   string
	Balance       decimal.Decimal
	Currency      string
}

func (i UpdateAccountInput) toDomain() domain.AccountUpdate {
	return domain.AccountUpdate{
		AccountNumber: i.AccountNumber,
		AccountType:   i.AccountType,
		Balance:       i.Balance,
		Currency:      i.Currency,
	}
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// CreateAccount validates the owner and persists a new account. The store
// assigns the account ID.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := uc.validateOwner(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		OwnerID:       input.OwnerID,
		AccountNumber: input.AccountNumber,
		AccountType:   input.AccountType,
		Balance:       input.Balance,
		Currency:      input.Currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.Info().Int64("account_id", account.ID).Int64("owner_id", account.OwnerID).Msg("account created")
	uc.recordAudit(ctx, domain.AuditActionCreate, account.ID, account.OwnerID)

	return account, nil
}

// ListAccounts lists accounts with pagination. No owner validation.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// ListAccountsByOwner lists the owner's accounts after validating the owner.
// The result may be empty.
func (uc *AccountUseCase) ListAccountsByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
	if err := uc.validateOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return uc.accountRepo.ListByOwner(ctx, ownerID)
}

// GetAccount retrieves an account by ID. No owner validation: the account ID
// alone is the caller's authority here.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// UpdateAccount replaces the mutable fields of the account. ID and OwnerID
// are never touched. The owner is not re-validated on this path.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id int64, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.ApplyUpdate(input.toDomain())
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, domain.AuditActionUpdate, account.ID, account.OwnerID)

	return account, nil
}

// UpdateAccountByOwner replaces the mutable fields of the account matched by
// the (owner, account) pair, validating the owner first.
func (uc *AccountUseCase) UpdateAccountByOwner(ctx context.Context, ownerID, id int64, input UpdateAccountInput) (*domain.Account, error) {
	if err := uc.validateOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	account.ApplyUpdate(input.toDomain())
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, domain.AuditActionUpdate, account.ID, account.OwnerID)

	return account, nil
}

// DeleteAccount removes the account by ID.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id int64) error {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info().Int64("account_id", id).Msg("account deleted")
	uc.recordAudit(ctx, domain.AuditActionDelete, id, account.OwnerID)

	return nil
}

// ListBalancesByOwner returns the owner's accounts for a balance overview,
// validating the owner first.
func (uc *AccountUseCase) ListBalancesByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
	if err := uc.validateOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return uc.accountRepo.ListByOwner(ctx, ownerID)
}

// GetBalance returns the balance of the account.
func (uc *AccountUseCase) GetBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetTransactionLimit returns the fixed per-transaction limit. The account is
// not checked for existence.
func (uc *AccountUseCase) GetTransactionLimit(ctx context.Context, id int64) decimal.Decimal {
	uc.logger.Debug().Int64("account_id", id).Msg("transaction limit requested")
	return TransactionLimit
}

// validateOwner asks the identity service about the owner. A negative answer,
// whatever its cause, fails the whole operation.
func (uc *AccountUseCase) validateOwner(ctx context.Context, ownerID int64) error {
	if uc.ownerCheck.Exists(ctx, ownerID) {
		return nil
	}
	uc.logger.Warn().Int64("owner_id", ownerID).Msg("owner validation failed")
	return fmt.Errorf("owner %d: %w", ownerID, domain.ErrOwnerNotFound)
}

// recordAudit writes an audit entry for a completed mutation. Failures are
// logged and swallowed: the mutation already succeeded.
func (uc *AccountUseCase) recordAudit(ctx context.Context, action domain.AuditAction, accountID, ownerID int64) {
	if uc.auditRepo == nil {
		return
	}

	entry := &domain.AuditLog{
		ID:        uc.idGen.Generate(),
		Action:    action,
		AccountID: accountID,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn().Err(err).Int64("account_id", accountID).Str("action", string(action)).Msg("audit write failed")
	}
}
