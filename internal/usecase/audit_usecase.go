package usecase

import (
	"context"

	"github.com/iho/accountsvc/internal/domain"
)

// AuditUseCase exposes the audit trail for inspection.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListEntries lists recent audit entries with pagination.
func (uc *AuditUseCase) ListEntries(ctx context.Context, input ListAccountsInput) ([]*domain.AuditLog, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	return uc.auditRepo.List(ctx, input.Limit, input.Offset)
}
