package usecase

import (
	"context"
	"testing"

	"github.com/iho/accountsvc/internal/domain"
	"github.com/iho/accountsvc/internal/usecase/mocks"
)

func TestAuditUseCase_ListEntries_ClampsPagination(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepository()
	for i := 0; i < 3; i++ {
		auditRepo.Create(context.Background(), &domain.AuditLog{
			ID:     string(rune('a' + i)),
			Action: domain.AuditActionCreate,
		})
	}

	uc := NewAuditUseCase(auditRepo)

	tests := []struct {
		name  string
		input ListAccountsInput
	}{
		{name: "zero limit falls back to default", input: ListAccountsInput{Limit: 0}},
		{name: "negative limit falls back to default", input: ListAccountsInput{Limit: -5}},
		{name: "oversized limit is clamped", input: ListAccountsInput{Limit: MaxListLimit + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := uc.ListEntries(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(entries) != 3 {
				t.Fatalf("expected 3 entries, got %d", len(entries))
			}
		})
	}
}
