package handler

import (
	"context"
	"net/http"

	"github.com/iho/accountsvc/internal/adapter/http/dto"
	"github.com/iho/accountsvc/internal/domain"
	"github.com/iho/accountsvc/internal/usecase"
)

// AuditService defines the behavior needed by AuditHandler.
type AuditService interface {
	ListEntries(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.AuditLog, error)
}

// AuditHandler exposes the audit trail.
type AuditHandler struct {
	auditUC AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditUC AuditService) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// List lists recent audit entries.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultListLimit)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.auditUC.ListEntries(r.Context(), usecase.ListAccountsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list audit entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditEntriesFromDomain(entries))
}
