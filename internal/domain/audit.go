package domain

import "time"

// AuditAction identifies the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog records a successful mutation of an account record.
type AuditLog struct {
	ID        string
	Action    AuditAction
	AccountID int64
	OwnerID   int64
	CreatedAt time.Time
}
