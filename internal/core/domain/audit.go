package domain

import "time"

// AuditLog is a single append-only audit trail record. Writing one is
// fire-and-forget from the caller's perspective: a failed audit write is
// logged but never fails the operation that produced it.
type AuditLog struct {
	AuditID   string         `json:"auditID"` // Primary key (UUID)
	UserID    string         `json:"userID"`
	UserName  string         `json:"userName"`
	Module    string         `json:"module"` // e.g. "returns", "invoices"
	RecordID  string         `json:"recordID"`
	Action    string         `json:"action"` // e.g. "finalize", "finalize_rollback"
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}
