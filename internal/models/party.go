package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is the parties table row.
type Party struct {
	PartyID            string          `db:"party_id"`
	Name               string          `db:"name"`
	PartyType          string          `db:"party_type"`
	Phone              string          `db:"phone"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	IsDeleted          bool            `db:"is_deleted"`
	AuditFields
}

// AuditLog is the audit_logs table row. Changes is stored as JSONB.
type AuditLog struct {
	AuditID   string         `db:"audit_id"`
	UserID    string         `db:"user_id"`
	UserName  string         `db:"user_name"`
	Module    string         `db:"module"`
	RecordID  string         `db:"record_id"`
	Action    string         `db:"action"`
	Changes   map[string]any `db:"changes"`
	CreatedAt time.Time      `db:"created_at"`
}
