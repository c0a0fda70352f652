package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldLedgerEntry is the gold_ledger table row.
type GoldLedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	PartyID       string          `db:"party_id"`
	Date          time.Time       `db:"date"`
	Direction     string          `db:"direction"`
	WeightGrams   decimal.Decimal `db:"weight_grams"`
	PurityEntered int             `db:"purity_entered"`
	Purpose       string          `db:"purpose"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   string          `db:"reference_id"`
	Notes         string          `db:"notes"`
	IsDeleted     bool            `db:"is_deleted"`
	AuditFields
}
