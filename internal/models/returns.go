package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return is the returns table row.
type Return struct {
	ReturnID     string `db:"return_id"`
	ReturnNumber string `db:"return_number"`
	ReturnType   string `db:"return_type"`
	PartyID      string `db:"party_id"`
	PartyName    string `db:"party_name"`
	PaymentMode  string `db:"payment_mode"`

	ReferenceType string `db:"reference_type"`
	ReferenceID   string `db:"reference_id"`

	RefundMode        string          `db:"refund_mode"`
	RefundMoneyAmount decimal.Decimal `db:"refund_money_amount"`
	RefundGoldGrams   decimal.Decimal `db:"refund_gold_grams"`
	RefundGoldPurity  int             `db:"refund_gold_purity"`
	AccountID         string          `db:"account_id"`
	ItemCount         int             `db:"item_count"`

	Status              string     `db:"status"`
	ProcessingStartedAt *time.Time `db:"processing_started_at"`

	FinalizedAt             *time.Time `db:"finalized_at"`
	FinalizedBy             string     `db:"finalized_by"`
	TransactionID           string     `db:"transaction_id"`
	GoldLedgerID            string     `db:"gold_ledger_id"`
	InventoryActionRequired bool       `db:"inventory_action_required"`
	InventoryActionNotes    string     `db:"inventory_action_notes"`

	IsDeleted bool `db:"is_deleted"`
	AuditFields
}
