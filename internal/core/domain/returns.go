package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnType distinguishes the two return workflows, which produce mirrored
// ledger effects.
type ReturnType string

const (
	SaleReturn     ReturnType = "SALE_RETURN"     // Customer returns goods sold on an invoice
	PurchaseReturn ReturnType = "PURCHASE_RETURN" // Shop returns goods bought on a purchase
)

// Return is a finalizable return document. Once Status is FINALIZED the
// document and its refund fields are immutable; finalization deliberately
// never touches inventory and instead raises InventoryActionRequired.
type Return struct {
	ReturnID     string     `json:"returnID"` // Primary key (UUID)
	ReturnNumber string     `json:"returnNumber"`
	ReturnType   ReturnType `json:"returnType"`
	PartyID      string     `json:"partyID"`
	PartyName    string     `json:"partyName"`
	PaymentMode  string     `json:"paymentMode"`

	// Reference to the original invoice or purchase being returned against.
	Reference DocumentRef `json:"reference"`

	RefundMode        RefundMode      `json:"refundMode"`
	RefundMoneyAmount decimal.Decimal `json:"refundMoneyAmount"` // Money, 2dp
	RefundGoldGrams   decimal.Decimal `json:"refundGoldGrams"`   // Weight, 3dp
	RefundGoldPurity  int             `json:"refundGoldPurity"`
	AccountID         string          `json:"accountID"` // Settlement account for the money leg
	ItemCount         int             `json:"itemCount"` // Line items, reported in the inventory note

	Status DocumentStatus `json:"status"`
	// ProcessingStartedAt is set while the finalize lock is held. A non-nil
	// value on a DRAFT document indicates a crashed finalize attempt.
	ProcessingStartedAt *time.Time `json:"processingStartedAt,omitempty"`

	// Finalize artefacts, populated on the terminal commit.
	FinalizedAt             *time.Time `json:"finalizedAt,omitempty"`
	FinalizedBy             string     `json:"finalizedBy,omitempty"`
	TransactionID           string     `json:"transactionID,omitempty"` // Money refund transaction, if any
	GoldLedgerID            string     `json:"goldLedgerID,omitempty"`  // Gold refund entry, if any
	InventoryActionRequired bool       `json:"inventoryActionRequired"`
	InventoryActionNotes    string     `json:"inventoryActionNotes,omitempty"`

	IsDeleted bool `json:"isDeleted"`
	AuditFields
}
