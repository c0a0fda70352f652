package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldDirection is the physical direction of a gold movement relative to the shop.
type GoldDirection string

const (
	GoldIn  GoldDirection = "IN"  // Gold received by the shop
	GoldOut GoldDirection = "OUT" // Gold handed out by the shop
)

// GoldLedgerEntry is one row in the append-only physical gold ledger. The
// ledger is independent of the money journal: a party's net gold position is
// derived by summation (IN minus OUT), never cached. Entries are only ever
// hard-deleted during rollback of a failed finalize.
type GoldLedgerEntry struct {
	EntryID       string          `json:"entryID"` // Primary key (UUID)
	PartyID       string          `json:"partyID"` // Empty for walk-in parties
	Date          time.Time       `json:"date"`
	Direction     GoldDirection   `json:"direction"`
	WeightGrams   decimal.Decimal `json:"weightGrams"`   // Positive, 3dp
	PurityEntered int             `json:"purityEntered"` // e.g. 916 for 22k
	Purpose       string          `json:"purpose"`
	Reference     DocumentRef     `json:"reference"`
	Notes         string          `json:"notes"`
	IsDeleted     bool            `json:"isDeleted"`
	AuditFields
}

// DefaultGoldPurity is assumed when a document carries no explicit purity.
const DefaultGoldPurity = 916
