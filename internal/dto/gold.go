package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// GoldLedgerEntryResponse defines the data returned for a gold ledger entry.
type GoldLedgerEntryResponse struct {
	EntryID       string               `json:"entryID"`
	Date          time.Time            `json:"date"`
	Direction     domain.GoldDirection `json:"direction"`
	WeightGrams   decimal.Decimal      `json:"weightGrams"`
	Purity        int                  `json:"purity"`
	Purpose       string               `json:"purpose,omitempty"`
	PartyID       string               `json:"partyID,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	ReferenceKind domain.DocumentKind  `json:"referenceKind,omitempty"`
	ReferenceID   string               `json:"referenceID,omitempty"`
}

// ToGoldLedgerEntryResponse converts a domain.GoldLedgerEntry to GoldLedgerEntryResponse
func ToGoldLedgerEntryResponse(e *domain.GoldLedgerEntry) GoldLedgerEntryResponse {
	return GoldLedgerEntryResponse{
		EntryID:       e.EntryID,
		Date:          e.Date,
		Direction:     e.Direction,
		WeightGrams:   e.WeightGrams,
		Purity:        e.PurityEntered,
		Purpose:       e.Purpose,
		PartyID:       e.PartyID,
		Notes:         e.Notes,
		ReferenceKind: e.Reference.Kind,
		ReferenceID:   e.Reference.ID,
	}
}

// GoldPositionResponse reports a party's net gold position in grams.
// Positive means the business owes gold to the party.
type GoldPositionResponse struct {
	PartyID       string          `json:"partyID"`
	GramsIn       decimal.Decimal `json:"gramsIn"`
	GramsOut      decimal.Decimal `json:"gramsOut"`
	NetGrams      decimal.Decimal `json:"netGrams"`
	EntriesCount  int             `json:"entriesCount"`
	LastEntryDate *time.Time      `json:"lastEntryDate,omitempty"`
}
