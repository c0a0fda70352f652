package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// GoldLedgerRepositoryFacade provides access to the append-only gold ledger.
// Recording an entry has no balance side effect: a party's gold position is
// always derived by summation.
type GoldLedgerRepositoryFacade interface {
	// RecordEntry appends a gold movement.
	RecordEntry(ctx context.Context, entry domain.GoldLedgerEntry) error

	// DeleteEntry hard-deletes an entry. Used only by finalize rollback.
	DeleteEntry(ctx context.Context, entryID string) error

	// ListEntriesByParty retrieves a party's non-deleted entries, newest first.
	ListEntriesByParty(ctx context.Context, partyID string) ([]domain.GoldLedgerEntry, error)

	// PartyGoldPosition computes sum(IN) - sum(OUT) in grams over the party's
	// non-deleted entries.
	PartyGoldPosition(ctx context.Context, partyID string) (decimal.Decimal, error)
}
