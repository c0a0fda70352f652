package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
)

// AccountSvcFacade exposes account ledger operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ResetToOpening is the administrative balance reset used by remediation
	// tooling only.
	ResetToOpening(ctx context.Context, accountID string, actor dto.Actor) error

	// DeleteAccount soft-deletes an account. The row and its journal history
	// survive; the account just stops resolving for new activity.
	DeleteAccount(ctx context.Context, accountID string, actor dto.Actor) error
}

// LedgerSvcFacade exposes read access to the money journal.
type LedgerSvcFacade interface {
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListAccountTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// GoldLedgerSvcFacade exposes read access to the physical gold ledger.
type GoldLedgerSvcFacade interface {
	ListPartyEntries(ctx context.Context, partyID string) ([]domain.GoldLedgerEntry, error)
	PartyGoldPosition(ctx context.Context, partyID string) (decimal.Decimal, error)
}

// BalanceHistorySvcFacade exposes the balance-history backfill and the
// read-only verifier. Both are batch operations, not request-time paths.
type BalanceHistorySvcFacade interface {
	Backfill(ctx context.Context, opts dto.BackfillOptions) (*dto.BackfillReport, error)
	Verify(ctx context.Context) (*dto.VerifyReport, error)
}
