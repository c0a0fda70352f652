package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// TransactionReader defines read operations for the money journal.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByReference retrieves all non-deleted transactions
	// linked to a given document.
	FindTransactionsByReference(ctx context.Context, ref domain.DocumentRef) ([]domain.Transaction, error)

	// ListTransactionsByAccountAsc retrieves every non-deleted transaction of
	// an account in ascending date order. Used by balance replay jobs.
	ListTransactionsByAccountAsc(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves a page of an account's transactions
	// in descending date order, using token pagination.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for the money journal.
type TransactionWriter interface {
	// RecordTransaction inserts the transaction row and applies signedDelta to
	// the referenced account's current balance. Both effects happen in a
	// single database transaction: if either fails, neither survives.
	RecordTransaction(ctx context.Context, txn domain.Transaction, signedDelta decimal.Decimal) error

	// ReverseTransaction hard-deletes the transaction row and applies the
	// negated balance delta to its account, again as one unit. It is used
	// only by the finalize rollback path.
	ReverseTransaction(ctx context.Context, transactionID string) error

	// SetBalanceFields persists backfilled balance history onto a transaction.
	SetBalanceFields(ctx context.Context, transactionID string, balanceBefore, balanceAfter decimal.Decimal) error
}

// TransactionRepositoryFacade combines the journal repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// SequenceRepository hands out gap-free-enough, race-free display sequence
// numbers. Counting rows to derive the next number is not safe under
// concurrent finalization; this is the atomic replacement.
type SequenceRepository interface {
	// NextTransactionSequence atomically increments and returns the
	// transaction sequence for the given year.
	NextTransactionSequence(ctx context.Context, year int) (int64, error)
}
