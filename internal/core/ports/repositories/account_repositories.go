package repositories

import (
	"context"
	"time"

	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific non-deleted account by its identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByName retrieves a non-deleted account by exact name and type.
	FindAccountByName(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error)

	// ListAccounts retrieves all non-deleted accounts, ordered by the fixed
	// account-type priority (asset, liability, income, expense, equity) and
	// then by name. Batch jobs rely on this ordering.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// ResetToOpening sets current_balance back to opening_balance. Used only
	// by remediation tooling, never by the finalize flow.
	ResetToOpening(ctx context.Context, accountID string, userID string, now time.Time) error

	// SoftDeleteAccount marks an account as deleted without removing it.
	SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
