package dto

import (
	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// BackfillOptions controls the balance history backfill run.
type BackfillOptions struct {
	// DryRun computes every balance without writing anything back.
	DryRun bool
	// AccountTypes restricts the run to the given types. Empty means all
	// types, processed in accounting priority order.
	AccountTypes []domain.AccountType
}

// AccountBackfillResult is the per-account outcome of a backfill run.
type AccountBackfillResult struct {
	AccountID           string          `json:"accountID"`
	AccountName         string          `json:"accountName"`
	AccountType         string          `json:"accountType"`
	TransactionsSeen    int             `json:"transactionsSeen"`
	TransactionsSet     int             `json:"transactionsSet"`
	TransactionsSkipped int             `json:"transactionsSkipped"`
	FinalBalance        decimal.Decimal `json:"finalBalance"`
	CurrentBalance      decimal.Decimal `json:"currentBalance"`
	Drift               decimal.Decimal `json:"drift"` // FinalBalance - CurrentBalance
	Err                 string          `json:"error,omitempty"`
}

// BackfillReport summarises a full backfill run.
type BackfillReport struct {
	DryRun          bool                    `json:"dryRun"`
	AccountsTotal   int                     `json:"accountsTotal"`
	AccountsFailed  int                     `json:"accountsFailed"`
	TransactionsSet int                     `json:"transactionsSet"`
	Accounts        []AccountBackfillResult `json:"accounts"`
}

// VerifyIssue is one inconsistency found by the balance history verifier.
type VerifyIssue struct {
	AccountID     string          `json:"accountID"`
	AccountName   string          `json:"accountName"`
	TransactionID string          `json:"transactionID,omitempty"`
	Kind          string          `json:"kind"` // "chain_break", "delta_mismatch", "final_drift"
	Expected      decimal.Decimal `json:"expected"`
	Actual        decimal.Decimal `json:"actual"`
	Detail        string          `json:"detail,omitempty"`
}

// VerifyReport summarises a balance history verification run.
type VerifyReport struct {
	AccountsChecked     int           `json:"accountsChecked"`
	TransactionsChecked int           `json:"transactionsChecked"`
	Issues              []VerifyIssue `json:"issues"`
}

// Clean reports whether the verifier found no issues.
func (r *VerifyReport) Clean() bool { return len(r.Issues) == 0 }
