package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountTypePriority orders account types for batch replay jobs. Assets are
// processed first, equity last.
var AccountTypePriority = map[AccountType]int{
	Asset:     1,
	Liability: 2,
	Income:    3,
	Expense:   4,
	Equity:    5,
}

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	_, ok := AccountTypePriority[t]
	return ok
}

// Account represents a cash, bank, income or similar financial account.
// CurrentBalance is a cached running total: it must always equal
// OpeningBalance plus the signed deltas of every non-deleted transaction
// referencing the account, and is mutated only through atomic increments
// issued by the transaction repository.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary key (UUID)
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Money, 2dp
	CurrentBalance decimal.Decimal `json:"currentBalance"` // Money, 2dp
	IsDeleted      bool            `json:"isDeleted"`      // Soft delete flag; accounts are never hard-deleted
	AuditFields
}
