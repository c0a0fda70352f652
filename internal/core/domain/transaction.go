package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a Debit or a Credit.
// The effect on an account balance depends on the account type; see
// accounting.BalanceDelta.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction is one immutable entry in the money journal. It is created
// atomically with the matching account balance mutation during document
// finalization, and otherwise only ever soft-deleted by remediation tooling.
type Transaction struct {
	TransactionID     string          `json:"transactionID"`     // Primary key (UUID)
	TransactionNumber string          `json:"transactionNumber"` // Display number, TXN-<year>-<seq>
	Date              time.Time       `json:"date"`
	TransactionType   TransactionType `json:"transactionType"`
	Mode              string          `json:"mode"` // Payment mode, e.g. "cash", "bank"
	AccountID         string          `json:"accountID"`
	AccountName       string          `json:"accountName"` // Denormalised for statements
	PartyID           string          `json:"partyID"`     // Counterparty; empty for walk-in
	PartyName         string          `json:"partyName"`
	Amount            decimal.Decimal `json:"amount"` // Positive magnitude, 2dp
	Category          string          `json:"category"`
	Notes             string          `json:"notes"`
	Reference         DocumentRef     `json:"reference"`

	// Balance history fields, null until backfilled by the balance history
	// job. When HasBalance is true, BalanceAfter = BalanceBefore + delta.
	BalanceBefore *decimal.Decimal `json:"balanceBefore,omitempty"`
	BalanceAfter  *decimal.Decimal `json:"balanceAfter,omitempty"`
	HasBalance    bool             `json:"hasBalance"`

	IsDeleted bool `json:"isDeleted"`
	AuditFields
}
