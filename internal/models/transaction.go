package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction is the transactions table row. ReferenceType/ReferenceID form
// the polymorphic link to the document that produced the entry.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	TransactionNumber string          `db:"transaction_number"`
	Date              time.Time       `db:"date"`
	TransactionType   TransactionType `db:"transaction_type"`
	Mode              string          `db:"mode"`
	AccountID         string          `db:"account_id"`
	AccountName       string          `db:"account_name"`
	PartyID           string          `db:"party_id"`
	PartyName         string          `db:"party_name"`
	Amount            decimal.Decimal `db:"amount"`
	Category          string          `db:"category"`
	Notes             string          `db:"notes"`
	ReferenceType     string          `db:"reference_type"`
	ReferenceID       string          `db:"reference_id"`

	BalanceBefore *decimal.Decimal `db:"balance_before"`
	BalanceAfter  *decimal.Decimal `db:"balance_after"`
	HasBalance    bool             `db:"has_balance"`

	IsDeleted bool `db:"is_deleted"`
	AuditFields
}
