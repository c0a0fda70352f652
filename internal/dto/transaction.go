package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// TransactionResponse defines the data returned for a journal transaction.
type TransactionResponse struct {
	TransactionID     string                 `json:"transactionID"`
	TransactionNumber string                 `json:"transactionNumber"`
	Date              time.Time              `json:"date"`
	TransactionType   domain.TransactionType `json:"transactionType"`
	Mode              string                 `json:"mode,omitempty"`
	AccountID         string                 `json:"accountID"`
	AccountName       string                 `json:"accountName,omitempty"`
	PartyID           string                 `json:"partyID,omitempty"`
	PartyName         string                 `json:"partyName,omitempty"`
	Amount            decimal.Decimal        `json:"amount"`
	Category          string                 `json:"category,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	ReferenceKind     domain.DocumentKind    `json:"referenceKind,omitempty"`
	ReferenceID       string                 `json:"referenceID,omitempty"`
	BalanceBefore     *decimal.Decimal       `json:"balanceBefore,omitempty"`
	BalanceAfter      *decimal.Decimal       `json:"balanceAfter,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     t.TransactionID,
		TransactionNumber: t.TransactionNumber,
		Date:              t.Date,
		TransactionType:   t.TransactionType,
		Mode:              t.Mode,
		AccountID:         t.AccountID,
		AccountName:       t.AccountName,
		PartyID:           t.PartyID,
		PartyName:         t.PartyName,
		Amount:            t.Amount,
		Category:          t.Category,
		Notes:             t.Notes,
		ReferenceKind:     t.Reference.Kind,
		ReferenceID:       t.Reference.ID,
		BalanceBefore:     t.BalanceBefore,
		BalanceAfter:      t.BalanceAfter,
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse builds the paginated response.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: out, NextToken: nextToken}
}
