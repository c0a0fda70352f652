package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus summarises how much of an invoice has been settled.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// PaymentStatusFor derives the status from the amounts on an invoice.
func PaymentStatusFor(paid, due decimal.Decimal) PaymentStatus {
	switch {
	case !due.IsPositive():
		return PaymentPaid
	case paid.IsPositive():
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

// Invoice is a sales document. Its totals are informational until money
// actually moves: finalizing an invoice creates no transactions, only a
// subsequent payment does.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary key (UUID)
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	CustomerName  string          `json:"customerName"`
	GrandTotal    decimal.Decimal `json:"grandTotal"` // Money, 2dp
	PaidAmount    decimal.Decimal `json:"paidAmount"` // Money, 2dp
	BalanceDue    decimal.Decimal `json:"balanceDue"` // Money, 2dp
	PaymentStatus PaymentStatus   `json:"paymentStatus"`

	Status              DocumentStatus `json:"status"`
	ProcessingStartedAt *time.Time     `json:"processingStartedAt,omitempty"`
	FinalizedAt         *time.Time     `json:"finalizedAt,omitempty"`
	FinalizedBy         string         `json:"finalizedBy,omitempty"`

	IsDeleted bool `json:"isDeleted"`
	AuditFields
}
