package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the invoices table row.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerID    string          `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	GrandTotal    decimal.Decimal `db:"grand_total"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	BalanceDue    decimal.Decimal `db:"balance_due"`
	PaymentStatus string          `db:"payment_status"`

	Status              string     `db:"status"`
	ProcessingStartedAt *time.Time `db:"processing_started_at"`
	FinalizedAt         *time.Time `db:"finalized_at"`
	FinalizedBy         string     `db:"finalized_by"`

	IsDeleted bool `db:"is_deleted"`
	AuditFields
}

// Purchase is the purchases table row.
type Purchase struct {
	PurchaseID      string          `db:"purchase_id"`
	PurchaseNumber  string          `db:"purchase_number"`
	VendorID        string          `db:"vendor_id"`
	VendorName      string          `db:"vendor_name"`
	TotalMoney      decimal.Decimal `db:"total_money"`
	BalanceDueMoney decimal.Decimal `db:"balance_due_money"`

	Status              string     `db:"status"`
	ProcessingStartedAt *time.Time `db:"processing_started_at"`
	FinalizedAt         *time.Time `db:"finalized_at"`
	FinalizedBy         string     `db:"finalized_by"`

	IsDeleted bool `db:"is_deleted"`
	AuditFields
}
