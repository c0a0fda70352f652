package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to create a draft invoice.
type CreateInvoiceRequest struct {
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName"`
	GrandTotal   decimal.Decimal `json:"grandTotal" binding:"dnonneg"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	CustomerID    string                `json:"customerID,omitempty"`
	CustomerName  string                `json:"customerName,omitempty"`
	GrandTotal    decimal.Decimal       `json:"grandTotal"`
	PaidAmount    decimal.Decimal       `json:"paidAmount"`
	BalanceDue    decimal.Decimal       `json:"balanceDue"`
	PaymentStatus domain.PaymentStatus  `json:"paymentStatus"`
	Status        domain.DocumentStatus `json:"status"`
	FinalizedAt   *time.Time            `json:"finalizedAt,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		GrandTotal:    inv.GrandTotal,
		PaidAmount:    inv.PaidAmount,
		BalanceDue:    inv.BalanceDue,
		PaymentStatus: inv.PaymentStatus,
		Status:        inv.Status,
		FinalizedAt:   inv.FinalizedAt,
		CreatedAt:     inv.CreatedAt,
	}
}

// RecordPaymentRequest records a payment received against an invoice.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required,dpositive"`
	AccountID string          `json:"accountID" binding:"required"`
	Mode      string          `json:"mode"`
	Notes     string          `json:"notes"`
}

// PaymentResult names the double-entry transactions a payment created.
type PaymentResult struct {
	Invoice             InvoiceResponse `json:"invoice"`
	DebitTransactionID  string          `json:"debitTransactionID"`
	CreditTransactionID string          `json:"creditTransactionID"`
}
