package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// CreateReturnRequest defines the data needed to create a draft return.
// Refund details may be incomplete at creation; they are validated at
// finalization time.
type CreateReturnRequest struct {
	ReturnType        domain.ReturnType   `json:"returnType" binding:"required,oneof=SALE_RETURN PURCHASE_RETURN"`
	PartyID           string              `json:"partyID"`
	PartyName         string              `json:"partyName"`
	PaymentMode       string              `json:"paymentMode"`
	ReferenceKind     domain.DocumentKind `json:"referenceKind" binding:"required,oneof=INVOICE PURCHASE"`
	ReferenceID       string              `json:"referenceID" binding:"required"`
	RefundMode        domain.RefundMode   `json:"refundMode" binding:"omitempty,oneof=MONEY GOLD MIXED"`
	RefundMoneyAmount decimal.Decimal     `json:"refundMoneyAmount" binding:"dnonneg"`
	RefundGoldGrams   decimal.Decimal     `json:"refundGoldGrams" binding:"dnonneg"`
	RefundGoldPurity  int                 `json:"refundGoldPurity"`
	AccountID         string              `json:"accountID"`
	ItemCount         int                 `json:"itemCount"`
}

// ReturnResponse defines the data returned for a return document.
type ReturnResponse struct {
	ReturnID                string              `json:"returnID"`
	ReturnNumber            string              `json:"returnNumber"`
	ReturnType              domain.ReturnType   `json:"returnType"`
	PartyID                 string              `json:"partyID,omitempty"`
	PartyName               string              `json:"partyName,omitempty"`
	ReferenceKind           domain.DocumentKind `json:"referenceKind"`
	ReferenceID             string              `json:"referenceID"`
	RefundMode              domain.RefundMode   `json:"refundMode,omitempty"`
	RefundMoneyAmount       decimal.Decimal     `json:"refundMoneyAmount"`
	RefundGoldGrams         decimal.Decimal     `json:"refundGoldGrams"`
	RefundGoldPurity        int                 `json:"refundGoldPurity"`
	AccountID               string              `json:"accountID,omitempty"`
	Status                  domain.DocumentStatus `json:"status"`
	FinalizedAt             *time.Time          `json:"finalizedAt,omitempty"`
	FinalizedBy             string              `json:"finalizedBy,omitempty"`
	TransactionID           string              `json:"transactionID,omitempty"`
	GoldLedgerID            string              `json:"goldLedgerID,omitempty"`
	InventoryActionRequired bool                `json:"inventoryActionRequired"`
	InventoryActionNotes    string              `json:"inventoryActionNotes,omitempty"`
	CreatedAt               time.Time           `json:"createdAt"`
}

// ToReturnResponse converts a domain.Return to ReturnResponse
func ToReturnResponse(r *domain.Return) ReturnResponse {
	return ReturnResponse{
		ReturnID:                r.ReturnID,
		ReturnNumber:            r.ReturnNumber,
		ReturnType:              r.ReturnType,
		PartyID:                 r.PartyID,
		PartyName:               r.PartyName,
		ReferenceKind:           r.Reference.Kind,
		ReferenceID:             r.Reference.ID,
		RefundMode:              r.RefundMode,
		RefundMoneyAmount:       r.RefundMoneyAmount,
		RefundGoldGrams:         r.RefundGoldGrams,
		RefundGoldPurity:        r.RefundGoldPurity,
		AccountID:               r.AccountID,
		Status:                  r.Status,
		FinalizedAt:             r.FinalizedAt,
		FinalizedBy:             r.FinalizedBy,
		TransactionID:           r.TransactionID,
		GoldLedgerID:            r.GoldLedgerID,
		InventoryActionRequired: r.InventoryActionRequired,
		InventoryActionNotes:    r.InventoryActionNotes,
		CreatedAt:               r.CreatedAt,
	}
}

// FinalizeDetails names the side-effect artefacts a finalize produced.
type FinalizeDetails struct {
	TransactionCreated      bool   `json:"transactionCreated"`
	TransactionID           string `json:"transactionID,omitempty"`
	GoldLedgerCreated       bool   `json:"goldLedgerCreated"`
	GoldLedgerID            string `json:"goldLedgerID,omitempty"`
	InventoryActionRequired bool   `json:"inventoryActionRequired"`
	InventoryActionNotes    string `json:"inventoryActionNotes"`
}

// FinalizeReturnResult is the response body of a successful return finalize.
type FinalizeReturnResult struct {
	Message string          `json:"message"`
	Return  ReturnResponse  `json:"return"`
	Details FinalizeDetails `json:"details"`
}
