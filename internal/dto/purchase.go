package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// CreatePurchaseRequest defines the data needed to create a draft purchase.
type CreatePurchaseRequest struct {
	VendorID   string          `json:"vendorID"`
	VendorName string          `json:"vendorName"`
	TotalMoney decimal.Decimal `json:"totalMoney" binding:"dnonneg"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID      string                `json:"purchaseID"`
	PurchaseNumber  string                `json:"purchaseNumber"`
	VendorID        string                `json:"vendorID,omitempty"`
	VendorName      string                `json:"vendorName,omitempty"`
	TotalMoney      decimal.Decimal       `json:"totalMoney"`
	BalanceDueMoney decimal.Decimal       `json:"balanceDueMoney"`
	Status          domain.DocumentStatus `json:"status"`
	FinalizedAt     *time.Time            `json:"finalizedAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:      p.PurchaseID,
		PurchaseNumber:  p.PurchaseNumber,
		VendorID:        p.VendorID,
		VendorName:      p.VendorName,
		TotalMoney:      p.TotalMoney,
		BalanceDueMoney: p.BalanceDueMoney,
		Status:          p.Status,
		FinalizedAt:     p.FinalizedAt,
		CreatedAt:       p.CreatedAt,
	}
}
