package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a vendor purchase document. TotalMoney is the economically
// bounding amount for purchase-return refunds.
type Purchase struct {
	PurchaseID      string          `json:"purchaseID"` // Primary key (UUID)
	PurchaseNumber  string          `json:"purchaseNumber"`
	VendorID        string          `json:"vendorID"`
	VendorName      string          `json:"vendorName"`
	TotalMoney      decimal.Decimal `json:"totalMoney"`      // Money, 2dp
	BalanceDueMoney decimal.Decimal `json:"balanceDueMoney"` // Money, 2dp, floored at zero

	Status              DocumentStatus `json:"status"`
	ProcessingStartedAt *time.Time     `json:"processingStartedAt,omitempty"`
	FinalizedAt         *time.Time     `json:"finalizedAt,omitempty"`
	FinalizedBy         string         `json:"finalizedBy,omitempty"`

	IsDeleted bool `json:"isDeleted"`
	AuditFields
}
