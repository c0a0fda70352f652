package domain

import "github.com/shopspring/decimal"

// PartyType distinguishes customers from vendors.
type PartyType string

const (
	Customer PartyType = "CUSTOMER"
	Vendor   PartyType = "VENDOR"
)

// Party is a customer or vendor. OutstandingBalance is adjusted atomically by
// document finalization: for customers it is what the customer owes the shop,
// for vendors what the shop owes the vendor.
type Party struct {
	PartyID            string          `json:"partyID"` // Primary key (UUID)
	Name               string          `json:"name"`
	PartyType          PartyType       `json:"partyType"`
	Phone              string          `json:"phone"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"` // Money, 2dp
	IsDeleted          bool            `json:"isDeleted"`
	AuditFields
}
