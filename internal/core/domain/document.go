package domain

// DocumentStatus is the lifecycle state of a finalizable business document.
// PROCESSING is a transient lock state: it must resolve to FINALIZED on
// success or revert to DRAFT on rollback, never persist across a request.
type DocumentStatus string

const (
	StatusDraft      DocumentStatus = "DRAFT"
	StatusProcessing DocumentStatus = "PROCESSING"
	StatusFinalized  DocumentStatus = "FINALIZED"
)

// DocumentKind discriminates the polymorphic reference carried by
// transactions and gold ledger entries.
type DocumentKind string

const (
	KindInvoice  DocumentKind = "INVOICE"
	KindPurchase DocumentKind = "PURCHASE"
	KindReturn   DocumentKind = "RETURN"
)

// DocumentRef is a tagged reference to the business document that produced a
// ledger effect. The zero value means "no reference".
type DocumentRef struct {
	Kind DocumentKind `json:"kind"`
	ID   string       `json:"id"`
}

// IsZero reports whether the reference is unset.
func (r DocumentRef) IsZero() bool {
	return r.Kind == "" && r.ID == ""
}

// RefundMode declares which legs a return refund carries.
type RefundMode string

const (
	RefundMoney RefundMode = "MONEY"
	RefundGold  RefundMode = "GOLD"
	RefundMixed RefundMode = "MIXED"
)

// IncludesMoney reports whether the mode has a money leg.
func (m RefundMode) IncludesMoney() bool {
	return m == RefundMoney || m == RefundMixed
}

// IncludesGold reports whether the mode has a gold leg.
func (m RefundMode) IncludesGold() bool {
	return m == RefundGold || m == RefundMixed
}

// IsValid reports whether m is a known refund mode.
func (m RefundMode) IsValid() bool {
	switch m {
	case RefundMoney, RefundGold, RefundMixed:
		return true
	}
	return false
}
