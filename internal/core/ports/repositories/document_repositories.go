package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
)

// ReturnRepositoryFacade provides storage for return documents, including the
// conditional status transitions that implement the finalize lock.
type ReturnRepositoryFacade interface {
	// FindReturnByID retrieves a non-deleted return by its identifier.
	FindReturnByID(ctx context.Context, returnID string) (*domain.Return, error)

	// SaveReturn persists a new draft return.
	SaveReturn(ctx context.Context, ret domain.Return) error

	// AcquireFinalizeLock performs the compare-and-swap transition
	// DRAFT -> PROCESSING and stamps processing_started_at. It returns
	// apperrors.ErrConflict when no row matched, i.e. the document is being
	// processed concurrently or is no longer a draft.
	AcquireFinalizeLock(ctx context.Context, returnID string, now time.Time) error

	// MarkFinalized performs the terminal commit: status FINALIZED, finalize
	// metadata, artefact references, inventory flag, lock cleared.
	MarkFinalized(ctx context.Context, ret domain.Return) error

	// RollbackToDraft reverts PROCESSING -> DRAFT clearing the lock marker and
	// any partially-set finalize fields.
	RollbackToDraft(ctx context.Context, returnID string) error
}

// InvoiceRepositoryFacade provides storage for invoices.
type InvoiceRepositoryFacade interface {
	// FindInvoiceByID retrieves a non-deleted invoice by its identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// SaveInvoice persists a new draft invoice.
	SaveInvoice(ctx context.Context, inv domain.Invoice) error

	// UpdatePaymentFields sets paid_amount, balance_due and payment_status.
	UpdatePaymentFields(ctx context.Context, invoiceID string, paidAmount, balanceDue decimal.Decimal, paymentStatus domain.PaymentStatus, userID string, now time.Time) error

	// AcquireFinalizeLock performs the DRAFT -> PROCESSING compare-and-swap.
	AcquireFinalizeLock(ctx context.Context, invoiceID string, now time.Time) error

	// MarkFinalized commits FINALIZED status with finalize metadata.
	MarkFinalized(ctx context.Context, invoiceID string, userID string, now time.Time) error

	// RollbackToDraft reverts PROCESSING -> DRAFT.
	RollbackToDraft(ctx context.Context, invoiceID string) error
}

// PurchaseRepositoryFacade provides storage for purchases.
type PurchaseRepositoryFacade interface {
	// FindPurchaseByID retrieves a non-deleted purchase by its identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// SavePurchase persists a new draft purchase.
	SavePurchase(ctx context.Context, p domain.Purchase) error

	// UpdateBalanceDue sets balance_due_money.
	UpdateBalanceDue(ctx context.Context, purchaseID string, balanceDue decimal.Decimal, userID string, now time.Time) error

	// AcquireFinalizeLock performs the DRAFT -> PROCESSING compare-and-swap.
	AcquireFinalizeLock(ctx context.Context, purchaseID string, now time.Time) error

	// MarkFinalized commits FINALIZED status with finalize metadata.
	MarkFinalized(ctx context.Context, purchaseID string, userID string, now time.Time) error

	// RollbackToDraft reverts PROCESSING -> DRAFT.
	RollbackToDraft(ctx context.Context, purchaseID string) error
}

// PartyRepositoryFacade provides the party collaborator contract.
type PartyRepositoryFacade interface {
	// FindPartyByID retrieves a non-deleted party by its identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// AdjustOutstandingBalance atomically increments the party's outstanding
	// balance by the signed delta.
	AdjustOutstandingBalance(ctx context.Context, partyID string, delta decimal.Decimal, userID string, now time.Time) error
}

// AuditLogRepositoryFacade persists audit trail records.
type AuditLogRepositoryFacade interface {
	// SaveAuditLog appends an audit record.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
}
