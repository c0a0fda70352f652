package services

import (
	"context"

	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
)

// ReturnSvcFacade exposes return document operations, including the finalize
// state machine.
type ReturnSvcFacade interface {
	// CreateReturn persists a new draft return.
	CreateReturn(ctx context.Context, req dto.CreateReturnRequest, creatorUserID string) (*domain.Return, error)

	// GetReturnByID retrieves a return.
	GetReturnByID(ctx context.Context, returnID string) (*domain.Return, error)

	// FinalizeReturn runs the full finalize protocol: pre-validation, lock
	// acquisition, side effects, terminal commit, compensating rollback on
	// failure. All-or-nothing from the caller's perspective.
	FinalizeReturn(ctx context.Context, returnID string, actor dto.Actor) (*dto.FinalizeReturnResult, error)

	// UnlockReturn is the administrative PROCESSING -> DRAFT escape hatch for
	// documents left locked by a crashed finalize attempt.
	UnlockReturn(ctx context.Context, returnID string, actor dto.Actor) error
}

// InvoiceSvcFacade exposes invoice operations. Finalizing an invoice creates
// no ledger effects; only payments move money.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FinalizeInvoice(ctx context.Context, invoiceID string, actor dto.Actor) (*domain.Invoice, error)

	// RecordPayment records a payment against a finalized invoice, producing a
	// debit to the settlement account and a matching credit to sales income.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, actor dto.Actor) (*dto.PaymentResult, error)
}

// PurchaseSvcFacade exposes purchase operations.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	FinalizePurchase(ctx context.Context, purchaseID string, actor dto.Actor) (*domain.Purchase, error)
}
