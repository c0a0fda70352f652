package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/accounting"
)

// salesIncomeAccountName is the income account credited by invoice payments.
// It is created on first use.
const salesIncomeAccountName = "Sales"

// invoiceServiceImpl implements the InvoiceSvcFacade interface.
type invoiceServiceImpl struct {
	BaseService
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	sequenceRepo    portsrepo.SequenceRepository
	partyRepo       portsrepo.PartyRepositoryFacade
	auditLogRepo    portsrepo.AuditLogRepositoryFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(repos portsrepo.RepositoryProvider) portssvc.InvoiceSvcFacade {
	return &invoiceServiceImpl{
		invoiceRepo:     repos.InvoiceRepo,
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		sequenceRepo:    repos.SequenceRepo,
		partyRepo:       repos.PartyRepo,
		auditLogRepo:    repos.AuditLogRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceServiceImpl)(nil)

func (s *invoiceServiceImpl) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if req.GrandTotal.IsNegative() {
		return nil, fmt.Errorf("%w: grand total must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	newID := uuid.NewString()
	grandTotal := accounting.RoundMoney(req.GrandTotal)
	inv := domain.Invoice{
		InvoiceID:     newID,
		InvoiceNumber: "INV-" + strings.ToUpper(newID[:8]),
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		GrandTotal:    grandTotal,
		PaidAmount:    decimal.Zero,
		BalanceDue:    grandTotal,
		PaymentStatus: domain.PaymentUnpaid,
		Status:        domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save invoice")
		return nil, err
	}
	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", inv.InvoiceID))
	return &inv, nil
}

func (s *invoiceServiceImpl) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// FinalizeInvoice moves a draft invoice to FINALIZED through the same
// lock-commit protocol as returns. Deliberately no ledger effects: invoice
// totals are informational until a payment moves money.
func (s *invoiceServiceImpl) FinalizeInvoice(ctx context.Context, invoiceID string, actor dto.Actor) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.StatusFinalized {
		return nil, fmt.Errorf("%w: invoice %s is already finalized", apperrors.ErrConflict, invoiceID)
	}

	now := time.Now()
	if err := s.invoiceRepo.AcquireFinalizeLock(ctx, invoiceID, now); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.MarkFinalized(ctx, invoiceID, actor.UserID, now); err != nil {
		if rbErr := s.invoiceRepo.RollbackToDraft(ctx, invoiceID); rbErr != nil {
			return nil, &apperrors.RollbackFailureError{DocumentID: invoiceID, FinalizeErr: err, RollbackErr: rbErr}
		}
		return nil, apperrors.NewPartialFailure(invoiceID, err)
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "invoices",
		RecordID:  invoiceID,
		Action:    "finalize",
		CreatedAt: now,
		Changes: map[string]any{
			"grand_total": inv.GrandTotal.String(),
		},
	})

	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// paymentEffects accumulates the side effects of one payment attempt, so the
// rollback path knows exactly what to undo.
type paymentEffects struct {
	debitTxnID     string
	creditTxnID    string
	invoiceUpdated bool
}

// RecordPayment records money received against a finalized invoice. It writes
// the double entry: a DEBIT to the settlement asset account and a matching
// CREDIT to the sales income account, then advances the invoice's paid fields
// and decreases the customer's outstanding balance. On any failure after the
// first leg is recorded, the compensating rollback runs before the error is
// surfaced, so the caller sees all-or-nothing behaviour.
func (s *invoiceServiceImpl) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, actor dto.Actor) (*dto.PaymentResult, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.StatusFinalized {
		return nil, fmt.Errorf("%w: payments can only be recorded against finalized invoices", apperrors.ErrConflict)
	}

	amount := accounting.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(inv.BalanceDue) {
		return nil, fmt.Errorf("%w: payment %s exceeds balance due %s", apperrors.ErrValidation, amount, inv.BalanceDue)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("settlement account %s: %w", req.AccountID, err)
	}

	incomeAccount, err := s.salesIncomeAccount(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	effects := &paymentEffects{}

	// Debit leg: money into the settlement account.
	debitTxn, err := s.recordLeg(ctx, inv, account, domain.Debit, amount, req, actor, now)
	if err != nil {
		return nil, err
	}
	effects.debitTxnID = debitTxn.TransactionID

	// Credit leg: matching entry on sales income.
	creditTxn, err := s.recordLeg(ctx, inv, incomeAccount, domain.Credit, amount, req, actor, now)
	if err != nil {
		return nil, s.paymentRollback(ctx, inv, actor, err, effects)
	}
	effects.creditTxnID = creditTxn.TransactionID

	newPaid := inv.PaidAmount.Add(amount)
	newDue := inv.GrandTotal.Sub(newPaid)
	status := domain.PaymentStatusFor(newPaid, newDue)
	if err := s.invoiceRepo.UpdatePaymentFields(ctx, invoiceID, newPaid, newDue, status, actor.UserID, now); err != nil {
		return nil, s.paymentRollback(ctx, inv, actor, err, effects)
	}
	effects.invoiceUpdated = true

	if inv.CustomerID != "" {
		// The customer owes less once the payment lands.
		if err := s.partyRepo.AdjustOutstandingBalance(ctx, inv.CustomerID, amount.Neg(), actor.UserID, now); err != nil {
			return nil, s.paymentRollback(ctx, inv, actor, err, effects)
		}
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "invoices",
		RecordID:  invoiceID,
		Action:    "record_payment",
		CreatedAt: now,
		Changes: map[string]any{
			"amount":                amount.String(),
			"debit_transaction_id":  debitTxn.TransactionID,
			"credit_transaction_id": creditTxn.TransactionID,
		},
	})

	updated, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResult{
		Invoice:             dto.ToInvoiceResponse(updated),
		DebitTransactionID:  debitTxn.TransactionID,
		CreditTransactionID: creditTxn.TransactionID,
	}, nil
}

// paymentRollback undoes the recorded payment effects in reverse order so no
// unbalanced entry or stale invoice state survives. A failure during rollback
// itself is a critical inconsistency: it is logged and surfaced, never retried.
func (s *invoiceServiceImpl) paymentRollback(ctx context.Context, inv *domain.Invoice, actor dto.Actor, cause error, effects *paymentEffects) error {
	s.LogWarn(ctx, "Payment failed, rolling back",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("cause", cause.Error()))

	fail := func(step string, err error) error {
		rbErr := &apperrors.RollbackFailureError{
			DocumentID:  inv.InvoiceID,
			FinalizeErr: cause,
			RollbackErr: fmt.Errorf("%s: %w", step, err),
		}
		s.LogError(ctx, rbErr, "CRITICAL: payment rollback failed, ledger may be inconsistent",
			slog.String("invoice_id", inv.InvoiceID),
			slog.String("failed_step", step))
		return rbErr
	}

	now := time.Now()

	if effects.invoiceUpdated {
		if err := s.invoiceRepo.UpdatePaymentFields(ctx, inv.InvoiceID, inv.PaidAmount, inv.BalanceDue, inv.PaymentStatus, actor.UserID, now); err != nil {
			return fail("restore invoice payment fields", err)
		}
	}
	if effects.creditTxnID != "" {
		if err := s.transactionRepo.ReverseTransaction(ctx, effects.creditTxnID); err != nil {
			return fail("reverse credit transaction", err)
		}
	}
	if effects.debitTxnID != "" {
		if err := s.transactionRepo.ReverseTransaction(ctx, effects.debitTxnID); err != nil {
			return fail("reverse debit transaction", err)
		}
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "invoices",
		RecordID:  inv.InvoiceID,
		Action:    "payment_rollback",
		CreatedAt: now,
		Changes: map[string]any{
			"cause":                  cause.Error(),
			"reversed_debit_txn":     effects.debitTxnID,
			"reversed_credit_txn":    effects.creditTxnID,
			"invoice_state_restored": effects.invoiceUpdated,
		},
	})

	return apperrors.NewPartialFailure(inv.InvoiceID, cause)
}

// recordLeg records one side of the payment double entry.
func (s *invoiceServiceImpl) recordLeg(ctx context.Context, inv *domain.Invoice, account *domain.Account, txnType domain.TransactionType, amount decimal.Decimal, req dto.RecordPaymentRequest, actor dto.Actor, now time.Time) (*domain.Transaction, error) {
	delta, err := accounting.BalanceDelta(account.AccountType, txnType, amount)
	if err != nil {
		return nil, err
	}
	seq, err := s.sequenceRepo.NextTransactionSequence(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		TransactionNumber: accounting.FormatTransactionNumber(now.Year(), seq),
		Date:              now,
		TransactionType:   txnType,
		Mode:              req.Mode,
		AccountID:         account.AccountID,
		AccountName:       account.Name,
		PartyID:           inv.CustomerID,
		PartyName:         inv.CustomerName,
		Amount:            amount,
		Category:          "invoice_payment",
		Notes:             req.Notes,
		Reference:         domain.DocumentRef{Kind: domain.KindInvoice, ID: inv.InvoiceID},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.transactionRepo.RecordTransaction(ctx, txn, delta); err != nil {
		return nil, err
	}
	return &txn, nil
}

// salesIncomeAccount finds the sales income account, creating it on first use.
func (s *invoiceServiceImpl) salesIncomeAccount(ctx context.Context, creatorUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, salesIncomeAccountName, domain.Income)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	created := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           salesIncomeAccountName,
		AccountType:    domain.Income,
		OpeningBalance: decimal.Zero,
		CurrentBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, created); err != nil {
		// A concurrent payment may have created it first.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByName(ctx, salesIncomeAccountName, domain.Income)
		}
		return nil, err
	}
	s.LogInfo(ctx, "Sales income account created", slog.String("account_id", created.AccountID))
	return &created, nil
}

func (s *invoiceServiceImpl) saveAudit(ctx context.Context, entry domain.AuditLog) {
	if err := s.auditLogRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit log",
			slog.String("module", entry.Module),
			slog.String("record_id", entry.RecordID))
	}
}
