package services

import (
	"context"
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

// returnServiceImpl implements the ReturnSvcFacade interface, including the
// finalize state machine.
type returnServiceImpl struct {
	BaseService
	returnRepo      portsrepo.ReturnRepositoryFacade
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	purchaseRepo    portsrepo.PurchaseRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	sequenceRepo    portsrepo.SequenceRepository
	goldLedgerRepo  portsrepo.GoldLedgerRepositoryFacade
	partyRepo       portsrepo.PartyRepositoryFacade
	auditLogRepo    portsrepo.AuditLogRepositoryFacade
}

// NewReturnService creates a new return service.
func NewReturnService(repos portsrepo.RepositoryProvider) portssvc.ReturnSvcFacade {
	return &returnServiceImpl{
		returnRepo:      repos.ReturnRepo,
		invoiceRepo:     repos.InvoiceRepo,
		purchaseRepo:    repos.PurchaseRepo,
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		sequenceRepo:    repos.SequenceRepo,
		goldLedgerRepo:  repos.GoldLedgerRepo,
		partyRepo:       repos.PartyRepo,
		auditLogRepo:    repos.AuditLogRepo,
	}
}

var _ portssvc.ReturnSvcFacade = (*returnServiceImpl)(nil)

func (s *returnServiceImpl) CreateReturn(ctx context.Context, req dto.CreateReturnRequest, creatorUserID string) (*domain.Return, error) {
	switch req.ReturnType {
	case domain.SaleReturn:
		if req.ReferenceKind != domain.KindInvoice {
			return nil, fmt.Errorf("%w: a sale return must reference an invoice", apperrors.ErrValidation)
		}
		if _, err := s.invoiceRepo.FindInvoiceByID(ctx, req.ReferenceID); err != nil {
			return nil, fmt.Errorf("referenced invoice %s: %w", req.ReferenceID, err)
		}
	case domain.PurchaseReturn:
		if req.ReferenceKind != domain.KindPurchase {
			return nil, fmt.Errorf("%w: a purchase return must reference a purchase", apperrors.ErrValidation)
		}
		if _, err := s.purchaseRepo.FindPurchaseByID(ctx, req.ReferenceID); err != nil {
			return nil, fmt.Errorf("referenced purchase %s: %w", req.ReferenceID, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown return type %q", apperrors.ErrValidation, req.ReturnType)
	}

	purity := req.RefundGoldPurity
	if purity == 0 {
		purity = domain.DefaultGoldPurity
	}

	now := time.Now()
	newID := uuid.NewString()
	ret := domain.Return{
		ReturnID:          newID,
		ReturnNumber:      "RET-" + strings.ToUpper(newID[:8]),
		ReturnType:        req.ReturnType,
		PartyID:           req.PartyID,
		PartyName:         req.PartyName,
		PaymentMode:       req.PaymentMode,
		Reference:         domain.DocumentRef{Kind: req.ReferenceKind, ID: req.ReferenceID},
		RefundMode:        req.RefundMode,
		RefundMoneyAmount: accounting.RoundMoney(req.RefundMoneyAmount),
		RefundGoldGrams:   accounting.RoundWeight(req.RefundGoldGrams),
		RefundGoldPurity:  purity,
		AccountID:         req.AccountID,
		ItemCount:         req.ItemCount,
		Status:            domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.returnRepo.SaveReturn(ctx, ret); err != nil {
		s.LogError(ctx, err, "Failed to save return", slog.String("return_type", string(req.ReturnType)))
		return nil, err
	}
	s.LogInfo(ctx, "Return created", slog.String("return_id", ret.ReturnID))
	return &ret, nil
}

func (s *returnServiceImpl) GetReturnByID(ctx context.Context, returnID string) (*domain.Return, error) {
	return s.returnRepo.FindReturnByID(ctx, returnID)
}

// finalizeEffects accumulates the side-effect artefacts of one finalize
// attempt, so the rollback path knows exactly what to undo.
type finalizeEffects struct {
	transactionID string
	goldEntryID   string

	invoiceAdjusted bool
	prevPaidAmount  decimal.Decimal
	prevBalanceDue  decimal.Decimal
	prevPayStatus   domain.PaymentStatus

	purchaseAdjusted bool
	prevPurchaseDue  decimal.Decimal

	partyDelta decimal.Decimal // signed delta already applied to the party
}

// FinalizeReturn runs the full finalize protocol. On any failure after the
// lock is acquired, the compensating rollback runs before the error is
// surfaced, so the caller sees all-or-nothing behaviour.
func (s *returnServiceImpl) FinalizeReturn(ctx context.Context, returnID string, actor dto.Actor) (*dto.FinalizeReturnResult, error) {
	ret, err := s.returnRepo.FindReturnByID(ctx, returnID)
	if err != nil {
		return nil, err
	}

	if ret.Status == domain.StatusFinalized {
		return nil, fmt.Errorf("%w: return %s is already finalized", apperrors.ErrConflict, returnID)
	}

	var account *domain.Account
	if ret.RefundMode.IncludesMoney() {
		account, err = s.accountRepo.FindAccountByID(ctx, ret.AccountID)
		if err != nil {
			return nil, fmt.Errorf("settlement account %s: %w", ret.AccountID, err)
		}
	}

	// Pre-validation runs entirely before the lock: refund completeness and
	// the economic bound against the referenced document.
	invoice, purchase, err := s.validateRefund(ctx, ret)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.returnRepo.AcquireFinalizeLock(ctx, returnID, now); err != nil {
		return nil, err
	}

	effects := &finalizeEffects{}
	if err := s.applySideEffects(ctx, ret, account, invoice, purchase, actor, now, effects); err != nil {
		return nil, s.rollback(ctx, ret, actor, err, effects)
	}

	// Terminal commit.
	finalizedAt := time.Now()
	ret.Status = domain.StatusFinalized
	ret.ProcessingStartedAt = nil
	ret.FinalizedAt = &finalizedAt
	ret.FinalizedBy = actor.UserID
	ret.TransactionID = effects.transactionID
	ret.GoldLedgerID = effects.goldEntryID
	ret.InventoryActionRequired = true
	ret.InventoryActionNotes = inventoryNote(ret)
	ret.LastUpdatedAt = finalizedAt
	ret.LastUpdatedBy = actor.UserID

	if err := s.returnRepo.MarkFinalized(ctx, *ret); err != nil {
		return nil, s.rollback(ctx, ret, actor, err, effects)
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "returns",
		RecordID:  ret.ReturnID,
		Action:    "finalize",
		CreatedAt: finalizedAt,
		Changes: map[string]any{
			"return_type":         string(ret.ReturnType),
			"refund_mode":         string(ret.RefundMode),
			"refund_money_amount": ret.RefundMoneyAmount.String(),
			"refund_gold_grams":   ret.RefundGoldGrams.String(),
			"transaction_id":      effects.transactionID,
			"gold_ledger_id":      effects.goldEntryID,
		},
	})

	s.LogInfo(ctx, "Return finalized",
		slog.String("return_id", ret.ReturnID),
		slog.String("transaction_id", effects.transactionID),
		slog.String("gold_ledger_id", effects.goldEntryID))

	return &dto.FinalizeReturnResult{
		Message: "return finalized",
		Return:  dto.ToReturnResponse(ret),
		Details: dto.FinalizeDetails{
			TransactionCreated:      effects.transactionID != "",
			TransactionID:           effects.transactionID,
			GoldLedgerCreated:       effects.goldEntryID != "",
			GoldLedgerID:            effects.goldEntryID,
			InventoryActionRequired: true,
			InventoryActionNotes:    ret.InventoryActionNotes,
		},
	}, nil
}

// validateRefund checks mode completeness and the economic bound, loading the
// referenced document. Read-only; runs before the lock.
func (s *returnServiceImpl) validateRefund(ctx context.Context, ret *domain.Return) (*domain.Invoice, *domain.Purchase, error) {
	if !ret.RefundMode.IsValid() {
		return nil, nil, fmt.Errorf("%w: refund mode %q is not one of MONEY, GOLD, MIXED", apperrors.ErrValidation, ret.RefundMode)
	}
	if ret.RefundMode.IncludesMoney() {
		if !ret.RefundMoneyAmount.IsPositive() {
			return nil, nil, fmt.Errorf("%w: refund mode %s requires a positive money amount", apperrors.ErrValidation, ret.RefundMode)
		}
		if ret.AccountID == "" {
			return nil, nil, fmt.Errorf("%w: refund mode %s requires a settlement account", apperrors.ErrValidation, ret.RefundMode)
		}
	}
	if ret.RefundMode.IncludesGold() && !ret.RefundGoldGrams.IsPositive() {
		return nil, nil, fmt.Errorf("%w: refund mode %s requires a positive gold weight", apperrors.ErrValidation, ret.RefundMode)
	}

	switch ret.ReturnType {
	case domain.SaleReturn:
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, ret.Reference.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("referenced invoice %s: %w", ret.Reference.ID, err)
		}
		// The refund cannot exceed what the customer actually paid.
		if ret.RefundMode.IncludesMoney() && ret.RefundMoneyAmount.GreaterThan(invoice.PaidAmount) {
			return nil, nil, fmt.Errorf("%w: refund %s exceeds invoice paid amount %s",
				apperrors.ErrValidation, ret.RefundMoneyAmount, invoice.PaidAmount)
		}
		return invoice, nil, nil
	case domain.PurchaseReturn:
		purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, ret.Reference.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("referenced purchase %s: %w", ret.Reference.ID, err)
		}
		if ret.RefundMode.IncludesMoney() && ret.RefundMoneyAmount.GreaterThan(purchase.TotalMoney) {
			return nil, nil, fmt.Errorf("%w: refund %s exceeds purchase total %s",
				apperrors.ErrValidation, ret.RefundMoneyAmount, purchase.TotalMoney)
		}
		return nil, purchase, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown return type %q", apperrors.ErrValidation, ret.ReturnType)
	}
}

// applySideEffects applies the finalize side effects in their fixed order:
// money transaction, gold entry, referenced document update, party update.
// Every artefact is recorded in effects before the next step runs.
func (s *returnServiceImpl) applySideEffects(ctx context.Context, ret *domain.Return, account *domain.Account, invoice *domain.Invoice, purchase *domain.Purchase, actor dto.Actor, now time.Time, effects *finalizeEffects) error {
	// 1. Money leg.
	if ret.RefundMode.IncludesMoney() {
		txnType := domain.Debit // Sale return: money flows out of the shop.
		category := "sales_return_refund"
		if ret.ReturnType == domain.PurchaseReturn {
			txnType = domain.Credit // Purchase return: money flows back in.
			category = "purchase_return_refund"
		}

		delta, err := accounting.BalanceDelta(account.AccountType, txnType, ret.RefundMoneyAmount)
		if err != nil {
			return err
		}

		seq, err := s.sequenceRepo.NextTransactionSequence(ctx, now.Year())
		if err != nil {
			return err
		}

		txn := domain.Transaction{
			TransactionID:     uuid.NewString(),
			TransactionNumber: accounting.FormatTransactionNumber(now.Year(), seq),
			Date:              now,
			TransactionType:   txnType,
			Mode:              ret.PaymentMode,
			AccountID:         account.AccountID,
			AccountName:       account.Name,
			PartyID:           ret.PartyID,
			PartyName:         ret.PartyName,
			Amount:            ret.RefundMoneyAmount,
			Category:          category,
			Notes:             fmt.Sprintf("Refund for return %s", ret.ReturnNumber),
			Reference:         domain.DocumentRef{Kind: domain.KindReturn, ID: ret.ReturnID},
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}
		if err := s.transactionRepo.RecordTransaction(ctx, txn, delta); err != nil {
			return err
		}
		effects.transactionID = txn.TransactionID
	}

	// 2. Gold leg.
	if ret.RefundMode.IncludesGold() {
		direction := domain.GoldOut // Sale return: gold handed back to the customer.
		if ret.ReturnType == domain.PurchaseReturn {
			direction = domain.GoldIn
		}
		entry := domain.GoldLedgerEntry{
			EntryID:       uuid.NewString(),
			PartyID:       ret.PartyID,
			Date:          now,
			Direction:     direction,
			WeightGrams:   ret.RefundGoldGrams,
			PurityEntered: ret.RefundGoldPurity,
			Purpose:       "return_refund",
			Reference:     domain.DocumentRef{Kind: domain.KindReturn, ID: ret.ReturnID},
			Notes:         fmt.Sprintf("Gold refund for return %s", ret.ReturnNumber),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}
		if err := s.goldLedgerRepo.RecordEntry(ctx, entry); err != nil {
			return err
		}
		effects.goldEntryID = entry.EntryID
	}

	// 3. Referenced document update.
	if ret.RefundMode.IncludesMoney() {
		switch ret.ReturnType {
		case domain.SaleReturn:
			effects.prevPaidAmount = invoice.PaidAmount
			effects.prevBalanceDue = invoice.BalanceDue
			effects.prevPayStatus = invoice.PaymentStatus

			newPaid := invoice.PaidAmount.Sub(ret.RefundMoneyAmount)
			if newPaid.IsNegative() {
				newPaid = decimal.Zero
			}
			newDue := invoice.GrandTotal.Sub(newPaid)
			status := domain.PaymentStatusFor(newPaid, newDue)
			if err := s.invoiceRepo.UpdatePaymentFields(ctx, invoice.InvoiceID, newPaid, newDue, status, actor.UserID, now); err != nil {
				return err
			}
			effects.invoiceAdjusted = true
		case domain.PurchaseReturn:
			effects.prevPurchaseDue = purchase.BalanceDueMoney

			newDue := purchase.BalanceDueMoney.Sub(ret.RefundMoneyAmount)
			if newDue.IsNegative() {
				newDue = decimal.Zero
			}
			if err := s.purchaseRepo.UpdateBalanceDue(ctx, purchase.PurchaseID, newDue, actor.UserID, now); err != nil {
				return err
			}
			effects.purchaseAdjusted = true
		}
	}

	// 4. Party outstanding balance.
	if ret.RefundMode.IncludesMoney() && ret.PartyID != "" {
		partyDelta := ret.RefundMoneyAmount // Customer owes the shop more after a refund.
		if ret.ReturnType == domain.PurchaseReturn {
			partyDelta = ret.RefundMoneyAmount.Neg() // Shop owes the vendor less.
		}
		if err := s.partyRepo.AdjustOutstandingBalance(ctx, ret.PartyID, partyDelta, actor.UserID, now); err != nil {
			return err
		}
		effects.partyDelta = partyDelta
	}

	return nil
}

// rollback undoes the recorded side effects in reverse order and reverts the
// document to draft. A failure during rollback itself is a critical
// inconsistency: it is logged and surfaced, never retried.
func (s *returnServiceImpl) rollback(ctx context.Context, ret *domain.Return, actor dto.Actor, cause error, effects *finalizeEffects) error {
	s.LogWarn(ctx, "Finalize failed, rolling back",
		slog.String("return_id", ret.ReturnID),
		slog.String("cause", cause.Error()))

	fail := func(step string, err error) error {
		rbErr := &apperrors.RollbackFailureError{
			DocumentID:  ret.ReturnID,
			FinalizeErr: cause,
			RollbackErr: fmt.Errorf("%s: %w", step, err),
		}
		s.LogError(ctx, rbErr, "CRITICAL: rollback failed, ledger may be inconsistent",
			slog.String("return_id", ret.ReturnID),
			slog.String("failed_step", step))
		return rbErr
	}

	now := time.Now()

	if !effects.partyDelta.IsZero() {
		if err := s.partyRepo.AdjustOutstandingBalance(ctx, ret.PartyID, effects.partyDelta.Neg(), actor.UserID, now); err != nil {
			return fail("revert party balance", err)
		}
	}
	if effects.invoiceAdjusted {
		if err := s.invoiceRepo.UpdatePaymentFields(ctx, ret.Reference.ID, effects.prevPaidAmount, effects.prevBalanceDue, effects.prevPayStatus, actor.UserID, now); err != nil {
			return fail("restore invoice payment fields", err)
		}
	}
	if effects.purchaseAdjusted {
		if err := s.purchaseRepo.UpdateBalanceDue(ctx, ret.Reference.ID, effects.prevPurchaseDue, actor.UserID, now); err != nil {
			return fail("restore purchase balance due", err)
		}
	}
	if effects.goldEntryID != "" {
		if err := s.goldLedgerRepo.DeleteEntry(ctx, effects.goldEntryID); err != nil {
			return fail("delete gold ledger entry", err)
		}
	}
	if effects.transactionID != "" {
		if err := s.transactionRepo.ReverseTransaction(ctx, effects.transactionID); err != nil {
			return fail("reverse transaction", err)
		}
	}
	if err := s.returnRepo.RollbackToDraft(ctx, ret.ReturnID); err != nil {
		return fail("revert status to draft", err)
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "returns",
		RecordID:  ret.ReturnID,
		Action:    "finalize_rollback",
		CreatedAt: now,
		Changes: map[string]any{
			"cause":                  cause.Error(),
			"reversed_transaction":   effects.transactionID,
			"deleted_gold_ledger_id": effects.goldEntryID,
		},
	})

	return apperrors.NewPartialFailure(ret.ReturnID, cause)
}

// UnlockReturn is the administrative PROCESSING -> DRAFT escape hatch for a
// document left locked by a crashed finalize attempt.
func (s *returnServiceImpl) UnlockReturn(ctx context.Context, returnID string, actor dto.Actor) error {
	ret, err := s.returnRepo.FindReturnByID(ctx, returnID)
	if err != nil {
		return err
	}
	if ret.Status != domain.StatusProcessing {
		return fmt.Errorf("%w: return %s is not locked", apperrors.ErrConflict, returnID)
	}

	if err := s.returnRepo.RollbackToDraft(ctx, returnID); err != nil {
		return err
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "returns",
		RecordID:  returnID,
		Action:    "unlock",
		CreatedAt: time.Now(),
		Changes: map[string]any{
			"previous_status":       string(domain.StatusProcessing),
			"processing_started_at": ret.ProcessingStartedAt,
		},
	})
	s.LogWarn(ctx, "Return unlocked administratively", slog.String("return_id", returnID))
	return nil
}

// inventoryNote explains why stock was not touched automatically.
func inventoryNote(ret *domain.Return) string {
	action := "add the returned items back to stock"
	if ret.ReturnType == domain.PurchaseReturn {
		action = "remove the returned items from stock"
	}
	return fmt.Sprintf("Return %s finalized with %d line item(s): manually %s and record the adjustment.",
		ret.ReturnNumber, ret.ItemCount, action)
}

func (s *returnServiceImpl) saveAudit(ctx context.Context, entry domain.AuditLog) {
	if err := s.auditLogRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit log",
			slog.String("module", entry.Module),
			slog.String("record_id", entry.RecordID))
	}
}
