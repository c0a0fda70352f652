package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/accounting"
)

// purchaseServiceImpl implements the PurchaseSvcFacade interface.
type purchaseServiceImpl struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	auditLogRepo portsrepo.AuditLogRepositoryFacade
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, auditLogRepo portsrepo.AuditLogRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseServiceImpl{
		purchaseRepo: purchaseRepo,
		auditLogRepo: auditLogRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseServiceImpl)(nil)

func (s *purchaseServiceImpl) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	if req.TotalMoney.IsNegative() {
		return nil, fmt.Errorf("%w: total must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	newID := uuid.NewString()
	total := accounting.RoundMoney(req.TotalMoney)
	p := domain.Purchase{
		PurchaseID:      newID,
		PurchaseNumber:  "PUR-" + strings.ToUpper(newID[:8]),
		VendorID:        req.VendorID,
		VendorName:      req.VendorName,
		TotalMoney:      total,
		BalanceDueMoney: total,
		Status:          domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.purchaseRepo.SavePurchase(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save purchase")
		return nil, err
	}
	s.LogInfo(ctx, "Purchase created", slog.String("purchase_id", p.PurchaseID))
	return &p, nil
}

func (s *purchaseServiceImpl) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

// FinalizePurchase moves a draft purchase to FINALIZED. Like invoices, no
// ledger effects: money moves when refunds or settlements reference it.
func (s *purchaseServiceImpl) FinalizePurchase(ctx context.Context, purchaseID string, actor dto.Actor) (*domain.Purchase, error) {
	p, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusFinalized {
		return nil, fmt.Errorf("%w: purchase %s is already finalized", apperrors.ErrConflict, purchaseID)
	}

	now := time.Now()
	if err := s.purchaseRepo.AcquireFinalizeLock(ctx, purchaseID, now); err != nil {
		return nil, err
	}
	if err := s.purchaseRepo.MarkFinalized(ctx, purchaseID, actor.UserID, now); err != nil {
		if rbErr := s.purchaseRepo.RollbackToDraft(ctx, purchaseID); rbErr != nil {
			return nil, &apperrors.RollbackFailureError{DocumentID: purchaseID, FinalizeErr: err, RollbackErr: rbErr}
		}
		return nil, apperrors.NewPartialFailure(purchaseID, err)
	}

	if err := s.auditLogRepo.SaveAuditLog(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "purchases",
		RecordID:  purchaseID,
		Action:    "finalize",
		CreatedAt: now,
		Changes: map[string]any{
			"total_money": p.TotalMoney.String(),
		},
	}); err != nil {
		s.LogError(ctx, err, "Failed to write audit log", slog.String("record_id", purchaseID))
	}

	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}
