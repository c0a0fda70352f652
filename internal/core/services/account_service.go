package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/accounting"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	auditLogRepo portsrepo.AuditLogRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, auditLogRepo portsrepo.AuditLogRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo:  accountRepo,
		auditLogRepo: auditLogRepo,
	}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	opening := accounting.RoundMoney(req.OpeningBalance)
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		AccountType:    req.AccountType,
		OpeningBalance: opening,
		// A fresh account has seen no transactions yet.
		CurrentBalance: opening,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// ResetToOpening reverts an account's cached balance to its opening balance.
// Remediation tooling only; the finalize flow never calls this.
func (s *accountServiceImpl) ResetToOpening(ctx context.Context, accountID string, actor dto.Actor) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.accountRepo.ResetToOpening(ctx, accountID, actor.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to reset account to opening balance",
			slog.String("account_id", accountID))
		return err
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "accounts",
		RecordID:  accountID,
		Action:    "reset_to_opening",
		CreatedAt: now,
		Changes: map[string]any{
			"previous_balance": account.CurrentBalance.String(),
			"opening_balance":  account.OpeningBalance.String(),
		},
	})
	return nil
}

// DeleteAccount soft-deletes an account. Journal rows referencing it are kept;
// soft-deleted accounts simply stop resolving for new activity.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, accountID string, actor dto.Actor) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.accountRepo.SoftDeleteAccount(ctx, accountID, actor.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to soft-delete account",
			slog.String("account_id", accountID))
		return err
	}

	s.saveAudit(ctx, domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Module:    "accounts",
		RecordID:  accountID,
		Action:    "delete",
		CreatedAt: now,
		Changes: map[string]any{
			"account_name":        account.Name,
			"balance_at_deletion": account.CurrentBalance.String(),
		},
	})
	return nil
}

// saveAudit writes an audit record. Audit failures are logged, never surfaced.
func (s *accountServiceImpl) saveAudit(ctx context.Context, entry domain.AuditLog) {
	if err := s.auditLogRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit log",
			slog.String("module", entry.Module),
			slog.String("record_id", entry.RecordID))
	}
}
