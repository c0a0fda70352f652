package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
)

// ledgerServiceImpl provides read access to the money journal.
type ledgerServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new ledger read service.
func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerServiceImpl{transactionRepo: transactionRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerServiceImpl)(nil)

func (s *ledgerServiceImpl) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *ledgerServiceImpl) ListAccountTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return s.transactionRepo.ListTransactionsByAccount(ctx, accountID, limit, nextToken)
}

// goldLedgerServiceImpl provides read access to the physical gold ledger.
type goldLedgerServiceImpl struct {
	BaseService
	goldLedgerRepo portsrepo.GoldLedgerRepositoryFacade
}

// NewGoldLedgerService creates a new gold ledger read service.
func NewGoldLedgerService(goldLedgerRepo portsrepo.GoldLedgerRepositoryFacade) portssvc.GoldLedgerSvcFacade {
	return &goldLedgerServiceImpl{goldLedgerRepo: goldLedgerRepo}
}

var _ portssvc.GoldLedgerSvcFacade = (*goldLedgerServiceImpl)(nil)

func (s *goldLedgerServiceImpl) ListPartyEntries(ctx context.Context, partyID string) ([]domain.GoldLedgerEntry, error) {
	return s.goldLedgerRepo.ListEntriesByParty(ctx, partyID)
}

func (s *goldLedgerServiceImpl) PartyGoldPosition(ctx context.Context, partyID string) (decimal.Decimal, error) {
	return s.goldLedgerRepo.PartyGoldPosition(ctx, partyID)
}
