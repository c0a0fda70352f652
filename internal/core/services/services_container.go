package services

import (
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:        NewAccountService(repos.AccountRepo, repos.AuditLogRepo),
		Ledger:         NewLedgerService(repos.TransactionRepo),
		GoldLedger:     NewGoldLedgerService(repos.GoldLedgerRepo),
		Return:         NewReturnService(repos),
		Invoice:        NewInvoiceService(repos),
		Purchase:       NewPurchaseService(repos.PurchaseRepo, repos.AuditLogRepo),
		BalanceHistory: NewBalanceHistoryService(repos.AccountRepo, repos.TransactionRepo),
	}
}
