package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		SequenceRepo:    newPgxSequenceRepository(dbPool),
		GoldLedgerRepo:  newPgxGoldLedgerRepository(dbPool),
		ReturnRepo:      newPgxReturnRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		PurchaseRepo:    newPgxPurchaseRepository(dbPool),
		PartyRepo:       newPgxPartyRepository(dbPool),
		AuditLogRepo:    newPgxAuditLogRepository(dbPool),
	}
}
