package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	SequenceRepo    SequenceRepository
	GoldLedgerRepo  GoldLedgerRepositoryFacade
	ReturnRepo      ReturnRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	PurchaseRepo    PurchaseRepositoryFacade
	PartyRepo       PartyRepositoryFacade
	AuditLogRepo    AuditLogRepositoryFacade
}
