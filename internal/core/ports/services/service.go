package services

// ServiceContainer holds instances of all the application services. It is the
// entry point for handlers and CLI commands.
type ServiceContainer struct {
	Account        AccountSvcFacade
	Ledger         LedgerSvcFacade
	GoldLedger     GoldLedgerSvcFacade
	Return         ReturnSvcFacade
	Invoice        InvoiceSvcFacade
	Purchase       PurchaseSvcFacade
	BalanceHistory BalanceHistorySvcFacade
}
