package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error) {
	args := m.Called(ctx, name, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) ResetToOpening(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByReference(ctx context.Context, ref domain.DocumentRef) ([]domain.Transaction, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountAsc(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction, signedDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, signedDelta)
	return args.Error(0)
}

func (m *MockTransactionRepository) ReverseTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SetBalanceFields(ctx context.Context, transactionID string, balanceBefore, balanceAfter decimal.Decimal) error {
	args := m.Called(ctx, transactionID, balanceBefore, balanceAfter)
	return args.Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextTransactionSequence(ctx context.Context, year int) (int64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock GoldLedgerRepository ---
type MockGoldLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.GoldLedgerRepositoryFacade = (*MockGoldLedgerRepository)(nil)

func (m *MockGoldLedgerRepository) RecordEntry(ctx context.Context, entry domain.GoldLedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGoldLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockGoldLedgerRepository) ListEntriesByParty(ctx context.Context, partyID string) ([]domain.GoldLedgerEntry, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoldLedgerEntry), args.Error(1)
}

func (m *MockGoldLedgerRepository) PartyGoldPosition(ctx context.Context, partyID string) (decimal.Decimal, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ReturnRepository ---
type MockReturnRepository struct {
	mock.Mock
}

var _ portsrepo.ReturnRepositoryFacade = (*MockReturnRepository)(nil)

func (m *MockReturnRepository) FindReturnByID(ctx context.Context, returnID string) (*domain.Return, error) {
	args := m.Called(ctx, returnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}

func (m *MockReturnRepository) SaveReturn(ctx context.Context, ret domain.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockReturnRepository) AcquireFinalizeLock(ctx context.Context, returnID string, now time.Time) error {
	args := m.Called(ctx, returnID, now)
	return args.Error(0)
}

func (m *MockReturnRepository) MarkFinalized(ctx context.Context, ret domain.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockReturnRepository) RollbackToDraft(ctx context.Context, returnID string) error {
	args := m.Called(ctx, returnID)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, inv domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdatePaymentFields(ctx context.Context, invoiceID string, paidAmount, balanceDue decimal.Decimal, paymentStatus domain.PaymentStatus, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, paidAmount, balanceDue, paymentStatus, userID, now)
	return args.Error(0)
}

func (m *MockInvoiceRepository) AcquireFinalizeLock(ctx context.Context, invoiceID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, now)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkFinalized(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, userID, now)
	return args.Error(0)
}

func (m *MockInvoiceRepository) RollbackToDraft(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryFacade = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, p domain.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepository) UpdateBalanceDue(ctx context.Context, purchaseID string, balanceDue decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, purchaseID, balanceDue, userID, now)
	return args.Error(0)
}

func (m *MockPurchaseRepository) AcquireFinalizeLock(ctx context.Context, purchaseID string, now time.Time) error {
	args := m.Called(ctx, purchaseID, now)
	return args.Error(0)
}

func (m *MockPurchaseRepository) MarkFinalized(ctx context.Context, purchaseID string, userID string, now time.Time) error {
	args := m.Called(ctx, purchaseID, userID, now)
	return args.Error(0)
}

func (m *MockPurchaseRepository) RollbackToDraft(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) AdjustOutstandingBalance(ctx context.Context, partyID string, delta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, partyID, delta, userID, now)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// newMockProvider bundles fresh mocks into a RepositoryProvider for services
// that take the whole provider.
type mockRepos struct {
	account     *MockAccountRepository
	transaction *MockTransactionRepository
	sequence    *MockSequenceRepository
	goldLedger  *MockGoldLedgerRepository
	ret         *MockReturnRepository
	invoice     *MockInvoiceRepository
	purchase    *MockPurchaseRepository
	party       *MockPartyRepository
	auditLog    *MockAuditLogRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		account:     new(MockAccountRepository),
		transaction: new(MockTransactionRepository),
		sequence:    new(MockSequenceRepository),
		goldLedger:  new(MockGoldLedgerRepository),
		ret:         new(MockReturnRepository),
		invoice:     new(MockInvoiceRepository),
		purchase:    new(MockPurchaseRepository),
		party:       new(MockPartyRepository),
		auditLog:    new(MockAuditLogRepository),
	}
}

func (r *mockRepos) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     r.account,
		TransactionRepo: r.transaction,
		SequenceRepo:    r.sequence,
		GoldLedgerRepo:  r.goldLedger,
		ReturnRepo:      r.ret,
		InvoiceRepo:     r.invoice,
		PurchaseRepo:    r.purchase,
		PartyRepo:       r.party,
		AuditLogRepo:    r.auditLog,
	}
}
