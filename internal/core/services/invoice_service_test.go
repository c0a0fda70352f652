package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/core/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	repos   *mockRepos
	service portssvc.InvoiceSvcFacade
	actor   dto.Actor

	cashAccount  domain.Account
	salesAccount domain.Account
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.service = services.NewInvoiceService(suite.repos.provider())
	suite.actor = dto.Actor{UserID: uuid.NewString(), UserName: "Tester"}

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	suite.salesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Sales",
		AccountType: domain.Income,
	}
}

func (suite *InvoiceServiceTestSuite) finalizedInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-TEST0001",
		CustomerID:    uuid.NewString(),
		CustomerName:  "Asha",
		GrandTotal:    dec("450.00"),
		PaidAmount:    dec("100.00"),
		BalanceDue:    dec("350.00"),
		PaymentStatus: domain.PaymentPartial,
		Status:        domain.StatusFinalized,
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice() {
	var saved domain.Invoice
	suite.repos.invoice.On("SaveInvoice", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Invoice) }).Return(nil)

	inv, err := suite.service.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:   uuid.NewString(),
		CustomerName: "Asha",
		GrandTotal:   dec("450.005"),
	}, suite.actor.UserID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusDraft, saved.Status)
	assert.Equal(suite.T(), domain.PaymentUnpaid, saved.PaymentStatus)
	// Money is quantized to 2dp; balance due starts at the full total.
	assert.Equal(suite.T(), "450.01", saved.GrandTotal.String())
	assert.True(suite.T(), saved.BalanceDue.Equal(saved.GrandTotal))
	assert.True(suite.T(), saved.PaidAmount.IsZero())
	assert.Contains(suite.T(), inv.InvoiceNumber, "INV-")
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment() {
	inv := suite.finalizedInvoice()

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	suite.repos.account.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil)
	suite.repos.account.On("FindAccountByName", mock.Anything, "Sales", domain.Income).Return(&suite.salesAccount, nil)
	suite.repos.sequence.On("NextTransactionSequence", mock.Anything, mock.Anything).Return(int64(41), nil).Once()
	suite.repos.sequence.On("NextTransactionSequence", mock.Anything, mock.Anything).Return(int64(42), nil).Once()

	// Debit the settlement asset (+200.00), credit sales income (+200.00).
	suite.repos.transaction.On("RecordTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.TransactionType == domain.Debit && txn.AccountID == suite.cashAccount.AccountID
		}),
		dec("200.00")).Return(nil)
	suite.repos.transaction.On("RecordTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.TransactionType == domain.Credit && txn.AccountID == suite.salesAccount.AccountID
		}),
		dec("200.00")).Return(nil)

	suite.repos.invoice.On("UpdatePaymentFields", mock.Anything, inv.InvoiceID,
		dec("300.00"), dec("150.00"), domain.PaymentPartial,
		suite.actor.UserID, mock.Anything).Return(nil)
	suite.repos.party.On("AdjustOutstandingBalance", mock.Anything, inv.CustomerID,
		dec("-200.00"), suite.actor.UserID, mock.Anything).Return(nil)
	suite.repos.auditLog.On("SaveAuditLog", mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == "record_payment"
	})).Return(nil)

	result, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("200.00"),
		AccountID: suite.cashAccount.AccountID,
		Mode:      "CASH",
	}, suite.actor)

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.DebitTransactionID)
	assert.NotEmpty(suite.T(), result.CreditTransactionID)
	assert.NotEqual(suite.T(), result.DebitTransactionID, result.CreditTransactionID)
	suite.repos.invoice.AssertExpectations(suite.T())
	suite.repos.transaction.AssertExpectations(suite.T())
	suite.repos.party.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_CreatesSalesAccountOnFirstUse() {
	inv := suite.finalizedInvoice()

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	suite.repos.account.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil)
	suite.repos.account.On("FindAccountByName", mock.Anything, "Sales", domain.Income).Return(nil, apperrors.ErrNotFound)
	suite.repos.account.On("SaveAccount", mock.Anything, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == "Sales" && acc.AccountType == domain.Income
	})).Return(nil)
	suite.repos.sequence.On("NextTransactionSequence", mock.Anything, mock.Anything).Return(int64(50), nil)
	suite.repos.transaction.On("RecordTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.repos.invoice.On("UpdatePaymentFields", mock.Anything, inv.InvoiceID,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.repos.party.On("AdjustOutstandingBalance", mock.Anything, inv.CustomerID,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.repos.auditLog.On("SaveAuditLog", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("10.00"),
		AccountID: suite.cashAccount.AccountID,
	}, suite.actor)

	require.NoError(suite.T(), err)
	suite.repos.account.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_RejectsDraftInvoice() {
	inv := suite.finalizedInvoice()
	inv.Status = domain.StatusDraft

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)

	_, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("10.00"),
		AccountID: suite.cashAccount.AccountID,
	}, suite.actor)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_RejectsOverpayment() {
	inv := suite.finalizedInvoice()

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)

	_, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("350.01"),
		AccountID: suite.cashAccount.AccountID,
	}, suite.actor)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.repos.transaction.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_ReversesDebitWhenCreditFails() {
	inv := suite.finalizedInvoice()

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	suite.repos.account.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil)
	suite.repos.account.On("FindAccountByName", mock.Anything, "Sales", domain.Income).Return(&suite.salesAccount, nil)
	suite.repos.sequence.On("NextTransactionSequence", mock.Anything, mock.Anything).Return(int64(60), nil)

	var debitTxnID string
	suite.repos.transaction.On("RecordTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool { return txn.TransactionType == domain.Debit }),
		mock.Anything).
		Run(func(args mock.Arguments) {
			debitTxnID = args.Get(1).(domain.Transaction).TransactionID
		}).Return(nil)

	creditErr := errors.New("income account row locked")
	suite.repos.transaction.On("RecordTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool { return txn.TransactionType == domain.Credit }),
		mock.Anything).Return(creditErr)

	suite.repos.transaction.On("ReverseTransaction", mock.Anything, mock.MatchedBy(func(id string) bool {
		return id == debitTxnID
	})).Return(nil)
	suite.repos.auditLog.On("SaveAuditLog", mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == "payment_rollback"
	})).Return(nil)

	_, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("25.00"),
		AccountID: suite.cashAccount.AccountID,
	}, suite.actor)

	require.Error(suite.T(), err)
	var partial *apperrors.PartialFailureError
	require.ErrorAs(suite.T(), err, &partial)
	suite.repos.transaction.AssertExpectations(suite.T())
	// No unbalanced entry survives, so the invoice is never advanced.
	suite.repos.invoice.AssertNotCalled(suite.T(), "UpdatePaymentFields",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_RollsBackLegsWhenInvoiceUpdateFails() {
	inv := suite.finalizedInvoice()

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	suite.repos.account.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil)
	suite.repos.account.On("FindAccountByName", mock.Anything, "Sales", domain.Income).Return(&suite.salesAccount, nil)
	suite.repos.sequence.On("NextTransactionSequence", mock.Anything, mock.Anything).Return(int64(70), nil)

	var debitTxnID, creditTxnID string
	suite.repos.transaction.On("RecordTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool { return txn.TransactionType == domain.Debit }),
		mock.Anything).
		Run(func(args mock.Arguments) {
			debitTxnID = args.Get(1).(domain.Transaction).TransactionID
		}).Return(nil)
	suite.repos.transaction.On("RecordTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool { return txn.TransactionType == domain.Credit }),
		mock.Anything).
		Run(func(args mock.Arguments) {
			creditTxnID = args.Get(1).(domain.Transaction).TransactionID
		}).Return(nil)

	updateErr := errors.New("invoices table deadlock")
	suite.repos.invoice.On("UpdatePaymentFields", mock.Anything, inv.InvoiceID,
		dec("130.00"), dec("320.00"), domain.PaymentPartial,
		suite.actor.UserID, mock.Anything).Return(updateErr)

	// Both legs must be undone once the invoice cannot be advanced.
	suite.repos.transaction.On("ReverseTransaction", mock.Anything, mock.MatchedBy(func(id string) bool {
		return id == creditTxnID
	})).Return(nil).Once()
	suite.repos.transaction.On("ReverseTransaction", mock.Anything, mock.MatchedBy(func(id string) bool {
		return id == debitTxnID
	})).Return(nil).Once()
	suite.repos.auditLog.On("SaveAuditLog", mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == "payment_rollback"
	})).Return(nil)

	_, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("30.00"),
		AccountID: suite.cashAccount.AccountID,
	}, suite.actor)

	require.Error(suite.T(), err)
	var partial *apperrors.PartialFailureError
	require.ErrorAs(suite.T(), err, &partial)
	assert.ErrorIs(suite.T(), err, updateErr)
	suite.repos.transaction.AssertExpectations(suite.T())
	suite.repos.party.AssertNotCalled(suite.T(), "AdjustOutstandingBalance",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_RestoresInvoiceWhenPartyAdjustFails() {
	inv := suite.finalizedInvoice()

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	suite.repos.account.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil)
	suite.repos.account.On("FindAccountByName", mock.Anything, "Sales", domain.Income).Return(&suite.salesAccount, nil)
	suite.repos.sequence.On("NextTransactionSequence", mock.Anything, mock.Anything).Return(int64(80), nil)
	suite.repos.transaction.On("RecordTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// The advance succeeds once, then the rollback restores the prior fields.
	suite.repos.invoice.On("UpdatePaymentFields", mock.Anything, inv.InvoiceID,
		dec("140.00"), dec("310.00"), domain.PaymentPartial,
		suite.actor.UserID, mock.Anything).Return(nil).Once()

	partyErr := errors.New("party row missing")
	suite.repos.party.On("AdjustOutstandingBalance", mock.Anything, inv.CustomerID,
		dec("-40.00"), suite.actor.UserID, mock.Anything).Return(partyErr)

	suite.repos.invoice.On("UpdatePaymentFields", mock.Anything, inv.InvoiceID,
		dec("100.00"), dec("350.00"), domain.PaymentPartial,
		suite.actor.UserID, mock.Anything).Return(nil).Once()
	suite.repos.transaction.On("ReverseTransaction", mock.Anything, mock.Anything).Return(nil).Twice()
	suite.repos.auditLog.On("SaveAuditLog", mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == "payment_rollback"
	})).Return(nil)

	_, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("40.00"),
		AccountID: suite.cashAccount.AccountID,
	}, suite.actor)

	require.Error(suite.T(), err)
	var partial *apperrors.PartialFailureError
	require.ErrorAs(suite.T(), err, &partial)
	assert.ErrorIs(suite.T(), err, partyErr)
	suite.repos.invoice.AssertExpectations(suite.T())
	suite.repos.transaction.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_RollbackFailureIsCritical() {
	inv := suite.finalizedInvoice()

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	suite.repos.account.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil)
	suite.repos.account.On("FindAccountByName", mock.Anything, "Sales", domain.Income).Return(&suite.salesAccount, nil)
	suite.repos.sequence.On("NextTransactionSequence", mock.Anything, mock.Anything).Return(int64(90), nil)
	suite.repos.transaction.On("RecordTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	updateErr := errors.New("invoices table deadlock")
	suite.repos.invoice.On("UpdatePaymentFields", mock.Anything, inv.InvoiceID,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(updateErr)

	reverseErr := errors.New("journal row gone")
	suite.repos.transaction.On("ReverseTransaction", mock.Anything, mock.Anything).Return(reverseErr)

	_, err := suite.service.RecordPayment(context.Background(), inv.InvoiceID, dto.RecordPaymentRequest{
		Amount:    dec("15.00"),
		AccountID: suite.cashAccount.AccountID,
	}, suite.actor)

	require.Error(suite.T(), err)
	var critical *apperrors.RollbackFailureError
	require.ErrorAs(suite.T(), err, &critical)
	assert.Equal(suite.T(), updateErr, critical.FinalizeErr)
	// Compensation stops at the first failure and is never retried.
	suite.repos.auditLog.AssertNotCalled(suite.T(), "SaveAuditLog", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_LockConflict() {
	inv := suite.finalizedInvoice()
	inv.Status = domain.StatusDraft

	suite.repos.invoice.On("FindInvoiceByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	suite.repos.invoice.On("AcquireFinalizeLock", mock.Anything, inv.InvoiceID, mock.Anything).Return(apperrors.ErrConflict)

	_, err := suite.service.FinalizeInvoice(context.Background(), inv.InvoiceID, suite.actor)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.repos.invoice.AssertNotCalled(suite.T(), "MarkFinalized", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
