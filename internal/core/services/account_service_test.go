package services_test

import (
	"context"
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

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo  *MockAccountRepository
	auditLogRepo *MockAuditLogRepository
	service      portssvc.AccountSvcFacade
	actor        dto.Actor
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.auditLogRepo = new(MockAuditLogRepository)
	suite.service = services.NewAccountService(suite.accountRepo, suite.auditLogRepo)
	suite.actor = dto.Actor{UserID: uuid.NewString(), UserName: "Tester"}
}

func (suite *AccountServiceTestSuite) TestCreateAccount() {
	var saved domain.Account
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Account) }).Return(nil)

	account, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:           "Cash",
		AccountType:    domain.Asset,
		OpeningBalance: dec("5000.005"),
	}, suite.actor.UserID)

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), account.AccountID)
	// Opening balance is quantized to 2dp and seeds the current balance.
	assert.Equal(suite.T(), "5000.01", saved.OpeningBalance.String())
	assert.True(suite.T(), saved.CurrentBalance.Equal(saved.OpeningBalance))
	assert.Equal(suite.T(), suite.actor.UserID, saved.CreatedBy)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RejectsUnknownType() {
	_, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:        "Suspense",
		AccountType: domain.AccountType("SUSPENSE"),
	}, suite.actor.UserID)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RejectsNegativeOpeningBalance() {
	_, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:           "Cash",
		AccountType:    domain.Asset,
		OpeningBalance: dec("-1.00"),
	}, suite.actor.UserID)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SurfacesDuplicate() {
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:        "Cash",
		AccountType: domain.Asset,
	}, suite.actor.UserID)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestResetToOpening() {
	account := &domain.Account{
		AccountID:      uuid.NewString(),
		Name:           "Cash",
		AccountType:    domain.Asset,
		OpeningBalance: dec("1000.00"),
		CurrentBalance: dec("742.13"),
	}

	suite.accountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil)
	suite.accountRepo.On("ResetToOpening", mock.Anything, account.AccountID,
		suite.actor.UserID, mock.Anything).Return(nil)
	suite.auditLogRepo.On("SaveAuditLog", mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == "reset_to_opening" && entry.Module == "accounts"
	})).Return(nil)

	err := suite.service.ResetToOpening(context.Background(), account.AccountID, suite.actor)

	require.NoError(suite.T(), err)
	suite.accountRepo.AssertExpectations(suite.T())
	suite.auditLogRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResetToOpening_NotFound() {
	accountID := uuid.NewString()
	suite.accountRepo.On("FindAccountByID", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound)

	err := suite.service.ResetToOpening(context.Background(), accountID, suite.actor)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.accountRepo.AssertNotCalled(suite.T(), "ResetToOpening",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount() {
	account := &domain.Account{
		AccountID:      uuid.NewString(),
		Name:           "Old Bank",
		AccountType:    domain.Asset,
		CurrentBalance: dec("0.00"),
	}

	suite.accountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil)
	suite.accountRepo.On("SoftDeleteAccount", mock.Anything, account.AccountID,
		suite.actor.UserID, mock.Anything).Return(nil)
	suite.auditLogRepo.On("SaveAuditLog", mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == "delete" && entry.Module == "accounts" && entry.RecordID == account.AccountID
	})).Return(nil)

	err := suite.service.DeleteAccount(context.Background(), account.AccountID, suite.actor)

	require.NoError(suite.T(), err)
	suite.accountRepo.AssertExpectations(suite.T())
	suite.auditLogRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	accountID := uuid.NewString()
	suite.accountRepo.On("FindAccountByID", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound)

	err := suite.service.DeleteAccount(context.Background(), accountID, suite.actor)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.accountRepo.AssertNotCalled(suite.T(), "SoftDeleteAccount",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
