package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/core/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	repos   *mockRepos
	service portssvc.PurchaseSvcFacade
	ctx     context.Context
	actor   dto.Actor
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.service = services.NewPurchaseService(suite.repos.purchase, suite.repos.auditLog)
	suite.ctx = context.Background()
	suite.actor = dto.Actor{UserID: "user-1", UserName: "Test User"}
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase() {
	req := dto.CreatePurchaseRequest{
		VendorID:   "vendor-1",
		VendorName: "Gold Supplier",
		TotalMoney: dec("1075.005"),
	}

	suite.repos.purchase.On("SavePurchase", suite.ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.VendorID == "vendor-1" &&
			p.Status == domain.StatusDraft &&
			p.TotalMoney.Equal(dec("1075.01")) &&
			p.BalanceDueMoney.Equal(dec("1075.01")) &&
			p.CreatedBy == "user-1"
	})).Return(nil)

	p, err := suite.service.CreatePurchase(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Contains(p.PurchaseNumber, "PUR-")
	suite.repos.purchase.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_RejectsNegativeTotal() {
	req := dto.CreatePurchaseRequest{
		VendorID:   "vendor-1",
		VendorName: "Gold Supplier",
		TotalMoney: dec("-1.00"),
	}

	_, err := suite.service.CreatePurchase(suite.ctx, req, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.repos.purchase.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestFinalizePurchase() {
	draft := &domain.Purchase{
		PurchaseID:      "purchase-1",
		PurchaseNumber:  "PUR-TEST0001",
		VendorID:        "vendor-1",
		TotalMoney:      dec("500.00"),
		BalanceDueMoney: dec("500.00"),
		Status:          domain.StatusDraft,
	}
	finalized := &domain.Purchase{
		PurchaseID: "purchase-1",
		Status:     domain.StatusFinalized,
	}

	suite.repos.purchase.On("FindPurchaseByID", suite.ctx, "purchase-1").Return(draft, nil).Once()
	suite.repos.purchase.On("AcquireFinalizeLock", suite.ctx, "purchase-1", mock.Anything).Return(nil)
	suite.repos.purchase.On("MarkFinalized", suite.ctx, "purchase-1", "user-1", mock.Anything).Return(nil)
	suite.repos.auditLog.On("SaveAuditLog", suite.ctx, mock.MatchedBy(func(a domain.AuditLog) bool {
		return a.Module == "purchases" && a.RecordID == "purchase-1" && a.Action == "finalize"
	})).Return(nil)
	suite.repos.purchase.On("FindPurchaseByID", suite.ctx, "purchase-1").Return(finalized, nil).Once()

	p, err := suite.service.FinalizePurchase(suite.ctx, "purchase-1", suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusFinalized, p.Status)
	suite.repos.purchase.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestFinalizePurchase_AlreadyFinalized() {
	suite.repos.purchase.On("FindPurchaseByID", suite.ctx, "purchase-1").Return(&domain.Purchase{
		PurchaseID: "purchase-1",
		Status:     domain.StatusFinalized,
	}, nil)

	_, err := suite.service.FinalizePurchase(suite.ctx, "purchase-1", suite.actor)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.repos.purchase.AssertNotCalled(suite.T(), "AcquireFinalizeLock", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestFinalizePurchase_RollsBackWhenCommitFails() {
	commitErr := errors.New("connection reset")

	suite.repos.purchase.On("FindPurchaseByID", suite.ctx, "purchase-1").Return(&domain.Purchase{
		PurchaseID: "purchase-1",
		Status:     domain.StatusDraft,
	}, nil)
	suite.repos.purchase.On("AcquireFinalizeLock", suite.ctx, "purchase-1", mock.Anything).Return(nil)
	suite.repos.purchase.On("MarkFinalized", suite.ctx, "purchase-1", "user-1", mock.Anything).Return(commitErr)
	suite.repos.purchase.On("RollbackToDraft", suite.ctx, "purchase-1").Return(nil)

	_, err := suite.service.FinalizePurchase(suite.ctx, "purchase-1", suite.actor)

	var partialErr *apperrors.PartialFailureError
	suite.Require().ErrorAs(err, &partialErr)
	suite.Require().ErrorIs(err, commitErr)
	suite.repos.purchase.AssertExpectations(suite.T())
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
