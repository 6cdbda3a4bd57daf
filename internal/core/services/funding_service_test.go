package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harvestive/harvestive-backend/internal/apperrors"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/core/services"
	"github.com/harvestive/harvestive-backend/internal/dto"
	"github.com/harvestive/harvestive-backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FundingServiceTestSuite struct {
	suite.Suite
	mockDepositRepo    *MockDepositRepository
	mockWithdrawalRepo *MockWithdrawalRepository
	mockMethodRepo     *MockMethodRepository
	mockUserRepo       *MockUserRepository
	mockAccrual        *MockAccrualService
	service            portssvc.FundingSvcFacade
}

func (suite *FundingServiceTestSuite) SetupTest() {
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockWithdrawalRepo = new(MockWithdrawalRepository)
	suite.mockMethodRepo = new(MockMethodRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAccrual = new(MockAccrualService)
	cfg := &config.Config{
		MinDeposit:    decimal.RequireFromString("100"),
		MinWithdrawal: decimal.RequireFromString("20000"),
	}
	suite.service = services.NewFundingService(
		cfg,
		suite.mockDepositRepo,
		suite.mockWithdrawalRepo,
		suite.mockMethodRepo,
		suite.mockUserRepo,
		suite.mockAccrual,
	)
}

// --- Deposits ---

func (suite *FundingServiceTestSuite) TestRequestDeposit_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	method := &domain.DepositMethod{
		MethodID: uuid.NewString(),
		Name:     "Bitcoin",
		Address:  "bc1qexample",
		Enabled:  true,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockMethodRepo.On("FindDepositMethodByID", ctx, method.MethodID).
		Return(method, nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.UserID == userID &&
			d.Amount.Equal(decimal.RequireFromString("500")) &&
			d.MethodName == "Bitcoin" &&
			d.Address == "bc1qexample" &&
			d.Status == domain.FundingPending
	})).Return(nil).Once()

	deposit, err := suite.service.RequestDeposit(ctx, userID, dto.CreateDepositRequest{
		Amount:   decimal.RequireFromString("500"),
		MethodID: method.MethodID,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(deposit)
	suite.Equal(domain.FundingPending, deposit.Status)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *FundingServiceTestSuite) TestRequestDeposit_BelowMinimum() {
	ctx := context.Background()
	userID := uuid.NewString()

	deposit, err := suite.service.RequestDeposit(ctx, userID, dto.CreateDepositRequest{
		Amount:   decimal.RequireFromString("99.99"),
		MethodID: uuid.NewString(),
	})

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveDeposit")
}

func (suite *FundingServiceTestSuite) TestRequestDeposit_DisabledMethod() {
	ctx := context.Background()
	userID := uuid.NewString()
	method := &domain.DepositMethod{MethodID: uuid.NewString(), Name: "Legacy", Enabled: false}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockMethodRepo.On("FindDepositMethodByID", ctx, method.MethodID).
		Return(method, nil).Once()

	deposit, err := suite.service.RequestDeposit(ctx, userID, dto.CreateDepositRequest{
		Amount:   decimal.RequireFromString("500"),
		MethodID: method.MethodID,
	})

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundingServiceTestSuite) TestApproveDeposit_Delegates() {
	ctx := context.Background()
	depositID := uuid.NewString()
	userID := uuid.NewString()
	pending := &domain.Deposit{
		DepositID: depositID,
		UserID:    userID,
		Amount:    decimal.RequireFromString("500"),
		Status:    domain.FundingPending,
	}
	approved := *pending
	approved.Status = domain.FundingApproved

	suite.mockDepositRepo.On("FindDepositByID", ctx, depositID).
		Return(pending, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockDepositRepo.On("ApproveDeposit", ctx, depositID, mock.AnythingOfType("time.Time")).
		Return(&approved, nil).Once()

	got, err := suite.service.ApproveDeposit(ctx, depositID)

	suite.Require().NoError(err)
	suite.Equal(domain.FundingApproved, got.Status)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *FundingServiceTestSuite) TestApproveDeposit_AlreadyDecided() {
	ctx := context.Background()
	depositID := uuid.NewString()
	userID := uuid.NewString()
	decided := &domain.Deposit{
		DepositID: depositID,
		UserID:    userID,
		Amount:    decimal.RequireFromString("500"),
		Status:    domain.FundingRejected,
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, depositID).
		Return(decided, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockDepositRepo.On("ApproveDeposit", ctx, depositID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrValidation).Once()

	got, err := suite.service.ApproveDeposit(ctx, depositID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundingServiceTestSuite) TestApproveDeposit_BlockedOwner() {
	ctx := context.Background()
	depositID := uuid.NewString()
	userID := uuid.NewString()
	pending := &domain.Deposit{
		DepositID: depositID,
		UserID:    userID,
		Amount:    decimal.RequireFromString("500"),
		Status:    domain.FundingPending,
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, depositID).
		Return(pending, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, Blocked: true}, nil).Once()

	got, err := suite.service.ApproveDeposit(ctx, depositID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "ApproveDeposit", mock.Anything, mock.Anything, mock.Anything)
}

// --- Withdrawals ---

func (suite *FundingServiceTestSuite) TestRequestWithdrawal_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{
		UserID:  userID,
		Balance: decimal.RequireFromString("25000"),
	}

	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockWithdrawalRepo.On("SaveWithdrawal", ctx, mock.MatchedBy(func(w domain.Withdrawal) bool {
		return w.UserID == userID &&
			w.Amount.Equal(decimal.RequireFromString("20000")) &&
			w.Status == domain.FundingPending
	})).Return(nil).Once()

	withdrawal, err := suite.service.RequestWithdrawal(ctx, userID, dto.CreateWithdrawalRequest{
		Amount:  decimal.RequireFromString("20000"),
		Method:  "Bitcoin",
		Address: "bc1qexample",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(withdrawal)
	suite.mockWithdrawalRepo.AssertExpectations(suite.T())
	suite.mockAccrual.AssertExpectations(suite.T())
}

func (suite *FundingServiceTestSuite) TestRequestWithdrawal_BelowMinimum() {
	ctx := context.Background()
	userID := uuid.NewString()

	withdrawal, err := suite.service.RequestWithdrawal(ctx, userID, dto.CreateWithdrawalRequest{
		Amount:  decimal.RequireFromString("19999"),
		Method:  "Bitcoin",
		Address: "bc1qexample",
	})

	suite.Require().Error(err)
	suite.Nil(withdrawal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccrual.AssertNotCalled(suite.T(), "Reconcile")
}

func (suite *FundingServiceTestSuite) TestRequestWithdrawal_InsufficientBalance() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{
		UserID:  userID,
		Balance: decimal.RequireFromString("15000"),
	}

	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	withdrawal, err := suite.service.RequestWithdrawal(ctx, userID, dto.CreateWithdrawalRequest{
		Amount:  decimal.RequireFromString("20000"),
		Method:  "Bitcoin",
		Address: "bc1qexample",
	})

	suite.Require().Error(err)
	suite.Nil(withdrawal)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockWithdrawalRepo.AssertNotCalled(suite.T(), "SaveWithdrawal")
}

func (suite *FundingServiceTestSuite) TestApproveWithdrawal_ReconcilesOwnerFirst() {
	ctx := context.Background()
	withdrawalID := uuid.NewString()
	userID := uuid.NewString()
	pending := &domain.Withdrawal{
		WithdrawalID: withdrawalID,
		UserID:       userID,
		Amount:       decimal.RequireFromString("20000"),
		Status:       domain.FundingPending,
	}
	approvedAt := time.Now()
	approved := *pending
	approved.Status = domain.FundingApproved
	approved.ApprovedAt = &approvedAt

	suite.mockWithdrawalRepo.On("FindWithdrawalByID", ctx, withdrawalID).
		Return(pending, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	suite.mockWithdrawalRepo.On("ApproveWithdrawal", ctx, withdrawalID, mock.AnythingOfType("time.Time")).
		Return(&approved, nil).Once()

	got, err := suite.service.ApproveWithdrawal(ctx, withdrawalID)

	suite.Require().NoError(err)
	suite.Equal(domain.FundingApproved, got.Status)
	suite.mockAccrual.AssertExpectations(suite.T())
	suite.mockWithdrawalRepo.AssertExpectations(suite.T())
}

func (suite *FundingServiceTestSuite) TestApproveWithdrawal_BalanceDrained() {
	ctx := context.Background()
	withdrawalID := uuid.NewString()
	userID := uuid.NewString()
	pending := &domain.Withdrawal{
		WithdrawalID: withdrawalID,
		UserID:       userID,
		Amount:       decimal.RequireFromString("20000"),
		Status:       domain.FundingPending,
	}

	suite.mockWithdrawalRepo.On("FindWithdrawalByID", ctx, withdrawalID).
		Return(pending, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	// The owner spent the money between request and approval; the guarded
	// debit fails and the request stays pending.
	suite.mockWithdrawalRepo.On("ApproveWithdrawal", ctx, withdrawalID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	got, err := suite.service.ApproveWithdrawal(ctx, withdrawalID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

// --- Admin listings ---

func (suite *FundingServiceTestSuite) TestListAllDeposits_AttachesOwners() {
	ctx := context.Background()
	userID := uuid.NewString()
	deposits := []domain.Deposit{
		{DepositID: uuid.NewString(), UserID: userID},
		{DepositID: uuid.NewString(), UserID: userID},
	}
	users := map[string]domain.User{
		userID: {UserID: userID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
	}

	suite.mockDepositRepo.On("ListDeposits", ctx).Return(deposits, nil).Once()
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{userID}).Return(users, nil).Once()

	got, owners, err := suite.service.ListAllDeposits(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal("Ada Lovelace", owners[userID].FullName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestFundingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundingServiceTestSuite))
}
