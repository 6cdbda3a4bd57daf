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
	"github.com/harvestive/harvestive-backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo       *MockUserRepository
	mockDepositRepo    *MockDepositRepository
	mockWithdrawalRepo *MockWithdrawalRepository
	mockInvestmentRepo *MockInvestmentRepository
	mockAccrual        *MockAccrualService
	service            portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockWithdrawalRepo = new(MockWithdrawalRepository)
	suite.mockInvestmentRepo = new(MockInvestmentRepository)
	suite.mockAccrual = new(MockAccrualService)
	suite.service = services.NewUserService(
		suite.mockUserRepo,
		suite.mockDepositRepo,
		suite.mockWithdrawalRepo,
		suite.mockInvestmentRepo,
		suite.mockAccrual,
	)
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Password:    "password123",
		DateOfBirth: "1990-12-10",
	}
}

// --- RegisterUser ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := registerReq()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "ada@example.com" &&
			user.Username == "ada" &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password &&
			user.Balance.IsZero()
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("Ada", user.FirstName)
	suite.False(user.Blocked)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_NormalizesEmail() {
	ctx := context.Background()
	req := registerReq()
	req.Email = "  Ada@Example.COM "

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "ada@example.com"
	})).Return(nil).Once()

	_, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := registerReq()
	existing := &domain.User{UserID: uuid.NewString(), Email: "ada@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestRegisterUser_BadDateOfBirth() {
	ctx := context.Background()
	req := registerReq()
	req.DateOfBirth = "10/12/1990"

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestRegisterUser_TooYoung() {
	ctx := context.Background()
	req := registerReq()
	req.DateOfBirth = time.Now().AddDate(-12, 0, 0).Format("2006-01-02")

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) authUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ada@example.com",
		PasswordHash: hash,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := suite.authUser("password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ada@example.com", "password123")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.NotNil(got.LastLoginAt)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := suite.authUser("password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ada@example.com", "wrong")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown email and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Blocked() {
	ctx := context.Background()
	user := suite.authUser("password123")
	user.Blocked = true

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ada@example.com", "password123")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateLastLogin")
}

// --- GetDashboard ---

func (suite *UserServiceTestSuite) TestGetDashboard_ReconcilesFirst() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{
		UserID:        userID,
		Balance:       decimal.RequireFromString("1035"),
		CurrentInvest: decimal.RequireFromString("1000"),
	}

	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockInvestmentRepo.On("SumActivePrincipal", ctx, userID).
		Return(decimal.RequireFromString("1000"), nil).Once()
	suite.mockDepositRepo.On("FindDepositsByUserID", ctx, userID).
		Return([]domain.Deposit{}, nil).Once()
	suite.mockWithdrawalRepo.On("FindWithdrawalsByUserID", ctx, userID).
		Return([]domain.Withdrawal{}, nil).Once()
	suite.mockInvestmentRepo.On("FindInvestmentsByUserID", ctx, userID).
		Return([]domain.Investment{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(userID, dashboard.User.UserID)
	suite.mockAccrual.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetDashboard_BlockedAccount() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{
		UserID:  userID,
		Balance: decimal.RequireFromString("5000"),
		Blocked: true,
	}

	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(dashboard)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "FindDepositsByUserID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetUserByID_BlockedAccount() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, Blocked: true}, nil).Once()

	got, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestGetDashboard_RefreshesStaleAggregate() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{
		UserID:        userID,
		CurrentInvest: decimal.RequireFromString("3000"),
	}
	// One investment completed since the aggregate was cached.
	fresh := decimal.RequireFromString("2000")

	suite.mockAccrual.On("Reconcile", ctx, userID).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockInvestmentRepo.On("SumActivePrincipal", ctx, userID).Return(fresh, nil).Once()
	suite.mockUserRepo.On("SetCurrentInvest", ctx, userID, fresh, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockDepositRepo.On("FindDepositsByUserID", ctx, userID).
		Return([]domain.Deposit{}, nil).Once()
	suite.mockWithdrawalRepo.On("FindWithdrawalsByUserID", ctx, userID).
		Return([]domain.Withdrawal{}, nil).Once()
	suite.mockInvestmentRepo.On("FindInvestmentsByUserID", ctx, userID).
		Return([]domain.Investment{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().NoError(err)
	suite.True(dashboard.User.CurrentInvest.Equal(fresh))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetDashboard_ReconcileFailureAborts() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := apperrors.NewAppError(500, "accrual failed", nil)

	suite.mockAccrual.On("Reconcile", ctx, userID).Return(expectedErr).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(dashboard)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

// --- ChangePassword ---

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrent() {
	ctx := context.Background()
	user := suite.authUser("password123")

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, dto.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newpassword",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword")
}

// --- Admin operations ---

func (suite *UserServiceTestSuite) TestSetBlocked_Toggles() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("SetBlocked", ctx, userID, true, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	got, err := suite.service.SetBlocked(ctx, userID, true)

	suite.Require().NoError(err)
	suite.True(got.Blocked)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_Cascades() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockUserRepo.On("DeleteUserCascade", ctx, userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUserCascade")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
