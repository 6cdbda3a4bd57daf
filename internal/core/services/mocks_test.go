package services_test

import (
	"context"
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	args := m.Called(ctx, userIDs)
	var users map[string]domain.User
	if args.Get(0) != nil {
		users = args.Get(0).(map[string]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, now time.Time) error {
	args := m.Called(ctx, userID, now)
	return args.Error(0)
}

func (m *MockUserRepository) SetBlocked(ctx context.Context, userID string, blocked bool, now time.Time) error {
	args := m.Called(ctx, userID, blocked, now)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUserCascade(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) CreditBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockUserRepository) DebitBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockUserRepository) SetCurrentInvest(ctx context.Context, userID string, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, userID, amount, now)
	return args.Error(0)
}

// --- Mock InvestmentRepository ---
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) OpenInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	var inv *domain.Investment
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Investment)
	}
	return inv, args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	var invs []domain.Investment
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.Investment)
	}
	return invs, args.Error(1)
}

func (m *MockInvestmentRepository) FindActiveInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	var invs []domain.Investment
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.Investment)
	}
	return invs, args.Error(1)
}

func (m *MockInvestmentRepository) ApplyProfit(ctx context.Context, investment domain.Investment, daysToCredit int, profit decimal.Decimal, newLastProfitAt time.Time, now time.Time) (bool, error) {
	args := m.Called(ctx, investment, daysToCredit, profit, newLastProfitAt, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvestmentRepository) CompleteInvestment(ctx context.Context, investment domain.Investment, completedAt time.Time) (bool, error) {
	args := m.Called(ctx, investment, completedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvestmentRepository) SumActivePrincipal(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock DepositRepository ---
type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID)
	var dep *domain.Deposit
	if args.Get(0) != nil {
		dep = args.Get(0).(*domain.Deposit)
	}
	return dep, args.Error(1)
}

func (m *MockDepositRepository) FindDepositsByUserID(ctx context.Context, userID string) ([]domain.Deposit, error) {
	args := m.Called(ctx, userID)
	var deps []domain.Deposit
	if args.Get(0) != nil {
		deps = args.Get(0).([]domain.Deposit)
	}
	return deps, args.Error(1)
}

func (m *MockDepositRepository) ListDeposits(ctx context.Context) ([]domain.Deposit, error) {
	args := m.Called(ctx)
	var deps []domain.Deposit
	if args.Get(0) != nil {
		deps = args.Get(0).([]domain.Deposit)
	}
	return deps, args.Error(1)
}

func (m *MockDepositRepository) ApproveDeposit(ctx context.Context, depositID string, approvedAt time.Time) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID, approvedAt)
	var dep *domain.Deposit
	if args.Get(0) != nil {
		dep = args.Get(0).(*domain.Deposit)
	}
	return dep, args.Error(1)
}

func (m *MockDepositRepository) RejectDeposit(ctx context.Context, depositID string) error {
	args := m.Called(ctx, depositID)
	return args.Error(0)
}

// --- Mock WithdrawalRepository ---
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID)
	var w *domain.Withdrawal
	if args.Get(0) != nil {
		w = args.Get(0).(*domain.Withdrawal)
	}
	return w, args.Error(1)
}

func (m *MockWithdrawalRepository) FindWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, userID)
	var ws []domain.Withdrawal
	if args.Get(0) != nil {
		ws = args.Get(0).([]domain.Withdrawal)
	}
	return ws, args.Error(1)
}

func (m *MockWithdrawalRepository) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	args := m.Called(ctx)
	var ws []domain.Withdrawal
	if args.Get(0) != nil {
		ws = args.Get(0).([]domain.Withdrawal)
	}
	return ws, args.Error(1)
}

func (m *MockWithdrawalRepository) ApproveWithdrawal(ctx context.Context, withdrawalID string, approvedAt time.Time) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID, approvedAt)
	var w *domain.Withdrawal
	if args.Get(0) != nil {
		w = args.Get(0).(*domain.Withdrawal)
	}
	return w, args.Error(1)
}

func (m *MockWithdrawalRepository) RejectWithdrawal(ctx context.Context, withdrawalID string) error {
	args := m.Called(ctx, withdrawalID)
	return args.Error(0)
}

// --- Mock MethodRepository ---
type MockMethodRepository struct {
	mock.Mock
}

func (m *MockMethodRepository) SaveDepositMethod(ctx context.Context, method domain.DepositMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockMethodRepository) FindDepositMethodByID(ctx context.Context, methodID string) (*domain.DepositMethod, error) {
	args := m.Called(ctx, methodID)
	var method *domain.DepositMethod
	if args.Get(0) != nil {
		method = args.Get(0).(*domain.DepositMethod)
	}
	return method, args.Error(1)
}

func (m *MockMethodRepository) ListDepositMethods(ctx context.Context, enabledOnly bool) ([]domain.DepositMethod, error) {
	args := m.Called(ctx, enabledOnly)
	var methods []domain.DepositMethod
	if args.Get(0) != nil {
		methods = args.Get(0).([]domain.DepositMethod)
	}
	return methods, args.Error(1)
}

func (m *MockMethodRepository) DeleteDepositMethod(ctx context.Context, methodID string) error {
	args := m.Called(ctx, methodID)
	return args.Error(0)
}

func (m *MockMethodRepository) SaveWithdrawMethod(ctx context.Context, method domain.WithdrawMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockMethodRepository) FindWithdrawMethodByID(ctx context.Context, methodID string) (*domain.WithdrawMethod, error) {
	args := m.Called(ctx, methodID)
	var method *domain.WithdrawMethod
	if args.Get(0) != nil {
		method = args.Get(0).(*domain.WithdrawMethod)
	}
	return method, args.Error(1)
}

func (m *MockMethodRepository) ListWithdrawMethods(ctx context.Context, enabledOnly bool) ([]domain.WithdrawMethod, error) {
	args := m.Called(ctx, enabledOnly)
	var methods []domain.WithdrawMethod
	if args.Get(0) != nil {
		methods = args.Get(0).([]domain.WithdrawMethod)
	}
	return methods, args.Error(1)
}

func (m *MockMethodRepository) DeleteWithdrawMethod(ctx context.Context, methodID string) error {
	args := m.Called(ctx, methodID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	args := m.Called(ctx)
	var stats *domain.PlatformStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.PlatformStats)
	}
	return stats, args.Error(1)
}

// --- Mock AccrualSvcFacade ---
type MockAccrualService struct {
	mock.Mock
}

func (m *MockAccrualService) Reconcile(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
