package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harvestive/harvestive-backend/internal/apperrors"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/dto"
	"github.com/harvestive/harvestive-backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

// fundingService handles the deposit and withdrawal request lifecycle. Money
// only moves on admin approval: requests are recorded pending, and the
// balance mutation happens inside the repository's approval transaction.
type fundingService struct {
	BaseService
	depositRepo    portsrepo.DepositRepository
	withdrawalRepo portsrepo.WithdrawalRepository
	methodRepo     portsrepo.MethodRepository
	userRepo       portsrepo.UserRepository
	accrual        portssvc.AccrualSvcFacade
	minDeposit     decimal.Decimal
	minWithdrawal  decimal.Decimal
}

// NewFundingService creates the funding service.
func NewFundingService(
	cfg *config.Config,
	depositRepo portsrepo.DepositRepository,
	withdrawalRepo portsrepo.WithdrawalRepository,
	methodRepo portsrepo.MethodRepository,
	userRepo portsrepo.UserRepository,
	accrual portssvc.AccrualSvcFacade,
) portssvc.FundingSvcFacade {
	return &fundingService{
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		methodRepo:     methodRepo,
		userRepo:       userRepo,
		accrual:        accrual,
		minDeposit:     cfg.MinDeposit,
		minWithdrawal:  cfg.MinWithdrawal,
	}
}

var _ portssvc.FundingSvcFacade = (*fundingService)(nil)

func (s *fundingService) RequestDeposit(ctx context.Context, userID string, req dto.CreateDepositRequest) (*domain.Deposit, error) {
	if req.Amount.LessThan(s.minDeposit) {
		return nil, fmt.Errorf("minimum deposit is %s: %w", s.minDeposit.String(), apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrForbidden)
	}

	method, err := s.methodRepo.FindDepositMethodByID(ctx, req.MethodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("unknown deposit method: %w", apperrors.ErrValidation)
		}
		return nil, err
	}
	if !method.Enabled {
		return nil, fmt.Errorf("deposit method is disabled: %w", apperrors.ErrValidation)
	}

	deposit := domain.Deposit{
		DepositID:  uuid.NewString(),
		UserID:     userID,
		Amount:     req.Amount,
		MethodID:   method.MethodID,
		MethodName: method.Name,
		Address:    method.Address,
		Status:     domain.FundingPending,
		CreatedAt:  time.Now(),
	}

	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		s.LogError(ctx, err, "Failed to save deposit request",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit requested",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("user_id", userID),
		slog.String("amount", req.Amount.String()))
	return &deposit, nil
}

func (s *fundingService) ListUserDeposits(ctx context.Context, userID string) ([]domain.Deposit, error) {
	return s.depositRepo.FindDepositsByUserID(ctx, userID)
}

func (s *fundingService) ListAllDeposits(ctx context.Context) ([]domain.Deposit, map[string]domain.UserSummary, error) {
	deposits, err := s.depositRepo.ListDeposits(ctx)
	if err != nil {
		return nil, nil, err
	}
	owners, err := s.ownerSummaries(ctx, depositOwnerIDs(deposits))
	if err != nil {
		return nil, nil, err
	}
	return deposits, owners, nil
}

func (s *fundingService) ApproveDeposit(ctx context.Context, depositID string) (*domain.Deposit, error) {
	pending, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	owner, err := s.userRepo.FindUserByID(ctx, pending.UserID)
	if err != nil {
		return nil, err
	}
	if owner.Blocked {
		return nil, fmt.Errorf("deposit owner is blocked: %w", apperrors.ErrForbidden)
	}

	deposit, err := s.depositRepo.ApproveDeposit(ctx, depositID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to approve deposit", slog.String("deposit_id", depositID))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit approved",
		slog.String("deposit_id", depositID),
		slog.String("user_id", deposit.UserID),
		slog.String("amount", deposit.Amount.String()))
	return deposit, nil
}

func (s *fundingService) RejectDeposit(ctx context.Context, depositID string) (*domain.Deposit, error) {
	if err := s.depositRepo.RejectDeposit(ctx, depositID); err != nil {
		s.LogError(ctx, err, "Failed to reject deposit", slog.String("deposit_id", depositID))
		return nil, err
	}
	return s.depositRepo.FindDepositByID(ctx, depositID)
}

func (s *fundingService) RequestWithdrawal(ctx context.Context, userID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	if req.Amount.LessThan(s.minWithdrawal) {
		return nil, fmt.Errorf("minimum withdrawal is %s: %w", s.minWithdrawal.String(), apperrors.ErrValidation)
	}

	// Settle pending profit first so earned money counts toward the
	// sufficiency check.
	if err := s.accrual.Reconcile(ctx, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrForbidden)
	}
	if user.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("balance does not cover withdrawal: %w", apperrors.ErrInsufficientFunds)
	}

	withdrawal := domain.Withdrawal{
		WithdrawalID: uuid.NewString(),
		UserID:       userID,
		Amount:       req.Amount,
		Method:       req.Method,
		Address:      req.Address,
		Status:       domain.FundingPending,
		CreatedAt:    time.Now(),
	}

	if err := s.withdrawalRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		s.LogError(ctx, err, "Failed to save withdrawal request",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal requested",
		slog.String("withdrawal_id", withdrawal.WithdrawalID),
		slog.String("user_id", userID),
		slog.String("amount", req.Amount.String()))
	return &withdrawal, nil
}

func (s *fundingService) ListUserWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	return s.withdrawalRepo.FindWithdrawalsByUserID(ctx, userID)
}

func (s *fundingService) ListAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, map[string]domain.UserSummary, error) {
	withdrawals, err := s.withdrawalRepo.ListWithdrawals(ctx)
	if err != nil {
		return nil, nil, err
	}
	owners, err := s.ownerSummaries(ctx, withdrawalOwnerIDs(withdrawals))
	if err != nil {
		return nil, nil, err
	}
	return withdrawals, owners, nil
}

func (s *fundingService) ApproveWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.FindWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	owner, err := s.userRepo.FindUserByID(ctx, withdrawal.UserID)
	if err != nil {
		return nil, err
	}
	if owner.Blocked {
		return nil, fmt.Errorf("withdrawal owner is blocked: %w", apperrors.ErrForbidden)
	}

	// Bring the owner's balance up to date before the guarded debit so
	// profit earned since the request still counts.
	if err := s.accrual.Reconcile(ctx, withdrawal.UserID); err != nil {
		return nil, err
	}

	approved, err := s.withdrawalRepo.ApproveWithdrawal(ctx, withdrawalID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to approve withdrawal", slog.String("withdrawal_id", withdrawalID))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal approved",
		slog.String("withdrawal_id", withdrawalID),
		slog.String("user_id", approved.UserID),
		slog.String("amount", approved.Amount.String()))
	return approved, nil
}

func (s *fundingService) RejectWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	if err := s.withdrawalRepo.RejectWithdrawal(ctx, withdrawalID); err != nil {
		s.LogError(ctx, err, "Failed to reject withdrawal", slog.String("withdrawal_id", withdrawalID))
		return nil, err
	}
	return s.withdrawalRepo.FindWithdrawalByID(ctx, withdrawalID)
}

// ownerSummaries resolves user IDs to the summary attached to admin listings.
// Records whose owner was hard-deleted keep a zero-value summary.
func (s *fundingService) ownerSummaries(ctx context.Context, userIDs []string) (map[string]domain.UserSummary, error) {
	if len(userIDs) == 0 {
		return map[string]domain.UserSummary{}, nil
	}
	users, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	summaries := make(map[string]domain.UserSummary, len(users))
	for id, u := range users {
		summaries[id] = domain.UserSummary{
			FullName: u.DisplayName(),
			Email:    u.Email,
			Username: u.Username,
			Blocked:  u.Blocked,
		}
	}
	return summaries, nil
}

func depositOwnerIDs(deposits []domain.Deposit) []string {
	seen := make(map[string]struct{}, len(deposits))
	ids := make([]string, 0, len(deposits))
	for _, d := range deposits {
		if _, ok := seen[d.UserID]; ok {
			continue
		}
		seen[d.UserID] = struct{}{}
		ids = append(ids, d.UserID)
	}
	return ids
}

func withdrawalOwnerIDs(withdrawals []domain.Withdrawal) []string {
	seen := make(map[string]struct{}, len(withdrawals))
	ids := make([]string, 0, len(withdrawals))
	for _, w := range withdrawals {
		if _, ok := seen[w.UserID]; ok {
			continue
		}
		seen[w.UserID] = struct{}{}
		ids = append(ids, w.UserID)
	}
	return ids
}
