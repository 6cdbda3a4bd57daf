package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
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

// investmentService opens fixed-term investments and serves their listings.
// Every read goes through the accrual engine first so callers never see a
// stale balance or an overdue active investment.
type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepository
	userRepo       portsrepo.UserRepository
	accrual        portssvc.AccrualSvcFacade
	planRates      domain.PlanTable
	termDays       int
}

// NewInvestmentService creates the investment service.
func NewInvestmentService(cfg *config.Config, investmentRepo portsrepo.InvestmentRepository, userRepo portsrepo.UserRepository, accrual portssvc.AccrualSvcFacade) portssvc.InvestmentSvcFacade {
	return &investmentService{
		investmentRepo: investmentRepo,
		userRepo:       userRepo,
		accrual:        accrual,
		planRates:      cfg.PlanRates,
		termDays:       cfg.InvestmentTermDays,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) OpenInvestment(ctx context.Context, userID string, req dto.OpenInvestmentRequest) (*domain.Investment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("investment amount must be positive: %w", apperrors.ErrValidation)
	}

	rate, ok := s.planRates.Rate(req.Plan)
	if !ok {
		return nil, fmt.Errorf("unknown plan %q: %w", req.Plan, apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrForbidden)
	}

	// Settle pending profit before the sufficiency check so money already
	// earned can fund the new investment.
	if err := s.accrual.Reconcile(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	investment := domain.Investment{
		InvestmentID:      uuid.NewString(),
		UserID:            userID,
		Amount:            req.Amount,
		Plan:              req.Plan,
		DailyRate:         rate,
		Status:            domain.InvestmentActive,
		StartDate:         now,
		EndDate:           now.Add(time.Duration(s.termDays) * 24 * time.Hour),
		TotalDays:         s.termDays,
		DaysCompleted:     0,
		TotalProfitEarned: decimal.Zero,
		LastProfitAt:      now,
		CapitalReturned:   false,
		CreatedAt:         now,
	}

	if err := s.investmentRepo.OpenInvestment(ctx, investment); err != nil {
		s.LogError(ctx, err, "Failed to open investment",
			slog.String("user_id", userID),
			slog.String("plan", req.Plan),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	if err := s.refreshCurrentInvest(ctx, userID, now); err != nil {
		s.LogWarn(ctx, "Failed to refresh current invest aggregate",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Investment opened",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("user_id", userID),
		slog.String("plan", req.Plan),
		slog.String("amount", req.Amount.String()))
	return &investment, nil
}

func (s *investmentService) ListUserInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrForbidden)
	}

	if err := s.accrual.Reconcile(ctx, userID); err != nil {
		return nil, err
	}
	investments, err := s.investmentRepo.FindInvestmentsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.refreshCurrentInvest(ctx, userID, time.Now()); err != nil {
		s.LogWarn(ctx, "Failed to refresh current invest aggregate",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
	}
	return investments, nil
}

func (s *investmentService) ListPlans(ctx context.Context) []domain.Plan {
	plans := s.planRates.Plans()
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].DailyRate.LessThan(plans[j].DailyRate)
	})
	return plans
}

// refreshCurrentInvest recomputes the cached sum of active principals after
// the set of active investments may have changed.
func (s *investmentService) refreshCurrentInvest(ctx context.Context, userID string, now time.Time) error {
	total, err := s.investmentRepo.SumActivePrincipal(ctx, userID)
	if err != nil {
		return err
	}
	return s.userRepo.SetCurrentInvest(ctx, userID, total, now)
}
