package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harvestive/harvestive-backend/internal/apperrors"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	accrualPeriod = 24 * time.Hour
	// casRetries bounds how often a reconciler re-reads after losing the
	// conditional update to a concurrent one.
	casRetries = 2
)

// accrualService settles profit lazily: nothing runs on a schedule, and every
// read of a balance or investment first calls Reconcile to bring the user's
// active investments up to date. Each investment is settled independently, so
// a failure on one does not roll back profit already applied to another.
type accrualService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepository
}

// NewAccrualService creates the accrual engine.
func NewAccrualService(investmentRepo portsrepo.InvestmentRepository) portssvc.AccrualSvcFacade {
	return &accrualService{investmentRepo: investmentRepo}
}

var _ portssvc.AccrualSvcFacade = (*accrualService)(nil)

// Reconcile applies pending profit and completions for all of the user's
// active investments. A missing user is a no-op so callers can reconcile
// before checking existence themselves.
func (s *accrualService) Reconcile(ctx context.Context, userID string) error {
	investments, err := s.investmentRepo.FindActiveInvestmentsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to load active investments for reconcile",
			slog.String("user_id", userID))
		return err
	}

	for _, inv := range investments {
		if err := s.settleInvestment(ctx, inv); err != nil {
			s.LogError(ctx, err, "Failed to settle investment",
				slog.String("investment_id", inv.InvestmentID),
				slog.String("user_id", userID))
			return err
		}
	}
	return nil
}

// settleInvestment runs the lifecycle check for one investment, retrying a
// bounded number of times when a concurrent reconciler wins the conditional
// update. Exhausting the retries is not an error: the other reconciler has
// already settled the row.
func (s *accrualService) settleInvestment(ctx context.Context, inv domain.Investment) error {
	current := inv
	for attempt := 0; ; attempt++ {
		applied, err := s.settleOnce(ctx, current)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
		if attempt >= casRetries {
			s.LogDebug(ctx, "Investment settled concurrently, skipping",
				slog.String("investment_id", inv.InvestmentID))
			return nil
		}

		reloaded, err := s.investmentRepo.FindInvestmentByID(ctx, inv.InvestmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil
			}
			return err
		}
		if reloaded.Status != domain.InvestmentActive {
			return nil
		}
		current = *reloaded
	}
}

// settleOnce decides between completion, profit, and nothing-due, and applies
// at most one atomic update. It returns false only when the conditional
// update lost to a concurrent writer.
func (s *accrualService) settleOnce(ctx context.Context, inv domain.Investment) (bool, error) {
	now := time.Now()

	// Completion takes priority over any partial day of profit: the term is
	// anchored to the start date, and the final fraction of a day earns
	// nothing.
	if !now.Before(inv.ScheduledEnd()) {
		ok, err := s.investmentRepo.CompleteInvestment(ctx, inv, now)
		if err != nil {
			return false, err
		}
		if ok {
			s.LogInfo(ctx, "Investment completed, capital returned",
				slog.String("investment_id", inv.InvestmentID),
				slog.String("user_id", inv.UserID),
				slog.String("amount", inv.Amount.String()))
		}
		return ok, nil
	}

	elapsed := now.Sub(inv.LastProfitAt)
	if elapsed < accrualPeriod {
		return true, nil
	}

	daysToCredit := int(elapsed / accrualPeriod)
	profit := inv.Amount.Mul(inv.DailyRate).Mul(decimal.NewFromInt(int64(daysToCredit)))
	// Advance the high-water mark by whole periods only, so the remainder
	// keeps counting toward the next day instead of resetting to now.
	newLastProfitAt := inv.LastProfitAt.Add(time.Duration(daysToCredit) * accrualPeriod)

	ok, err := s.investmentRepo.ApplyProfit(ctx, inv, daysToCredit, profit, newLastProfitAt, now)
	if err != nil {
		return false, err
	}
	if ok {
		s.LogInfo(ctx, "Profit applied",
			slog.String("investment_id", inv.InvestmentID),
			slog.String("user_id", inv.UserID),
			slog.Int("days", daysToCredit),
			slog.String("profit", profit.String()))
	}
	return ok, nil
}
