package repositories

import (
	"context"
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestmentRepository defines persistence operations for investments.
//
// ApplyProfit and CompleteInvestment are the accrual engine's atomic units:
// each runs one database transaction containing a conditional update of the
// investment row plus the matching user-balance credit. The condition is a
// compare-and-swap against the state the engine read (last_profit_at and
// status for profit, status for completion); when the stored row no longer
// matches, the transaction is rolled back and (false, nil) is returned so the
// losing reconciler never re-credits.
type InvestmentRepository interface {
	// OpenInvestment debits the principal from the user's balance (guarded by
	// sufficiency) and inserts the investment, both in one transaction.
	// Fails with ErrInsufficientFunds without inserting when the guard fails.
	OpenInvestment(ctx context.Context, investment domain.Investment) error

	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	FindInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error)
	FindActiveInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error)

	// ApplyProfit credits profit to the owner's balance and advances the
	// investment's profit high-water mark, conditional on the row still
	// holding investment.LastProfitAt and active status.
	ApplyProfit(ctx context.Context, investment domain.Investment, daysToCredit int, profit decimal.Decimal, newLastProfitAt time.Time, now time.Time) (bool, error)

	// CompleteInvestment returns the principal to the owner's balance and
	// marks the investment completed, conditional on the row still being
	// active. The condition guarantees the capital is returned at most once.
	CompleteInvestment(ctx context.Context, investment domain.Investment, completedAt time.Time) (bool, error)

	// SumActivePrincipal totals the principal of the user's active investments.
	SumActivePrincipal(ctx context.Context, userID string) (decimal.Decimal, error)
}
