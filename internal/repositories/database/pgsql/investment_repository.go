package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harvestive/harvestive-backend/internal/apperrors"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	"github.com/harvestive/harvestive-backend/internal/models"
	"github.com/harvestive/harvestive-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const investmentColumns = `investment_id, user_id, amount, plan, daily_rate, status,
		start_date, end_date, total_days, days_completed, total_profit_earned,
		last_profit_at, capital_returned, completed_at, created_at`

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(db *pgxpool.Pool) portsrepo.InvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InvestmentRepository = (*PgxInvestmentRepository)(nil)

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.Amount,
		&m.Plan,
		&m.DailyRate,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.TotalDays,
		&m.DaysCompleted,
		&m.TotalProfitEarned,
		&m.LastProfitAt,
		&m.CapitalReturned,
		&m.CompletedAt,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// OpenInvestment debits the principal and inserts the investment row in one
// transaction. The debit carries its own sufficiency guard, so a too-low
// balance rolls everything back without touching either table.
func (r *PgxInvestmentRepository) OpenInvestment(ctx context.Context, investment domain.Investment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	debit := `UPDATE users SET balance = balance - $2 WHERE user_id = $1 AND balance >= $2 AND deleted = FALSE;`
	tag, err := tx.Exec(ctx, debit, investment.UserID, investment.Amount)
	if err != nil {
		return fmt.Errorf("failed to debit principal for user %s: %w", investment.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance does not cover principal: %w", apperrors.ErrInsufficientFunds)
	}

	m := mapping.ToModelInvestment(investment)
	insert := `
        INSERT INTO investments (` + investmentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err = tx.Exec(ctx, insert,
		m.InvestmentID,
		m.UserID,
		m.Amount,
		m.Plan,
		m.DailyRate,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.TotalDays,
		m.DaysCompleted,
		m.TotalProfitEarned,
		m.LastProfitAt,
		m.CapitalReturned,
		m.CompletedAt,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_id = $1;`
	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}
	inv := mapping.ToDomainInvestment(*m)
	return &inv, nil
}

func (r *PgxInvestmentRepository) FindInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY created_at DESC;`
	return r.queryInvestments(ctx, query, userID)
}

func (r *PgxInvestmentRepository) FindActiveInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 AND status = 'active' ORDER BY created_at;`
	return r.queryInvestments(ctx, query, userID)
}

func (r *PgxInvestmentRepository) queryInvestments(ctx context.Context, query string, args ...any) ([]domain.Investment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	investments := []domain.Investment{}
	for rows.Next() {
		m, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		investments = append(investments, mapping.ToDomainInvestment(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", err)
	}
	return investments, nil
}

// ApplyProfit advances the profit high-water mark and credits the owner in
// one transaction. The UPDATE is conditional on the row still holding the
// last_profit_at the caller read; when another reconciler got there first the
// row count is zero and the whole transaction rolls back, so the credit can
// never land twice for the same day.
func (r *PgxInvestmentRepository) ApplyProfit(ctx context.Context, investment domain.Investment, daysToCredit int, profit decimal.Decimal, newLastProfitAt time.Time, now time.Time) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	update := `
        UPDATE investments
        SET days_completed = days_completed + $2,
            total_profit_earned = total_profit_earned + $3,
            last_profit_at = $4
        WHERE investment_id = $1 AND status = 'active' AND last_profit_at = $5;
    `
	tag, err := tx.Exec(ctx, update,
		investment.InvestmentID,
		daysToCredit,
		profit,
		newLastProfitAt,
		investment.LastProfitAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to advance profit for investment %s: %w", investment.InvestmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := creditUserBalance(ctx, tx, investment.UserID, profit); err != nil {
		return false, fmt.Errorf("failed to credit profit to user %s: %w", investment.UserID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

// CompleteInvestment marks the row completed and returns the principal. The
// status condition means the flip from active can only happen once, which is
// what guarantees the capital is returned exactly once.
func (r *PgxInvestmentRepository) CompleteInvestment(ctx context.Context, investment domain.Investment, completedAt time.Time) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	update := `
        UPDATE investments
        SET status = 'completed', capital_returned = TRUE, completed_at = $2
        WHERE investment_id = $1 AND status = 'active';
    `
	tag, err := tx.Exec(ctx, update, investment.InvestmentID, completedAt)
	if err != nil {
		return false, fmt.Errorf("failed to complete investment %s: %w", investment.InvestmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := creditUserBalance(ctx, tx, investment.UserID, investment.Amount); err != nil {
		return false, fmt.Errorf("failed to return capital to user %s: %w", investment.UserID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PgxInvestmentRepository) SumActivePrincipal(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM investments WHERE user_id = $1 AND status = 'active';`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum active principal for user %s: %w", userID, err)
	}
	return total, nil
}
