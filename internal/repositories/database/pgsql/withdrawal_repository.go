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
)

const withdrawalColumns = `withdrawal_id, user_id, amount, method, address, status, created_at, approved_at`

type PgxWithdrawalRepository struct {
	BaseRepository
}

func newPgxWithdrawalRepository(db *pgxpool.Pool) portsrepo.WithdrawalRepository {
	return &PgxWithdrawalRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.WithdrawalRepository = (*PgxWithdrawalRepository)(nil)

func scanWithdrawal(row pgx.Row) (*models.Withdrawal, error) {
	var m models.Withdrawal
	err := row.Scan(
		&m.WithdrawalID,
		&m.UserID,
		&m.Amount,
		&m.Method,
		&m.Address,
		&m.Status,
		&m.CreatedAt,
		&m.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	m := mapping.ToModelWithdrawal(withdrawal)
	query := `
        INSERT INTO withdrawals (` + withdrawalColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.WithdrawalID,
		m.UserID,
		m.Amount,
		m.Method,
		m.Address,
		m.Status,
		m.CreatedAt,
		m.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save withdrawal: %w", err)
	}
	return nil
}

func (r *PgxWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE withdrawal_id = $1;`
	m, err := scanWithdrawal(r.Pool.QueryRow(ctx, query, withdrawalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find withdrawal %s: %w", withdrawalID, err)
	}
	w := mapping.ToDomainWithdrawal(*m)
	return &w, nil
}

func (r *PgxWithdrawalRepository) FindWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC;`
	return r.queryWithdrawals(ctx, query, userID)
}

func (r *PgxWithdrawalRepository) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC;`
	return r.queryWithdrawals(ctx, query)
}

func (r *PgxWithdrawalRepository) queryWithdrawals(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	defer rows.Close()

	withdrawals := []domain.Withdrawal{}
	for rows.Next() {
		m, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal row: %w", err)
		}
		withdrawals = append(withdrawals, mapping.ToDomainWithdrawal(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating withdrawal rows: %w", err)
	}
	return withdrawals, nil
}

// ApproveWithdrawal flips the request to approved and debits the owner in one
// transaction. The debit carries its own sufficiency guard; a drained balance
// rolls the status flip back and the request stays pending.
func (r *PgxWithdrawalRepository) ApproveWithdrawal(ctx context.Context, withdrawalID string, approvedAt time.Time) (*domain.Withdrawal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	update := `
        UPDATE withdrawals
        SET status = 'approved', approved_at = $2
        WHERE withdrawal_id = $1 AND status = 'pending'
        RETURNING ` + withdrawalColumns + `;
    `
	m, err := scanWithdrawal(tx.QueryRow(ctx, update, withdrawalID, approvedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := r.FindWithdrawalByID(ctx, withdrawalID); findErr != nil {
				return nil, findErr
			}
			return nil, fmt.Errorf("withdrawal is not pending: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to approve withdrawal %s: %w", withdrawalID, err)
	}

	debit := `
        UPDATE users
        SET balance = balance - $2, total_withdraw = total_withdraw + $2
        WHERE user_id = $1 AND balance >= $2;
    `
	tag, err := tx.Exec(ctx, debit, m.UserID, m.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to debit withdrawal from user %s: %w", m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("balance does not cover withdrawal: %w", apperrors.ErrInsufficientFunds)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	w := mapping.ToDomainWithdrawal(*m)
	return &w, nil
}

func (r *PgxWithdrawalRepository) RejectWithdrawal(ctx context.Context, withdrawalID string) error {
	query := `UPDATE withdrawals SET status = 'rejected' WHERE withdrawal_id = $1 AND status = 'pending';`
	tag, err := r.Pool.Exec(ctx, query, withdrawalID)
	if err != nil {
		return fmt.Errorf("failed to reject withdrawal %s: %w", withdrawalID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindWithdrawalByID(ctx, withdrawalID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("withdrawal is not pending: %w", apperrors.ErrValidation)
	}
	return nil
}
