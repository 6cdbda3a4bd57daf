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

const depositColumns = `deposit_id, user_id, amount, method_id, method_name, address, status, created_at, approved_at`

type PgxDepositRepository struct {
	BaseRepository
}

func newPgxDepositRepository(db *pgxpool.Pool) portsrepo.DepositRepository {
	return &PgxDepositRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DepositRepository = (*PgxDepositRepository)(nil)

func scanDeposit(row pgx.Row) (*models.Deposit, error) {
	var m models.Deposit
	err := row.Scan(
		&m.DepositID,
		&m.UserID,
		&m.Amount,
		&m.MethodID,
		&m.MethodName,
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

func (r *PgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) error {
	m := mapping.ToModelDeposit(deposit)
	query := `
        INSERT INTO deposits (` + depositColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DepositID,
		m.UserID,
		m.Amount,
		m.MethodID,
		m.MethodName,
		m.Address,
		m.Status,
		m.CreatedAt,
		m.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save deposit: %w", err)
	}
	return nil
}

func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE deposit_id = $1;`
	m, err := scanDeposit(r.Pool.QueryRow(ctx, query, depositID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deposit %s: %w", depositID, err)
	}
	d := mapping.ToDomainDeposit(*m)
	return &d, nil
}

func (r *PgxDepositRepository) FindDepositsByUserID(ctx context.Context, userID string) ([]domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE user_id = $1 ORDER BY created_at DESC;`
	return r.queryDeposits(ctx, query, userID)
}

func (r *PgxDepositRepository) ListDeposits(ctx context.Context) ([]domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits ORDER BY created_at DESC;`
	return r.queryDeposits(ctx, query)
}

func (r *PgxDepositRepository) queryDeposits(ctx context.Context, query string, args ...any) ([]domain.Deposit, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposits: %w", err)
	}
	defer rows.Close()

	deposits := []domain.Deposit{}
	for rows.Next() {
		m, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit row: %w", err)
		}
		deposits = append(deposits, mapping.ToDomainDeposit(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deposit rows: %w", err)
	}
	return deposits, nil
}

// ApproveDeposit flips the request to approved and credits the owner in one
// transaction. The pending-status condition makes approval idempotent: a
// second approval matches zero rows and the credit never happens again.
func (r *PgxDepositRepository) ApproveDeposit(ctx context.Context, depositID string, approvedAt time.Time) (*domain.Deposit, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	update := `
        UPDATE deposits
        SET status = 'approved', approved_at = $2
        WHERE deposit_id = $1 AND status = 'pending'
        RETURNING ` + depositColumns + `;
    `
	m, err := scanDeposit(tx.QueryRow(ctx, update, depositID, approvedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := r.FindDepositByID(ctx, depositID); findErr != nil {
				return nil, findErr
			}
			return nil, fmt.Errorf("deposit is not pending: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to approve deposit %s: %w", depositID, err)
	}

	credit := `
        UPDATE users
        SET balance = balance + $2, total_deposit = total_deposit + $2
        WHERE user_id = $1;
    `
	if _, err := tx.Exec(ctx, credit, m.UserID, m.Amount); err != nil {
		return nil, fmt.Errorf("failed to credit deposit to user %s: %w", m.UserID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainDeposit(*m)
	return &d, nil
}

func (r *PgxDepositRepository) RejectDeposit(ctx context.Context, depositID string) error {
	query := `UPDATE deposits SET status = 'rejected' WHERE deposit_id = $1 AND status = 'pending';`
	tag, err := r.Pool.Exec(ctx, query, depositID)
	if err != nil {
		return fmt.Errorf("failed to reject deposit %s: %w", depositID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindDepositByID(ctx, depositID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("deposit is not pending: %w", apperrors.ErrValidation)
	}
	return nil
}
