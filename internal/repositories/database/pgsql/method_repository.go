package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/harvestive/harvestive-backend/internal/apperrors"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	"github.com/harvestive/harvestive-backend/internal/models"
	"github.com/harvestive/harvestive-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const depositMethodColumns = `method_id, name, address, qr, enabled, created_at, updated_at`
const withdrawMethodColumns = `method_id, name, min, fee, enabled, created_at, updated_at`

type PgxMethodRepository struct {
	BaseRepository
}

func newPgxMethodRepository(db *pgxpool.Pool) portsrepo.MethodRepository {
	return &PgxMethodRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.MethodRepository = (*PgxMethodRepository)(nil)

func (r *PgxMethodRepository) SaveDepositMethod(ctx context.Context, method domain.DepositMethod) error {
	m := mapping.ToModelDepositMethod(method)
	query := `
        INSERT INTO deposit_methods (` + depositMethodColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (method_id) DO UPDATE SET
            name = EXCLUDED.name,
            address = EXCLUDED.address,
            qr = EXCLUDED.qr,
            enabled = EXCLUDED.enabled,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.MethodID,
		m.Name,
		m.Address,
		m.QR,
		m.Enabled,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save deposit method: %w", err)
	}
	return nil
}

func (r *PgxMethodRepository) FindDepositMethodByID(ctx context.Context, methodID string) (*domain.DepositMethod, error) {
	query := `SELECT ` + depositMethodColumns + ` FROM deposit_methods WHERE method_id = $1;`
	var m models.DepositMethod
	err := r.Pool.QueryRow(ctx, query, methodID).Scan(
		&m.MethodID,
		&m.Name,
		&m.Address,
		&m.QR,
		&m.Enabled,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deposit method %s: %w", methodID, err)
	}
	d := mapping.ToDomainDepositMethod(m)
	return &d, nil
}

func (r *PgxMethodRepository) ListDepositMethods(ctx context.Context, enabledOnly bool) ([]domain.DepositMethod, error) {
	query := `SELECT ` + depositMethodColumns + ` FROM deposit_methods`
	if enabledOnly {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposit methods: %w", err)
	}
	defer rows.Close()

	methods := []domain.DepositMethod{}
	for rows.Next() {
		var m models.DepositMethod
		if err := rows.Scan(&m.MethodID, &m.Name, &m.Address, &m.QR, &m.Enabled, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deposit method row: %w", err)
		}
		methods = append(methods, mapping.ToDomainDepositMethod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deposit method rows: %w", err)
	}
	return methods, nil
}

func (r *PgxMethodRepository) DeleteDepositMethod(ctx context.Context, methodID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM deposit_methods WHERE method_id = $1;`, methodID)
	if err != nil {
		return fmt.Errorf("failed to delete deposit method %s: %w", methodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMethodRepository) SaveWithdrawMethod(ctx context.Context, method domain.WithdrawMethod) error {
	m := mapping.ToModelWithdrawMethod(method)
	query := `
        INSERT INTO withdraw_methods (` + withdrawMethodColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (method_id) DO UPDATE SET
            name = EXCLUDED.name,
            min = EXCLUDED.min,
            fee = EXCLUDED.fee,
            enabled = EXCLUDED.enabled,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.MethodID,
		m.Name,
		m.Min,
		m.Fee,
		m.Enabled,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save withdraw method: %w", err)
	}
	return nil
}

func (r *PgxMethodRepository) FindWithdrawMethodByID(ctx context.Context, methodID string) (*domain.WithdrawMethod, error) {
	query := `SELECT ` + withdrawMethodColumns + ` FROM withdraw_methods WHERE method_id = $1;`
	var m models.WithdrawMethod
	err := r.Pool.QueryRow(ctx, query, methodID).Scan(
		&m.MethodID,
		&m.Name,
		&m.Min,
		&m.Fee,
		&m.Enabled,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find withdraw method %s: %w", methodID, err)
	}
	d := mapping.ToDomainWithdrawMethod(m)
	return &d, nil
}

func (r *PgxMethodRepository) ListWithdrawMethods(ctx context.Context, enabledOnly bool) ([]domain.WithdrawMethod, error) {
	query := `SELECT ` + withdrawMethodColumns + ` FROM withdraw_methods`
	if enabledOnly {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdraw methods: %w", err)
	}
	defer rows.Close()

	methods := []domain.WithdrawMethod{}
	for rows.Next() {
		var m models.WithdrawMethod
		if err := rows.Scan(&m.MethodID, &m.Name, &m.Min, &m.Fee, &m.Enabled, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan withdraw method row: %w", err)
		}
		methods = append(methods, mapping.ToDomainWithdrawMethod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating withdraw method rows: %w", err)
	}
	return methods, nil
}

func (r *PgxMethodRepository) DeleteWithdrawMethod(ctx context.Context, methodID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM withdraw_methods WHERE method_id = $1;`, methodID)
	if err != nil {
		return fmt.Errorf("failed to delete withdraw method %s: %w", methodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
