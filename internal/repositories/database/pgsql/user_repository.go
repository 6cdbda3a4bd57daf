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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const userColumns = `user_id, first_name, last_name, username, email, password_hash, date_of_birth,
		balance, total_deposit, total_withdraw, current_invest,
		blocked, deleted, last_login_at, phone, country, address, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.FirstName,
		&m.LastName,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.DateOfBirth,
		&m.Balance,
		&m.TotalDeposit,
		&m.TotalWithdraw,
		&m.CurrentInvest,
		&m.Blocked,
		&m.Deleted,
		&m.LastLoginAt,
		&m.Phone,
		&m.Country,
		&m.Address,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.FirstName,
		m.LastName,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.DateOfBirth,
		m.Balance,
		m.TotalDeposit,
		m.TotalWithdraw,
		m.CurrentInvest,
		m.Blocked,
		m.Deleted,
		m.LastLoginAt,
		m.Phone,
		m.Country,
		m.Address,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user with this email already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted = FALSE;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted = FALSE;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	if len(userIDs) == 0 {
		return map[string]domain.User{}, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by IDs: %w", err)
	}
	defer rows.Close()

	users := make(map[string]domain.User, len(userIDs))
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users[m.UserID] = mapping.ToDomainUser(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE deleted = FALSE
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, mapping.ToDomainUser(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET first_name = $2, last_name = $3, phone = $4, country = $5, address = $6, updated_at = $7
        WHERE user_id = $1 AND deleted = FALSE;
    `
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Country,
		user.Address,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile for user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	query := `UPDATE users SET password_hash = $2, updated_at = $3 WHERE user_id = $1 AND deleted = FALSE;`
	tag, err := r.Pool.Exec(ctx, query, userID, passwordHash, now)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID string, now time.Time) error {
	query := `UPDATE users SET last_login_at = $2 WHERE user_id = $1;`
	_, err := r.Pool.Exec(ctx, query, userID, now)
	if err != nil {
		return fmt.Errorf("failed to update last login for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxUserRepository) SetBlocked(ctx context.Context, userID string, blocked bool, now time.Time) error {
	query := `UPDATE users SET blocked = $2, updated_at = $3 WHERE user_id = $1 AND deleted = FALSE;`
	tag, err := r.Pool.Exec(ctx, query, userID, blocked, now)
	if err != nil {
		return fmt.Errorf("failed to set blocked flag for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUserCascade(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, query := range []string{
		`DELETE FROM deposits WHERE user_id = $1;`,
		`DELETE FROM withdrawals WHERE user_id = $1;`,
		`DELETE FROM investments WHERE user_id = $1;`,
	} {
		if _, err := tx.Exec(ctx, query, userID); err != nil {
			return fmt.Errorf("failed to delete records for user %s: %w", userID, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// pgxExecutor is the slice of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// balance helpers below work both standalone and inside a transaction.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func creditUserBalance(ctx context.Context, db pgxExecutor, userID string, amount decimal.Decimal) error {
	query := `UPDATE users SET balance = balance + $2 WHERE user_id = $1;`
	tag, err := db.Exec(ctx, query, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit balance for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// debitUserBalance checks sufficiency inside the UPDATE itself. A zero row
// count is ambiguous between a missing user and a too-low balance, so it is
// disambiguated with a follow-up existence check before picking the sentinel.
func debitUserBalance(ctx context.Context, db pgxExecutor, userID string, amount decimal.Decimal) error {
	query := `UPDATE users SET balance = balance - $2 WHERE user_id = $1 AND balance >= $2;`
	tag, err := db.Exec(ctx, query, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit balance for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1 AND deleted = FALSE);`
		if err := db.QueryRow(ctx, check, userID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check user %s after debit: %w", userID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrInsufficientFunds
	}
	return nil
}

func (r *PgxUserRepository) CreditBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	return creditUserBalance(ctx, r.Pool, userID, amount)
}

func (r *PgxUserRepository) DebitBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	return debitUserBalance(ctx, r.Pool, userID, amount)
}

func (r *PgxUserRepository) SetCurrentInvest(ctx context.Context, userID string, amount decimal.Decimal, now time.Time) error {
	query := `UPDATE users SET current_invest = $2, updated_at = $3 WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID, amount, now)
	if err != nil {
		return fmt.Errorf("failed to set current invest for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
