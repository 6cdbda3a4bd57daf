package repositories

import (
	"context"
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for users, including the
// account-ledger balance primitives. Credit and Debit are single atomic
// statements; Debit checks sufficiency inside the same statement so there is
// no check-then-act window.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// UpdateProfile persists the mutable profile fields of user.
	UpdateProfile(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error
	UpdateLastLogin(ctx context.Context, userID string, now time.Time) error
	SetBlocked(ctx context.Context, userID string, blocked bool, now time.Time) error

	// DeleteUserCascade hard-deletes the user and all owned deposits,
	// withdrawals and investments in one transaction.
	DeleteUserCascade(ctx context.Context, userID string) error

	// CreditBalance adds amount to the user's balance.
	CreditBalance(ctx context.Context, userID string, amount decimal.Decimal) error
	// DebitBalance subtracts amount, failing with ErrNotFound when the user
	// does not exist and ErrInsufficientFunds when the balance is too low.
	DebitBalance(ctx context.Context, userID string, amount decimal.Decimal) error
	// SetCurrentInvest overwrites the cached sum of active principals.
	SetCurrentInvest(ctx context.Context, userID string, amount decimal.Decimal, now time.Time) error
}
