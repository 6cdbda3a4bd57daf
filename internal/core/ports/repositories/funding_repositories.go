package repositories

import (
	"context"
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
)

// DepositRepository defines persistence operations for deposit requests.
// ApproveDeposit flips the request from pending to approved and credits the
// owner's balance and total-deposit aggregate in one transaction; a request
// that is not pending fails with ErrValidation, so approval lands at most once.
type DepositRepository interface {
	SaveDeposit(ctx context.Context, deposit domain.Deposit) error
	FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)
	FindDepositsByUserID(ctx context.Context, userID string) ([]domain.Deposit, error)
	ListDeposits(ctx context.Context) ([]domain.Deposit, error)
	ApproveDeposit(ctx context.Context, depositID string, approvedAt time.Time) (*domain.Deposit, error)
	RejectDeposit(ctx context.Context, depositID string) error
}

// WithdrawalRepository defines persistence operations for withdrawal requests.
// ApproveWithdrawal additionally guards the debit on the owner's balance and
// fails with ErrInsufficientFunds (transaction rolled back) when it is too low.
type WithdrawalRepository interface {
	SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
	FindWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID string, approvedAt time.Time) (*domain.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, withdrawalID string) error
}
