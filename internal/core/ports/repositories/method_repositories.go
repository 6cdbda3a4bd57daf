package repositories

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
)

// MethodRepository defines persistence operations for deposit and withdraw
// payment methods.
type MethodRepository interface {
	// SaveDepositMethod inserts or fully replaces a deposit method.
	SaveDepositMethod(ctx context.Context, method domain.DepositMethod) error
	FindDepositMethodByID(ctx context.Context, methodID string) (*domain.DepositMethod, error)
	ListDepositMethods(ctx context.Context, enabledOnly bool) ([]domain.DepositMethod, error)
	DeleteDepositMethod(ctx context.Context, methodID string) error

	// SaveWithdrawMethod inserts or fully replaces a withdraw method.
	SaveWithdrawMethod(ctx context.Context, method domain.WithdrawMethod) error
	FindWithdrawMethodByID(ctx context.Context, methodID string) (*domain.WithdrawMethod, error)
	ListWithdrawMethods(ctx context.Context, enabledOnly bool) ([]domain.WithdrawMethod, error)
	DeleteWithdrawMethod(ctx context.Context, methodID string) error
}
