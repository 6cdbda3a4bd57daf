package services

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/dto"
)

// MethodSvcFacade manages the payment rails users deposit through and
// withdraw to. Creation and updates are admin-only; listings are public.
type MethodSvcFacade interface {
	// ListDepositMethods returns deposit methods. When enabledOnly is set,
	// disabled rails are filtered out.
	ListDepositMethods(ctx context.Context, enabledOnly bool) ([]domain.DepositMethod, error)

	// CreateDepositMethod adds a deposit rail.
	CreateDepositMethod(ctx context.Context, req dto.CreateDepositMethodRequest) (*domain.DepositMethod, error)

	// UpdateDepositMethod partially updates a deposit rail.
	UpdateDepositMethod(ctx context.Context, methodID string, req dto.UpdateDepositMethodRequest) (*domain.DepositMethod, error)

	// DeleteDepositMethod removes a deposit rail.
	DeleteDepositMethod(ctx context.Context, methodID string) error

	// ListWithdrawMethods returns withdraw methods. When enabledOnly is set,
	// disabled rails are filtered out.
	ListWithdrawMethods(ctx context.Context, enabledOnly bool) ([]domain.WithdrawMethod, error)

	// CreateWithdrawMethod adds a withdraw rail.
	CreateWithdrawMethod(ctx context.Context, req dto.CreateWithdrawMethodRequest) (*domain.WithdrawMethod, error)

	// UpdateWithdrawMethod partially updates a withdraw rail.
	UpdateWithdrawMethod(ctx context.Context, methodID string, req dto.UpdateWithdrawMethodRequest) (*domain.WithdrawMethod, error)

	// DeleteWithdrawMethod removes a withdraw rail.
	DeleteWithdrawMethod(ctx context.Context, methodID string) error
}
