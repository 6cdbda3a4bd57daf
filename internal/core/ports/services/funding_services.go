package services

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/dto"
)

// DepositSvc defines operations for deposit requests
type DepositSvc interface {
	// RequestDeposit records a pending deposit for the user.
	RequestDeposit(ctx context.Context, userID string, req dto.CreateDepositRequest) (*domain.Deposit, error)

	// ListUserDeposits retrieves the user's deposits, newest first.
	ListUserDeposits(ctx context.Context, userID string) ([]domain.Deposit, error)

	// ListAllDeposits retrieves every deposit with owner summaries.
	ListAllDeposits(ctx context.Context) ([]domain.Deposit, map[string]domain.UserSummary, error)

	// ApproveDeposit credits the user's balance and marks the deposit
	// approved. Only pending deposits can be approved.
	ApproveDeposit(ctx context.Context, depositID string) (*domain.Deposit, error)

	// RejectDeposit marks a pending deposit rejected. No balance change.
	RejectDeposit(ctx context.Context, depositID string) (*domain.Deposit, error)
}

// WithdrawalSvc defines operations for withdrawal requests
type WithdrawalSvc interface {
	// RequestWithdrawal records a pending withdrawal for the user.
	RequestWithdrawal(ctx context.Context, userID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error)

	// ListUserWithdrawals retrieves the user's withdrawals, newest first.
	ListUserWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error)

	// ListAllWithdrawals retrieves every withdrawal with owner summaries.
	ListAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, map[string]domain.UserSummary, error)

	// ApproveWithdrawal debits the user's balance and marks the withdrawal
	// approved. Fails when the balance no longer covers the amount.
	ApproveWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)

	// RejectWithdrawal marks a pending withdrawal rejected. No balance change.
	RejectWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
}

// FundingSvcFacade combines deposit and withdrawal service interfaces
type FundingSvcFacade interface {
	DepositSvc
	WithdrawalSvc
}
