package services

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/dto"
)

// InvestmentReaderSvc defines read operations for investments
type InvestmentReaderSvc interface {
	// ListUserInvestments retrieves all investments of a user, newest first.
	// Pending accruals are applied before the listing is read.
	ListUserInvestments(ctx context.Context, userID string) ([]domain.Investment, error)

	// ListPlans returns the configured investment plans.
	ListPlans(ctx context.Context) []domain.Plan
}

// InvestmentWriterSvc defines write operations for investments
type InvestmentWriterSvc interface {
	// OpenInvestment debits the user's balance and opens a fixed-term
	// investment on the named plan.
	OpenInvestment(ctx context.Context, userID string, req dto.OpenInvestmentRequest) (*domain.Investment, error)
}

// InvestmentSvcFacade combines all investment-related service interfaces
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}

// AccrualSvcFacade is the lazy profit engine. Reconcile settles every
// pending day of profit and completes matured investments for one user.
type AccrualSvcFacade interface {
	// Reconcile applies all pending profit and completions for the user's
	// active investments. It must be called before any balance or
	// investment read is served.
	Reconcile(ctx context.Context, userID string) error
}
