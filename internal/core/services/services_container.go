package services

import (
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The accrual engine comes first: user, investment and funding services
	// all reconcile through it before serving reads.
	container.Accrual = NewAccrualService(repos.InvestmentRepo)

	container.User = NewUserService(
		repos.UserRepo,
		repos.DepositRepo,
		repos.WithdrawalRepo,
		repos.InvestmentRepo,
		container.Accrual,
	)
	container.Investment = NewInvestmentService(cfg, repos.InvestmentRepo, repos.UserRepo, container.Accrual)
	container.Funding = NewFundingService(
		cfg,
		repos.DepositRepo,
		repos.WithdrawalRepo,
		repos.MethodRepo,
		repos.UserRepo,
		container.Accrual,
	)
	container.Method = NewMethodService(repos.MethodRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
