package pgsql

import (
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		InvestmentRepo: newPgxInvestmentRepository(dbPool),
		DepositRepo:    newPgxDepositRepository(dbPool),
		WithdrawalRepo: newPgxWithdrawalRepository(dbPool),
		MethodRepo:     newPgxMethodRepository(dbPool),
		ReportingRepo:  newPgxReportingRepository(dbPool),
	}
}
