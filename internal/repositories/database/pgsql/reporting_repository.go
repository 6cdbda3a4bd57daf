package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetPlatformStats computes all aggregates in one round trip. Sums only count
// approved funding requests; investment totals count every investment ever
// opened.
func (r *PgxReportingRepository) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM users WHERE deleted = FALSE),
            (SELECT COUNT(*) FROM users WHERE deleted = FALSE AND blocked = TRUE),
            (SELECT COUNT(*) FROM deposits),
            (SELECT COUNT(*) FROM deposits WHERE status = 'pending'),
            (SELECT COUNT(*) FROM withdrawals),
            (SELECT COUNT(*) FROM withdrawals WHERE status = 'pending'),
            (SELECT COUNT(*) FROM investments),
            (SELECT COUNT(*) FROM investments WHERE status = 'active'),
            (SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = 'approved'),
            (SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE status = 'approved'),
            (SELECT COALESCE(SUM(amount), 0) FROM investments),
            (SELECT COALESCE(SUM(total_profit_earned), 0) FROM investments);
    `
	var stats domain.PlatformStats
	err := r.Pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.BlockedUsers,
		&stats.TotalDeposits,
		&stats.PendingDeposits,
		&stats.TotalWithdrawals,
		&stats.PendingWithdrawals,
		&stats.TotalInvestments,
		&stats.ActiveInvestments,
		&stats.TotalDepositAmount,
		&stats.TotalWithdrawalAmount,
		&stats.TotalInvestmentAmount,
		&stats.TotalProfitPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute platform stats: %w", err)
	}
	stats.UpdatedAt = time.Now()
	return &stats, nil
}
