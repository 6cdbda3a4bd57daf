package repositories

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
)

// ReportingRepository defines the aggregate queries for admin statistics.
type ReportingRepository interface {
	GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)
}
