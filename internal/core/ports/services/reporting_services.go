package services

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
)

// ReportingSvcFacade produces the admin aggregate view of the platform.
type ReportingSvcFacade interface {
	// GetPlatformStats counts users, funding requests and investments and
	// sums the money that moved through each.
	GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)
}
