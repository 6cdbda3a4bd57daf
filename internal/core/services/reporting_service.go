package services

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
)

// reportingService serves the admin platform statistics.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	stats, err := s.reportingRepo.GetPlatformStats(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute platform stats")
		return nil, err
	}
	return stats, nil
}
