package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/dto"
)

// methodService manages the payment rails.
type methodService struct {
	BaseService
	methodRepo portsrepo.MethodRepository
}

// NewMethodService creates the method service.
func NewMethodService(methodRepo portsrepo.MethodRepository) portssvc.MethodSvcFacade {
	return &methodService{methodRepo: methodRepo}
}

var _ portssvc.MethodSvcFacade = (*methodService)(nil)

func (s *methodService) ListDepositMethods(ctx context.Context, enabledOnly bool) ([]domain.DepositMethod, error) {
	return s.methodRepo.ListDepositMethods(ctx, enabledOnly)
}

func (s *methodService) CreateDepositMethod(ctx context.Context, req dto.CreateDepositMethodRequest) (*domain.DepositMethod, error) {
	now := time.Now()
	method := domain.DepositMethod{
		MethodID: uuid.NewString(),
		Name:     req.Name,
		Address:  req.Address,
		QR:       req.QR,
		Enabled:  true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.methodRepo.SaveDepositMethod(ctx, method); err != nil {
		s.LogError(ctx, err, "Failed to save deposit method", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit method created", slog.String("method_id", method.MethodID))
	return &method, nil
}

func (s *methodService) UpdateDepositMethod(ctx context.Context, methodID string, req dto.UpdateDepositMethodRequest) (*domain.DepositMethod, error) {
	method, err := s.methodRepo.FindDepositMethodByID(ctx, methodID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		method.Name = *req.Name
	}
	if req.Address != nil {
		method.Address = *req.Address
	}
	if req.QR != nil {
		method.QR = *req.QR
	}
	if req.Enabled != nil {
		method.Enabled = *req.Enabled
	}
	method.UpdatedAt = time.Now()

	if err := s.methodRepo.SaveDepositMethod(ctx, *method); err != nil {
		s.LogError(ctx, err, "Failed to update deposit method", slog.String("method_id", methodID))
		return nil, err
	}
	return method, nil
}

func (s *methodService) DeleteDepositMethod(ctx context.Context, methodID string) error {
	if _, err := s.methodRepo.FindDepositMethodByID(ctx, methodID); err != nil {
		return err
	}
	if err := s.methodRepo.DeleteDepositMethod(ctx, methodID); err != nil {
		s.LogError(ctx, err, "Failed to delete deposit method", slog.String("method_id", methodID))
		return err
	}
	s.LogInfo(ctx, "Deposit method deleted", slog.String("method_id", methodID))
	return nil
}

func (s *methodService) ListWithdrawMethods(ctx context.Context, enabledOnly bool) ([]domain.WithdrawMethod, error) {
	return s.methodRepo.ListWithdrawMethods(ctx, enabledOnly)
}

func (s *methodService) CreateWithdrawMethod(ctx context.Context, req dto.CreateWithdrawMethodRequest) (*domain.WithdrawMethod, error) {
	now := time.Now()
	method := domain.WithdrawMethod{
		MethodID: uuid.NewString(),
		Name:     req.Name,
		Min:      req.Min,
		Fee:      req.Fee,
		Enabled:  true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.methodRepo.SaveWithdrawMethod(ctx, method); err != nil {
		s.LogError(ctx, err, "Failed to save withdraw method", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Withdraw method created", slog.String("method_id", method.MethodID))
	return &method, nil
}

func (s *methodService) UpdateWithdrawMethod(ctx context.Context, methodID string, req dto.UpdateWithdrawMethodRequest) (*domain.WithdrawMethod, error) {
	method, err := s.methodRepo.FindWithdrawMethodByID(ctx, methodID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		method.Name = *req.Name
	}
	if req.Min != nil {
		method.Min = *req.Min
	}
	if req.Fee != nil {
		method.Fee = *req.Fee
	}
	if req.Enabled != nil {
		method.Enabled = *req.Enabled
	}
	method.UpdatedAt = time.Now()

	if err := s.methodRepo.SaveWithdrawMethod(ctx, *method); err != nil {
		s.LogError(ctx, err, "Failed to update withdraw method", slog.String("method_id", methodID))
		return nil, err
	}
	return method, nil
}

func (s *methodService) DeleteWithdrawMethod(ctx context.Context, methodID string) error {
	if _, err := s.methodRepo.FindWithdrawMethodByID(ctx, methodID); err != nil {
		return err
	}
	if err := s.methodRepo.DeleteWithdrawMethod(ctx, methodID); err != nil {
		s.LogError(ctx, err, "Failed to delete withdraw method", slog.String("method_id", methodID))
		return err
	}
	s.LogInfo(ctx, "Withdraw method deleted", slog.String("method_id", methodID))
	return nil
}
