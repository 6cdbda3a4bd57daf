package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harvestive/harvestive-backend/internal/apperrors"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portsrepo "github.com/harvestive/harvestive-backend/internal/core/ports/repositories"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/dto"
	"github.com/harvestive/harvestive-backend/internal/utils"
	"github.com/shopspring/decimal"
)

const minRegistrationAge = 13

// userService implements registration, authentication, profile management and
// the admin account operations.
type userService struct {
	BaseService
	userRepo       portsrepo.UserRepository
	depositRepo    portsrepo.DepositRepository
	withdrawalRepo portsrepo.WithdrawalRepository
	investmentRepo portsrepo.InvestmentRepository
	accrual        portssvc.AccrualSvcFacade
}

// NewUserService creates the user service.
func NewUserService(
	userRepo portsrepo.UserRepository,
	depositRepo portsrepo.DepositRepository,
	withdrawalRepo portsrepo.WithdrawalRepository,
	investmentRepo portsrepo.InvestmentRepository,
	accrual portssvc.AccrualSvcFacade,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:       userRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		investmentRepo: investmentRepo,
		accrual:        accrual,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth, expected YYYY-MM-DD: %w", apperrors.ErrValidation)
	}
	if age(dob, time.Now()) < minRegistrationAge {
		return nil, fmt.Errorf("users must be at least %d years old: %w", minRegistrationAge, apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = strings.Split(email, "@")[0]
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Username:      username,
		Email:         email,
		PasswordHash:  hash,
		DateOfBirth:   dob,
		Balance:       decimal.Zero,
		TotalDeposit:  decimal.Zero,
		TotalWithdraw: decimal.Zero,
		CurrentInvest: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	if user.Deleted {
		return nil, fmt.Errorf("account no longer exists: %w", apperrors.ErrForbidden)
	}
	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrForbidden)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		s.LogWarn(ctx, "Failed to record last login",
			slog.String("user_id", user.UserID),
			slog.String("error", err.Error()))
	} else {
		user.LastLoginAt = &now
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := s.accrual.Reconcile(ctx, userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Blocked gates reads too, not just money movement. Accrual above still
	// ran, so the account keeps earning while locked out.
	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *userService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	if err := s.accrual.Reconcile(ctx, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrForbidden)
	}

	total, err := s.investmentRepo.SumActivePrincipal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !total.Equal(user.CurrentInvest) {
		if err := s.userRepo.SetCurrentInvest(ctx, userID, total, time.Now()); err != nil {
			s.LogWarn(ctx, "Failed to refresh current invest aggregate",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
		} else {
			user.CurrentInvest = total
		}
	}

	deposits, err := s.depositRepo.FindDepositsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.withdrawalRepo.FindWithdrawalsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	investments, err := s.investmentRepo.FindInvestmentsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		User:        *user,
		Deposits:    deposits,
		Withdrawals: withdrawals,
		Investments: investments,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Country != nil {
		user.Country = strings.TrimSpace(*req.Country)
	}
	if req.Address != nil {
		user.Address = strings.TrimSpace(*req.Address)
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateProfile(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("user_id", userID))
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}

func (s *userService) SetBlocked(ctx context.Context, userID string, blocked bool) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Blocked != blocked {
		if err := s.userRepo.SetBlocked(ctx, userID, blocked, time.Now()); err != nil {
			s.LogError(ctx, err, "Failed to set blocked flag", slog.String("user_id", userID))
			return nil, err
		}
		user.Blocked = blocked
	}

	s.LogInfo(ctx, "User blocked flag updated",
		slog.String("user_id", userID),
		slog.Bool("blocked", blocked))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUserCascade(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// age reports full years between dob and now.
func age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
