package services

import (
	"context"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetDashboard assembles the user's full financial state. Pending
	// accruals are applied before the snapshot is taken.
	GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user account.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile updates the user's own profile fields.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// ChangePassword verifies the current password and sets a new one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserAdminSvc defines admin operations on user accounts
type UserAdminSvc interface {
	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// SetBlocked blocks or unblocks a user account.
	SetBlocked(ctx context.Context, userID string, blocked bool) (*domain.User, error)

	// DeleteUser removes a user and all their funding and investment records.
	DeleteUser(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	UserAdminSvc
}
