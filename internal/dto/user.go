package dto

import (
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserResponse is the user representation returned by the API.
// The password hash is never serialized.
type UserResponse struct {
	UserID        string          `json:"userID"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Username      string          `json:"username"`
	DisplayName   string          `json:"displayName"`
	Email         string          `json:"email"`
	DateOfBirth   string          `json:"dateOfBirth"`
	Balance       decimal.Decimal `json:"balance"`
	TotalDeposit  decimal.Decimal `json:"totalDeposit"`
	TotalWithdraw decimal.Decimal `json:"totalWithdraw"`
	CurrentInvest decimal.Decimal `json:"currentInvest"`
	Blocked       bool            `json:"blocked"`
	Deleted       bool            `json:"deleted"`
	LastLoginAt   *time.Time      `json:"lastLoginAt,omitempty"`
	Phone         string          `json:"phone"`
	Country       string          `json:"country"`
	Address       string          `json:"address"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	dob := ""
	if !u.DateOfBirth.IsZero() {
		dob = u.DateOfBirth.Format("2006-01-02")
	}
	return UserResponse{
		UserID:        u.UserID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Username:      u.Username,
		DisplayName:   u.DisplayName(),
		Email:         u.Email,
		DateOfBirth:   dob,
		Balance:       u.Balance,
		TotalDeposit:  u.TotalDeposit,
		TotalWithdraw: u.TotalWithdraw,
		CurrentInvest: u.CurrentInvest,
		Blocked:       u.Blocked,
		Deleted:       u.Deleted,
		LastLoginAt:   u.LastLoginAt,
		Phone:         u.Phone,
		Country:       u.Country,
		Address:       u.Address,
		CreatedAt:     u.CreatedAt,
	}
}

// UpdateProfileRequest defines the fields a user may change on their profile.
// Pointers differentiate omitted fields from zero values.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=2"`
	LastName  *string `json:"lastName" binding:"omitempty,min=2"`
	Phone     *string `json:"phone"`
	Country   *string `json:"country"`
	Address   *string `json:"address"`
}

// ListUsersParams defines query parameters for the admin user listing.
type ListUsersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the admin user listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// BlockUserRequest toggles a user's blocked flag.
type BlockUserRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
