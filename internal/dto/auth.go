package dto

// RegisterRequest carries a new user registration.
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required,min=2"`
	LastName    string `json:"lastName" binding:"required,min=2"`
	Username    string `json:"username"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"` // YYYY-MM-DD
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest carries the admin password.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token and a user summary.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user,omitempty"`
}

// RegisterResponse returns the created user's identity.
type RegisterResponse struct {
	ID   string       `json:"id"`
	User UserResponse `json:"user"`
}

// ChangePasswordRequest carries a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
