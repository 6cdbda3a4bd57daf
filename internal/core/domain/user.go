package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a platform member and their financial aggregate.
// Blocked and Deleted are soft flags: they gate login and financial actions
// but keep the user's history intact. Hard removal only happens through the
// admin delete flow, which cascades to owned deposits/withdrawals/investments.
type User struct {
	UserID       string    `json:"userID"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DateOfBirth  time.Time `json:"dateOfBirth"`

	Balance       decimal.Decimal `json:"balance"`
	TotalDeposit  decimal.Decimal `json:"totalDeposit"`
	TotalWithdraw decimal.Decimal `json:"totalWithdraw"`
	CurrentInvest decimal.Decimal `json:"currentInvest"`

	Blocked     bool       `json:"blocked"`
	Deleted     bool       `json:"deleted"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	Phone   string `json:"phone"`
	Country string `json:"country"`
	Address string `json:"address"`

	AuditFields
}

// DisplayName is the combined name shown in listings.
func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
