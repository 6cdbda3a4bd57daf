package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the DB representation of a platform member.
type User struct {
	UserID       string    `db:"user_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DateOfBirth  time.Time `db:"date_of_birth"`

	Balance       decimal.Decimal `db:"balance"`
	TotalDeposit  decimal.Decimal `db:"total_deposit"`
	TotalWithdraw decimal.Decimal `db:"total_withdraw"`
	CurrentInvest decimal.Decimal `db:"current_invest"`

	Blocked     bool       `db:"blocked"`
	Deleted     bool       `db:"deleted"`
	LastLoginAt *time.Time `db:"last_login_at"`

	Phone   string `db:"phone"`
	Country string `db:"country"`
	Address string `db:"address"`
	AuditFields
}
