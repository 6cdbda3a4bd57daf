package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is the DB representation of a fixed-term investment.
type Investment struct {
	InvestmentID string          `db:"investment_id"`
	UserID       string          `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Plan         string          `db:"plan"`
	DailyRate    decimal.Decimal `db:"daily_rate"`

	Status    string    `db:"status"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	TotalDays int       `db:"total_days"`

	DaysCompleted     int             `db:"days_completed"`
	TotalProfitEarned decimal.Decimal `db:"total_profit_earned"`
	LastProfitAt      time.Time       `db:"last_profit_at"`
	CapitalReturned   bool            `db:"capital_returned"`
	CompletedAt       *time.Time      `db:"completed_at"`

	CreatedAt time.Time `db:"created_at"`
}
