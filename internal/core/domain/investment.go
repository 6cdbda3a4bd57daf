package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

// Investment is a fixed-term placement of principal into a plan.
// Amount, Plan and DailyRate are immutable after creation; the rate is a
// snapshot of the plan table taken at open time, so later rate changes never
// alter an existing investment. Only the accrual engine mutates the record:
// DaysCompleted, TotalProfitEarned and LastProfitAt advance monotonically,
// and CapitalReturned flips false->true exactly once together with the
// transition to completed.
type Investment struct {
	InvestmentID string          `json:"investmentID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	Plan         string          `json:"plan"`
	DailyRate    decimal.Decimal `json:"dailyRate"`

	Status    InvestmentStatus `json:"status"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	TotalDays int              `json:"totalDays"`

	DaysCompleted     int             `json:"daysCompleted"`
	TotalProfitEarned decimal.Decimal `json:"totalProfitEarned"`
	LastProfitAt      time.Time       `json:"lastProfitAt"`
	CapitalReturned   bool            `json:"capitalReturned"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ScheduledEnd is the moment the term elapses, anchored to the start date
// rather than to profit application time.
func (i Investment) ScheduledEnd() time.Time {
	return i.StartDate.Add(time.Duration(i.TotalDays) * 24 * time.Hour)
}

// RemainingDays reports whole days left until the scheduled end, never negative.
func (i Investment) RemainingDays(now time.Time) int {
	remaining := i.EndDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}
