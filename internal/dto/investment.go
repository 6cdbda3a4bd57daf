package dto

import (
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenInvestmentRequest carries a new investment placement.
type OpenInvestmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Plan   string          `json:"plan" binding:"required"`
}

// InvestmentResponse is an investment annotated with derived schedule fields.
type InvestmentResponse struct {
	InvestmentID      string          `json:"investmentID"`
	Amount            decimal.Decimal `json:"amount"`
	Plan              string          `json:"plan"`
	DailyRate         decimal.Decimal `json:"dailyRate"`
	Status            string          `json:"status"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	TotalDays         int             `json:"totalDays"`
	DaysCompleted     int             `json:"daysCompleted"`
	TotalProfitEarned decimal.Decimal `json:"totalProfitEarned"`
	LastProfitAt      time.Time       `json:"lastProfitAt"`
	CapitalReturned   bool            `json:"capitalReturned"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`
	RemainingDays     int             `json:"remainingDays"`
	IsActive          bool            `json:"isActive"`
	IsCompleted       bool            `json:"isCompleted"`
}

// ToInvestmentResponse converts a domain.Investment, deriving remainingDays
// and the status flags relative to now.
func ToInvestmentResponse(inv domain.Investment, now time.Time) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:      inv.InvestmentID,
		Amount:            inv.Amount,
		Plan:              inv.Plan,
		DailyRate:         inv.DailyRate,
		Status:            string(inv.Status),
		StartDate:         inv.StartDate,
		EndDate:           inv.EndDate,
		TotalDays:         inv.TotalDays,
		DaysCompleted:     inv.DaysCompleted,
		TotalProfitEarned: inv.TotalProfitEarned,
		LastProfitAt:      inv.LastProfitAt,
		CapitalReturned:   inv.CapitalReturned,
		CompletedAt:       inv.CompletedAt,
		RemainingDays:     inv.RemainingDays(now),
		IsActive:          inv.Status == domain.InvestmentActive,
		IsCompleted:       inv.Status == domain.InvestmentCompleted,
	}
}

// ToInvestmentResponses converts a slice of investments.
func ToInvestmentResponses(invs []domain.Investment, now time.Time) []InvestmentResponse {
	out := make([]InvestmentResponse, len(invs))
	for i, inv := range invs {
		out[i] = ToInvestmentResponse(inv, now)
	}
	return out
}

// ListInvestmentsResponse wraps the user investment listing.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// PlanResponse describes an available investment plan.
type PlanResponse struct {
	Name      string          `json:"name"`
	DailyRate decimal.Decimal `json:"dailyRate"`
}
