package mapping

import (
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/models"
)

// ToModelInvestment converts a domain.Investment to its DB model.
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:      d.InvestmentID,
		UserID:            d.UserID,
		Amount:            d.Amount,
		Plan:              d.Plan,
		DailyRate:         d.DailyRate,
		Status:            string(d.Status),
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		TotalDays:         d.TotalDays,
		DaysCompleted:     d.DaysCompleted,
		TotalProfitEarned: d.TotalProfitEarned,
		LastProfitAt:      d.LastProfitAt,
		CapitalReturned:   d.CapitalReturned,
		CompletedAt:       d.CompletedAt,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainInvestment converts a DB model investment to the domain entity.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:      m.InvestmentID,
		UserID:            m.UserID,
		Amount:            m.Amount,
		Plan:              m.Plan,
		DailyRate:         m.DailyRate,
		Status:            domain.InvestmentStatus(m.Status),
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		TotalDays:         m.TotalDays,
		DaysCompleted:     m.DaysCompleted,
		TotalProfitEarned: m.TotalProfitEarned,
		LastProfitAt:      m.LastProfitAt,
		CapitalReturned:   m.CapitalReturned,
		CompletedAt:       m.CompletedAt,
		CreatedAt:         m.CreatedAt,
	}
}
