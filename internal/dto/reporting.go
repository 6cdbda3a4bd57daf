package dto

import (
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
)

// DashboardResponse is the user's full financial state, returned after the
// accrual engine has reconciled their investments.
type DashboardResponse struct {
	User        UserResponse         `json:"user"`
	Deposits    []DepositResponse    `json:"deposits"`
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
	Investments []InvestmentResponse `json:"investments"`
}

func ToDashboardResponse(d domain.Dashboard, now time.Time) DashboardResponse {
	return DashboardResponse{
		User:        ToUserResponse(&d.User),
		Deposits:    ToDepositResponses(d.Deposits),
		Withdrawals: ToWithdrawalResponses(d.Withdrawals),
		Investments: ToInvestmentResponses(d.Investments, now),
	}
}
