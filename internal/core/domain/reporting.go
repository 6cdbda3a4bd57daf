package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformStats is the admin-facing aggregate view of the platform.
type PlatformStats struct {
	TotalUsers            int64           `json:"totalUsers"`
	BlockedUsers          int64           `json:"blockedUsers"`
	TotalDeposits         int64           `json:"totalDeposits"`
	PendingDeposits       int64           `json:"pendingDeposits"`
	TotalWithdrawals      int64           `json:"totalWithdrawals"`
	PendingWithdrawals    int64           `json:"pendingWithdrawals"`
	TotalInvestments      int64           `json:"totalInvestments"`
	ActiveInvestments     int64           `json:"activeInvestments"`
	TotalDepositAmount    decimal.Decimal `json:"totalDepositAmount"`
	TotalWithdrawalAmount decimal.Decimal `json:"totalWithdrawalAmount"`
	TotalInvestmentAmount decimal.Decimal `json:"totalInvestmentAmount"`
	TotalProfitPaid       decimal.Decimal `json:"totalProfitPaid"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// Dashboard aggregates a user's financial state for the dashboard view.
// The accrual engine is always run before this is assembled.
type Dashboard struct {
	User        User         `json:"user"`
	Deposits    []Deposit    `json:"deposits"`
	Withdrawals []Withdrawal `json:"withdrawals"`
	Investments []Investment `json:"investments"`
}
