package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingStatus is the approval state of a deposit or withdrawal request.
type FundingStatus string

const (
	FundingPending  FundingStatus = "pending"
	FundingApproved FundingStatus = "approved"
	FundingRejected FundingStatus = "rejected"
)

// Deposit is a user's request to add funds, credited only on admin approval.
type Deposit struct {
	DepositID  string          `json:"depositID"`
	UserID     string          `json:"userID"`
	Amount     decimal.Decimal `json:"amount"`
	MethodID   string          `json:"methodID"`
	MethodName string          `json:"method"`
	Address    string          `json:"address"`
	Status     FundingStatus   `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	ApprovedAt *time.Time      `json:"approvedAt,omitempty"`
}

// Withdrawal is a user's request to remove funds, debited only on admin approval.
type Withdrawal struct {
	WithdrawalID string          `json:"withdrawalID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	Address      string          `json:"address"`
	Status       FundingStatus   `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
}

// UserSummary is the owner info attached to funding records in admin listings.
type UserSummary struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Blocked  bool   `json:"blocked"`
}
