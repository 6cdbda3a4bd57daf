package dto

import (
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest carries a deposit request.
type CreateDepositRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required,gt=0"`
	MethodID string          `json:"method" binding:"required"`
}

// CreateWithdrawalRequest carries a withdrawal request.
type CreateWithdrawalRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Method  string          `json:"method" binding:"required"`
	Address string          `json:"address" binding:"required"`
}

// DepositResponse is the deposit representation returned by the API.
type DepositResponse struct {
	DepositID  string          `json:"depositID"`
	UserID     string          `json:"userID"`
	Amount     decimal.Decimal `json:"amount"`
	MethodID   string          `json:"methodID"`
	MethodName string          `json:"method"`
	Address    string          `json:"address,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	ApprovedAt *time.Time      `json:"approvedAt,omitempty"`
}

// WithdrawalResponse is the withdrawal representation returned by the API.
type WithdrawalResponse struct {
	WithdrawalID string          `json:"withdrawalID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	Address      string          `json:"address"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
}

// UserSummaryResponse identifies the owner of a funding record in admin
// listings.
type UserSummaryResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Blocked  bool   `json:"blocked"`
}

// AdminDepositResponse is a deposit joined with its owner for admin views.
type AdminDepositResponse struct {
	DepositResponse
	User UserSummaryResponse `json:"user"`
}

// AdminWithdrawalResponse is a withdrawal joined with its owner for admin views.
type AdminWithdrawalResponse struct {
	WithdrawalResponse
	User UserSummaryResponse `json:"user"`
}

// ListDepositsResponse wraps a deposit listing.
type ListDepositsResponse struct {
	Deposits []DepositResponse `json:"deposits"`
}

// ListWithdrawalsResponse wraps a withdrawal listing.
type ListWithdrawalsResponse struct {
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
}

func ToDepositResponse(d domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:  d.DepositID,
		UserID:     d.UserID,
		Amount:     d.Amount,
		MethodID:   d.MethodID,
		MethodName: d.MethodName,
		Address:    d.Address,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		ApprovedAt: d.ApprovedAt,
	}
}

func ToDepositResponses(deposits []domain.Deposit) []DepositResponse {
	responses := make([]DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		responses = append(responses, ToDepositResponse(d))
	}
	return responses
}

func ToWithdrawalResponse(w domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID: w.WithdrawalID,
		UserID:       w.UserID,
		Amount:       w.Amount,
		Method:       w.Method,
		Address:      w.Address,
		Status:       string(w.Status),
		CreatedAt:    w.CreatedAt,
		ApprovedAt:   w.ApprovedAt,
	}
}

func ToWithdrawalResponses(withdrawals []domain.Withdrawal) []WithdrawalResponse {
	responses := make([]WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		responses = append(responses, ToWithdrawalResponse(w))
	}
	return responses
}

func ToUserSummaryResponse(s domain.UserSummary) UserSummaryResponse {
	return UserSummaryResponse{
		FullName: s.FullName,
		Email:    s.Email,
		Username: s.Username,
		Blocked:  s.Blocked,
	}
}

func ToAdminDepositResponses(deposits []domain.Deposit, owners map[string]domain.UserSummary) []AdminDepositResponse {
	responses := make([]AdminDepositResponse, 0, len(deposits))
	for _, d := range deposits {
		responses = append(responses, AdminDepositResponse{
			DepositResponse: ToDepositResponse(d),
			User:            ToUserSummaryResponse(owners[d.UserID]),
		})
	}
	return responses
}

func ToAdminWithdrawalResponses(withdrawals []domain.Withdrawal, owners map[string]domain.UserSummary) []AdminWithdrawalResponse {
	responses := make([]AdminWithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		responses = append(responses, AdminWithdrawalResponse{
			WithdrawalResponse: ToWithdrawalResponse(w),
			User:               ToUserSummaryResponse(owners[w.UserID]),
		})
	}
	return responses
}
