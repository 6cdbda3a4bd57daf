package dto

import (
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositMethodRequest adds a payment rail users can deposit through.
type CreateDepositMethodRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Address string `json:"address" binding:"required"`
	QR      string `json:"qr" binding:"omitempty,url"`
}

// UpdateDepositMethodRequest partially updates a deposit method.
type UpdateDepositMethodRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=2"`
	Address *string `json:"address,omitempty"`
	QR      *string `json:"qr,omitempty" binding:"omitempty,url"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// CreateWithdrawMethodRequest adds a payout rail.
type CreateWithdrawMethodRequest struct {
	Name string          `json:"name" binding:"required,min=2"`
	Min  decimal.Decimal `json:"min" binding:"required,gt=0"`
	Fee  decimal.Decimal `json:"fee"`
}

// UpdateWithdrawMethodRequest partially updates a withdraw method.
type UpdateWithdrawMethodRequest struct {
	Name    *string          `json:"name,omitempty" binding:"omitempty,min=2"`
	Min     *decimal.Decimal `json:"min,omitempty" binding:"omitempty,gt=0"`
	Fee     *decimal.Decimal `json:"fee,omitempty"`
	Enabled *bool            `json:"enabled,omitempty"`
}

// ListDepositMethodsResponse wraps a deposit method listing.
type ListDepositMethodsResponse struct {
	Methods []domain.DepositMethod `json:"methods"`
}

// ListWithdrawMethodsResponse wraps a withdraw method listing.
type ListWithdrawMethodsResponse struct {
	Methods []domain.WithdrawMethod `json:"methods"`
}
