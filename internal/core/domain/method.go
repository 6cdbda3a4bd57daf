package domain

import (
	"github.com/shopspring/decimal"
)

// DepositMethod is a payment rail users can deposit through.
// QR holds a URL to a code image for the address; image storage itself is
// out of scope, only the reference is kept.
type DepositMethod struct {
	MethodID string `json:"methodID"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	QR       string `json:"qr"`
	Enabled  bool   `json:"enabled"`
	AuditFields
}

// WithdrawMethod is a payout rail with its minimum amount and flat fee.
type WithdrawMethod struct {
	MethodID string          `json:"methodID"`
	Name     string          `json:"name"`
	Min      decimal.Decimal `json:"min"`
	Fee      decimal.Decimal `json:"fee"`
	Enabled  bool            `json:"enabled"`
	AuditFields
}
