package models

import (
	"github.com/shopspring/decimal"
)

// DepositMethod is the DB representation of a deposit payment rail.
type DepositMethod struct {
	MethodID string `db:"method_id"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	QR       string `db:"qr"`
	Enabled  bool   `db:"enabled"`
	AuditFields
}

// WithdrawMethod is the DB representation of a payout rail.
type WithdrawMethod struct {
	MethodID string          `db:"method_id"`
	Name     string          `db:"name"`
	Min      decimal.Decimal `db:"min"`
	Fee      decimal.Decimal `db:"fee"`
	Enabled  bool            `db:"enabled"`
	AuditFields
}
