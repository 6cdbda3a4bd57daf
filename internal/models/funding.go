package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit is the DB representation of a deposit request.
type Deposit struct {
	DepositID  string          `db:"deposit_id"`
	UserID     string          `db:"user_id"`
	Amount     decimal.Decimal `db:"amount"`
	MethodID   string          `db:"method_id"`
	MethodName string          `db:"method_name"`
	Address    string          `db:"address"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	ApprovedAt *time.Time      `db:"approved_at"`
}

// Withdrawal is the DB representation of a withdrawal request.
type Withdrawal struct {
	WithdrawalID string          `db:"withdrawal_id"`
	UserID       string          `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Method       string          `db:"method"`
	Address      string          `db:"address"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
	ApprovedAt   *time.Time      `db:"approved_at"`
}
