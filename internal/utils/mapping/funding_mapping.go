package mapping

import (
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/models"
)

// ToDomainDeposit converts a DB model deposit to the domain entity.
func ToDomainDeposit(m models.Deposit) domain.Deposit {
	return domain.Deposit{
		DepositID:  m.DepositID,
		UserID:     m.UserID,
		Amount:     m.Amount,
		MethodID:   m.MethodID,
		MethodName: m.MethodName,
		Address:    m.Address,
		Status:     domain.FundingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		ApprovedAt: m.ApprovedAt,
	}
}

// ToModelDeposit converts a domain.Deposit to its DB model.
func ToModelDeposit(d domain.Deposit) models.Deposit {
	return models.Deposit{
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

// ToDomainWithdrawal converts a DB model withdrawal to the domain entity.
func ToDomainWithdrawal(m models.Withdrawal) domain.Withdrawal {
	return domain.Withdrawal{
		WithdrawalID: m.WithdrawalID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Method:       m.Method,
		Address:      m.Address,
		Status:       domain.FundingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		ApprovedAt:   m.ApprovedAt,
	}
}

// ToModelWithdrawal converts a domain.Withdrawal to its DB model.
func ToModelWithdrawal(d domain.Withdrawal) models.Withdrawal {
	return models.Withdrawal{
		WithdrawalID: d.WithdrawalID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		Method:       d.Method,
		Address:      d.Address,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
		ApprovedAt:   d.ApprovedAt,
	}
}
