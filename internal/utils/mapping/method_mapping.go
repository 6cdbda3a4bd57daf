package mapping

import (
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/models"
)

// ToDomainDepositMethod converts a DB model deposit method to the domain entity.
func ToDomainDepositMethod(m models.DepositMethod) domain.DepositMethod {
	return domain.DepositMethod{
		MethodID: m.MethodID,
		Name:     m.Name,
		Address:  m.Address,
		QR:       m.QR,
		Enabled:  m.Enabled,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelDepositMethod converts a domain.DepositMethod to its DB model.
func ToModelDepositMethod(d domain.DepositMethod) models.DepositMethod {
	return models.DepositMethod{
		MethodID: d.MethodID,
		Name:     d.Name,
		Address:  d.Address,
		QR:       d.QR,
		Enabled:  d.Enabled,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainWithdrawMethod converts a DB model withdraw method to the domain entity.
func ToDomainWithdrawMethod(m models.WithdrawMethod) domain.WithdrawMethod {
	return domain.WithdrawMethod{
		MethodID: m.MethodID,
		Name:     m.Name,
		Min:      m.Min,
		Fee:      m.Fee,
		Enabled:  m.Enabled,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelWithdrawMethod converts a domain.WithdrawMethod to its DB model.
func ToModelWithdrawMethod(d domain.WithdrawMethod) models.WithdrawMethod {
	return models.WithdrawMethod{
		MethodID: d.MethodID,
		Name:     d.Name,
		Min:      d.Min,
		Fee:      d.Fee,
		Enabled:  d.Enabled,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}
