package mapping

import (
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/harvestive/harvestive-backend/internal/models"
)

// ToModelUser converts a domain.User to its DB model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:        d.UserID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Username:      d.Username,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		DateOfBirth:   d.DateOfBirth,
		Balance:       d.Balance,
		TotalDeposit:  d.TotalDeposit,
		TotalWithdraw: d.TotalWithdraw,
		CurrentInvest: d.CurrentInvest,
		Blocked:       d.Blocked,
		Deleted:       d.Deleted,
		LastLoginAt:   d.LastLoginAt,
		Phone:         d.Phone,
		Country:       d.Country,
		Address:       d.Address,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainUser converts a DB model user to the domain entity.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		DateOfBirth:   m.DateOfBirth,
		Balance:       m.Balance,
		TotalDeposit:  m.TotalDeposit,
		TotalWithdraw: m.TotalWithdraw,
		CurrentInvest: m.CurrentInvest,
		Blocked:       m.Blocked,
		Deleted:       m.Deleted,
		LastLoginAt:   m.LastLoginAt,
		Phone:         m.Phone,
		Country:       m.Country,
		Address:       m.Address,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
