package mapping

import (
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/loretops/finalproject-LPS-sub000/internal/models"
)

// ToModelInvestment converts a domain Investment to a model Investment.
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:      d.InvestmentID,
		UserID:            d.UserID,
		ProjectID:         d.ProjectID,
		Amount:            d.Amount,
		Status:            models.InvestmentStatus(d.Status),
		Notes:             d.Notes,
		ContractReference: d.ContractReference,
		InvestedAt:        d.InvestedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:      m.InvestmentID,
		UserID:            m.UserID,
		ProjectID:         m.ProjectID,
		Amount:            m.Amount,
		Status:            domain.InvestmentStatus(m.Status),
		Notes:             m.Notes,
		ContractReference: m.ContractReference,
		InvestedAt:        m.InvestedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestmentSlice converts a slice of model Investments to domain Investments.
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}
