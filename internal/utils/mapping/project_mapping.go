package mapping

import (
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/loretops/finalproject-LPS-sub000/internal/models"
)

// ToModelProject converts a domain Project to a model Project.
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:         d.ProjectID,
		OwnerID:           d.OwnerID,
		Title:             d.Title,
		Description:       d.Description,
		Location:          d.Location,
		PropertyType:      d.PropertyType,
		MinimumInvestment: d.MinimumInvestment,
		TargetAmount:      d.TargetAmount,
		CurrentAmount:     d.CurrentAmount,
		ExpectedROI:       d.ExpectedROI,
		Status:            models.ProjectStatus(d.Status),
		Draft:             d.Draft,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project.
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:         m.ProjectID,
		OwnerID:           m.OwnerID,
		Title:             m.Title,
		Description:       m.Description,
		Location:          m.Location,
		PropertyType:      m.PropertyType,
		MinimumInvestment: m.MinimumInvestment,
		TargetAmount:      m.TargetAmount,
		CurrentAmount:     m.CurrentAmount,
		ExpectedROI:       m.ExpectedROI,
		Status:            domain.ProjectStatus(m.Status),
		Draft:             m.Draft,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of model Projects to domain Projects.
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
