package dto

import (
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest is the payload for creating a draft project.
type CreateProjectRequest struct {
	Title             string          `json:"title" binding:"required"`
	Description       string          `json:"description"`
	Location          string          `json:"location"`
	PropertyType      string          `json:"propertyType"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment" binding:"required"`
	TargetAmount      decimal.Decimal `json:"targetAmount" binding:"required"`
	ExpectedROI       decimal.Decimal `json:"expectedRoi"`
}

// ListProjectsParams holds page coordinates for project listings.
type ListProjectsParams struct {
	Page  int
	Limit int
}

// ProjectResponse is the wire shape of a project, including its derived
// financing percentage.
type ProjectResponse struct {
	ProjectID           string          `json:"projectId"`
	OwnerID             string          `json:"ownerId"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Location            string          `json:"location"`
	PropertyType        string          `json:"propertyType"`
	MinimumInvestment   decimal.Decimal `json:"minimumInvestment"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
	CurrentAmount       decimal.Decimal `json:"currentAmount"`
	ExpectedROI         decimal.Decimal `json:"expectedRoi"`
	Status              string          `json:"status"`
	Draft               bool            `json:"draft"`
	FinancingPercentage decimal.Decimal `json:"financingPercentage"`
}

// ProjectListResponse is a page of projects.
type ProjectListResponse struct {
	Data       []ProjectResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// ToProjectResponse converts a domain Project to its wire shape.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:           p.ProjectID,
		OwnerID:             p.OwnerID,
		Title:               p.Title,
		Description:         p.Description,
		Location:            p.Location,
		PropertyType:        p.PropertyType,
		MinimumInvestment:   p.MinimumInvestment,
		TargetAmount:        p.TargetAmount,
		CurrentAmount:       p.CurrentAmount,
		ExpectedROI:         p.ExpectedROI,
		Status:              string(p.Status),
		Draft:               p.Draft,
		FinancingPercentage: p.FinancingPercentage(),
	}
}

// ToProjectResponses converts a slice of domain Projects.
func ToProjectResponses(ps []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(ps))
	for i := range ps {
		responses[i] = ToProjectResponse(&ps[i])
	}
	return responses
}
