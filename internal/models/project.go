package models

import (
	"github.com/shopspring/decimal"
)

// ProjectStatus mirrors domain.ProjectStatus at the storage layer.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectPublished ProjectStatus = "published"
	ProjectClosed    ProjectStatus = "closed"
	ProjectFunded    ProjectStatus = "funded"
)

// Project represents a row of the projects table. CurrentAmount is only ever
// mutated through the atomic increment in the investment repository.
type Project struct {
	ProjectID         string          `db:"project_id"`
	OwnerID           string          `db:"owner_id"`
	Title             string          `db:"title"`
	Description       string          `db:"description"`
	Location          string          `db:"location"`
	PropertyType      string          `db:"property_type"`
	MinimumInvestment decimal.Decimal `db:"minimum_investment"`
	TargetAmount      decimal.Decimal `db:"target_amount"`
	CurrentAmount     decimal.Decimal `db:"current_amount"`
	ExpectedROI       decimal.Decimal `db:"expected_roi"`
	Status            ProjectStatus   `db:"status"`
	Draft             bool            `db:"draft"`
	AuditFields
}
