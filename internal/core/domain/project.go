package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProjectStatus indicates where a project stands in its funding lifecycle.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectPublished ProjectStatus = "published"
	ProjectClosed    ProjectStatus = "closed"
	ProjectFunded    ProjectStatus = "funded"
)

// minDescriptionLength is the minimum description length required for publication.
const minDescriptionLength = 50

// Project is an investment opportunity published by a manager. CurrentAmount is
// the capital counted toward the goal; it is mutated only by the investment
// service as investments move through their state machine, and always equals the
// sum of amounts over the project's confirmed and completed investments.
type Project struct {
	ProjectID         string          `json:"projectID"`
	OwnerID           string          `json:"ownerID"` // managing user
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Location          string          `json:"location"`
	PropertyType      string          `json:"propertyType"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	CurrentAmount     decimal.Decimal `json:"currentAmount"`
	ExpectedROI       decimal.Decimal `json:"expectedRoi"`
	Status            ProjectStatus   `json:"status"`
	Draft             bool            `json:"draft"`
	AuditFields
}

// MeetsMinimumInvestment reports whether the given amount reaches the minimum ticket.
func (p *Project) MeetsMinimumInvestment(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.MinimumInvestment)
}

// IsAvailableForInvestment reports whether the project currently accepts new
// investments: published, no longer a draft, and not yet fully funded.
func (p *Project) IsAvailableForInvestment() bool {
	if p.Draft || p.Status != ProjectPublished {
		return false
	}
	return p.CurrentAmount.LessThan(p.TargetAmount)
}

// FinancingPercentage returns the funding progress as a percentage rounded to
// two decimals and capped at 100.
func (p *Project) FinancingPercentage() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if p.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := p.CurrentAmount.Div(p.TargetAmount).Mul(hundred).Round(2)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// ValidateForPublish runs the full validation pass required before a draft can
// be published.
func (p *Project) ValidateForPublish() error {
	if p.Title == "" {
		return fmt.Errorf("project title is required")
	}
	if len(p.Description) < minDescriptionLength {
		return fmt.Errorf("project description must be at least %d characters", minDescriptionLength)
	}
	if p.MinimumInvestment.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("minimum investment must be greater than zero")
	}
	if p.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("target amount must be greater than zero")
	}
	if p.ExpectedROI.IsNegative() {
		return fmt.Errorf("expected ROI cannot be negative")
	}
	if p.Location == "" {
		return fmt.Errorf("project location is required")
	}
	if p.PropertyType == "" {
		return fmt.Errorf("property type is required")
	}
	return nil
}
