package dto

import (
	"time"

	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest is the payload for creating a new investment.
type CreateInvestmentRequest struct {
	ProjectID string          `json:"projectId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Notes     string          `json:"notes"`
}

// UpdateInvestmentStatusRequest is the payload for a manager-driven status
// transition. ContractReference and Notes only overwrite the stored values
// when supplied.
type UpdateInvestmentStatusRequest struct {
	Status            string  `json:"status" binding:"required"`
	ContractReference *string `json:"contractReference,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// ListInvestmentsParams holds the filters and page coordinates for listings.
type ListInvestmentsParams struct {
	Status    *string
	ProjectID string
	Page      int
	Limit     int
}

// InvestmentResponse is the wire shape of a single investment.
type InvestmentResponse struct {
	InvestmentID      string          `json:"investmentId"`
	UserID            string          `json:"userId"`
	ProjectID         string          `json:"projectId"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes,omitempty"`
	ContractReference string          `json:"contractReference,omitempty"`
	InvestedAt        time.Time       `json:"investedAt"`
}

// InvestmentListResponse is a page of investments.
type InvestmentListResponse struct {
	Data       []InvestmentResponse `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// ToInvestmentResponse converts a domain Investment to its wire shape.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:      inv.InvestmentID,
		UserID:            inv.UserID,
		ProjectID:         inv.ProjectID,
		Amount:            inv.Amount,
		Status:            string(inv.Status),
		Notes:             inv.Notes,
		ContractReference: inv.ContractReference,
		InvestedAt:        inv.InvestedAt,
	}
}

// ToInvestmentResponses converts a slice of domain Investments.
func ToInvestmentResponses(invs []domain.Investment) []InvestmentResponse {
	responses := make([]InvestmentResponse, len(invs))
	for i := range invs {
		responses[i] = ToInvestmentResponse(&invs[i])
	}
	return responses
}
