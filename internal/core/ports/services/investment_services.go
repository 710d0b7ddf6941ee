package services

import (
	"context"

	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/loretops/finalproject-LPS-sub000/internal/dto"
)

// InvestmentReaderSvc defines read operations over the investment ledger.
type InvestmentReaderSvc interface {
	// GetInvestmentByID retrieves a specific investment by its ID.
	GetInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)

	// GetUserInvestments retrieves a page of the given user's investments.
	GetUserInvestments(ctx context.Context, userID string, params dto.ListInvestmentsParams) (*dto.InvestmentListResponse, error)

	// GetProjectInvestments retrieves a page of a project's investments.
	GetProjectInvestments(ctx context.Context, projectID string, params dto.ListInvestmentsParams) (*dto.InvestmentListResponse, error)

	// ListInvestments retrieves a page of all investments, optionally filtered
	// by status and project.
	ListInvestments(ctx context.Context, params dto.ListInvestmentsParams) (*dto.InvestmentListResponse, error)
}

// InvestmentWriterSvc defines the mutating ledger operations.
type InvestmentWriterSvc interface {
	// CreateInvestment validates and persists a new pending investment.
	CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Investment, error)

	// UpdateInvestmentStatus applies a manager-driven status transition,
	// adjusting the owning project's funded amount as required.
	UpdateInvestmentStatus(ctx context.Context, investmentID string, req dto.UpdateInvestmentStatusRequest, updatedBy string) (*domain.Investment, error)

	// CancelInvestment lets the investing user cancel their own pending investment.
	CancelInvestment(ctx context.Context, investmentID string, userID string) (*domain.Investment, error)
}

// InvestmentSvcFacade combines all investment service interfaces.
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
