package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
	portssvc "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/services"
	"github.com/loretops/finalproject-LPS-sub000/internal/dto"
	"github.com/loretops/finalproject-LPS-sub000/internal/middleware"
)

// investmentService orchestrates the investment ledger: it validates and
// creates investments, drives the status state machine, and keeps each
// project's funded amount consistent with its confirmed and completed
// investments. Funding mutations happen atomically in the repository; the
// notification fan-out and the active-investor flag refresh run after commit
// and are best-effort by design.
type investmentService struct {
	investmentRepo portsrepo.InvestmentRepositoryFacade
	projectRepo    portsrepo.ProjectReader
	userRepo       portsrepo.UserWriter
	notifier       portssvc.NotificationSvcFacade
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(
	investmentRepo portsrepo.InvestmentRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	userRepo portsrepo.UserWriter,
	notifier portssvc.NotificationSvcFacade,
) portssvc.InvestmentSvcFacade {
	return &investmentService{
		investmentRepo: investmentRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

// CreateInvestment validates the request against the project's funding state
// and persists a new pending investment. Pending investments do not count
// toward the project's funded amount; that happens on confirmation.
func (s *investmentService) CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" || req.ProjectID == "" {
		return nil, fmt.Errorf("%w: user and project are required", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: investment amount must be greater than zero", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if !project.IsAvailableForInvestment() {
		return nil, fmt.Errorf("%w: project %s is not available for investment", apperrors.ErrValidation, project.ProjectID)
	}
	if !project.MeetsMinimumInvestment(req.Amount) {
		return nil, fmt.Errorf("%w: investment must be at least %s", apperrors.ErrValidation, project.MinimumInvestment.String())
	}

	now := time.Now().UTC()
	investment := domain.Investment{
		InvestmentID: uuid.NewString(),
		UserID:       userID,
		ProjectID:    req.ProjectID,
		Amount:       req.Amount,
		Status:       domain.InvestmentPending,
		Notes:        req.Notes,
		InvestedAt:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The repository re-validates availability and minimum under a project row
	// lock before inserting, inside a single transaction.
	if err := s.investmentRepo.SaveInvestment(ctx, investment); err != nil {
		logger.Error("Failed to save investment", slog.String("error", err.Error()), slog.String("project_id", req.ProjectID))
		return nil, err
	}

	logger.Info("Investment created", slog.String("investment_id", investment.InvestmentID), slog.String("project_id", project.ProjectID))

	// Post-commit side effects: never fail the created investment.
	s.notify(ctx, project.OwnerID, domain.NotificationNewInvestment,
		fmt.Sprintf("New investment of %s in project %s", investment.Amount.String(), project.Title), investment.InvestmentID)
	s.notify(ctx, userID, domain.NotificationInvestmentMade,
		fmt.Sprintf("Your investment of %s in project %s was registered and is pending review", investment.Amount.String(), project.Title), investment.InvestmentID)
	s.refreshActiveInvestorFlag(ctx, userID)

	return &investment, nil
}

// UpdateInvestmentStatus applies a manager-driven transition. A transition into
// the funding set adds the investment amount to the project; a transition out
// of it subtracts the amount, both inside the same transaction as the status
// write. ContractReference and Notes only overwrite stored values when supplied.
func (s *investmentService) UpdateInvestmentStatus(ctx context.Context, investmentID string, req dto.UpdateInvestmentStatusRequest, updatedBy string) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	newStatus, err := domain.ParseInvestmentStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	investment, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}

	if !investment.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: invalid status transition from %s to %s", apperrors.ErrValidation, investment.Status, newStatus)
	}

	fundingDelta := domain.FundingDelta(investment.Status, newStatus, investment.Amount)

	previousStatus := investment.Status
	investment.Status = newStatus
	if req.ContractReference != nil {
		investment.ContractReference = *req.ContractReference
	}
	if req.Notes != nil {
		investment.Notes = *req.Notes
	}
	now := time.Now().UTC()
	investment.LastUpdatedAt = now
	investment.LastUpdatedBy = updatedBy

	// The repository only applies the write while the row still holds
	// previousStatus; a concurrent transition surfaces as ErrInvalidState and
	// the funding delta never lands.
	if err := s.investmentRepo.UpdateInvestmentStatus(ctx, *investment, previousStatus, fundingDelta); err != nil {
		logger.Error("Failed to update investment status",
			slog.String("error", err.Error()),
			slog.String("investment_id", investmentID),
			slog.String("new_status", string(newStatus)))
		return nil, err
	}

	logger.Info("Investment status updated",
		slog.String("investment_id", investmentID),
		slog.String("from", string(previousStatus)),
		slog.String("to", string(newStatus)))

	s.refreshActiveInvestorFlag(ctx, investment.UserID)
	s.notifyStatusChange(ctx, investment)

	return investment, nil
}

// CancelInvestment lets the investing user cancel their own investment while it
// is still pending. Pending investments never contributed to the project's
// funded amount, so cancellation applies no funding reversal.
func (s *investmentService) CancelInvestment(ctx context.Context, investmentID string, userID string) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	investment, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}

	if investment.UserID != userID {
		return nil, fmt.Errorf("%w: only the investor may cancel this investment", apperrors.ErrForbidden)
	}
	if investment.Status != domain.InvestmentPending {
		return nil, fmt.Errorf("%w: only pending investments can be canceled", apperrors.ErrInvalidState)
	}

	fundingDelta := domain.FundingDelta(investment.Status, domain.InvestmentCanceled, investment.Amount)

	investment.Status = domain.InvestmentCanceled
	now := time.Now().UTC()
	investment.LastUpdatedAt = now
	investment.LastUpdatedBy = userID

	if err := s.investmentRepo.UpdateInvestmentStatus(ctx, *investment, domain.InvestmentPending, fundingDelta); err != nil {
		logger.Error("Failed to cancel investment", slog.String("error", err.Error()), slog.String("investment_id", investmentID))
		return nil, err
	}

	logger.Info("Investment canceled by investor", slog.String("investment_id", investmentID))

	s.refreshActiveInvestorFlag(ctx, investment.UserID)
	s.notifyStatusChange(ctx, investment)

	return investment, nil
}

// GetInvestmentByID retrieves a single investment.
func (s *investmentService) GetInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	return s.investmentRepo.FindInvestmentByID(ctx, investmentID)
}

// GetUserInvestments retrieves a page of the given user's investments.
func (s *investmentService) GetUserInvestments(ctx context.Context, userID string, params dto.ListInvestmentsParams) (*dto.InvestmentListResponse, error) {
	filter, err := buildInvestmentFilter(params)
	if err != nil {
		return nil, err
	}
	filter.UserID = userID
	return s.list(ctx, filter)
}

// GetProjectInvestments retrieves a page of a project's investments.
func (s *investmentService) GetProjectInvestments(ctx context.Context, projectID string, params dto.ListInvestmentsParams) (*dto.InvestmentListResponse, error) {
	filter, err := buildInvestmentFilter(params)
	if err != nil {
		return nil, err
	}
	filter.ProjectID = projectID
	return s.list(ctx, filter)
}

// ListInvestments retrieves a page of all investments, optionally narrowed by
// status and project.
func (s *investmentService) ListInvestments(ctx context.Context, params dto.ListInvestmentsParams) (*dto.InvestmentListResponse, error) {
	filter, err := buildInvestmentFilter(params)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, filter)
}

func (s *investmentService) list(ctx context.Context, filter portsrepo.InvestmentFilter) (*dto.InvestmentListResponse, error) {
	investments, total, err := s.investmentRepo.ListInvestments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve investments: %w", err)
	}
	return &dto.InvestmentListResponse{
		Data:       dto.ToInvestmentResponses(investments),
		Pagination: dto.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func buildInvestmentFilter(params dto.ListInvestmentsParams) (portsrepo.InvestmentFilter, error) {
	filter := portsrepo.InvestmentFilter{
		ProjectID: params.ProjectID,
		Page:      params.Page,
		Limit:     params.Limit,
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if params.Status != nil && *params.Status != "" {
		status, err := domain.ParseInvestmentStatus(*params.Status)
		if err != nil {
			return portsrepo.InvestmentFilter{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.Status = &status
	}
	return filter, nil
}

// notify dispatches a single notification, logging and swallowing any failure.
func (s *investmentService) notify(ctx context.Context, userID string, notifType domain.NotificationType, content, relatedID string) {
	if userID == "" {
		return
	}
	err := s.notifier.CreateNotification(ctx, portssvc.NewNotification{
		UserID:    userID,
		Type:      notifType,
		Content:   content,
		RelatedID: relatedID,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to dispatch notification",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("type", string(notifType)))
	}
}

// notifyStatusChange informs the investor and, when resolvable, the project
// owner of a status change. Lookup failures are logged and swallowed like any
// other notification failure.
func (s *investmentService) notifyStatusChange(ctx context.Context, investment *domain.Investment) {
	content := fmt.Sprintf("Investment %s is now %s", investment.InvestmentID, investment.Status)
	s.notify(ctx, investment.UserID, domain.NotificationStatusChanged, content, investment.InvestmentID)

	project, err := s.projectRepo.FindProjectByID(ctx, investment.ProjectID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to resolve project owner for notification",
			slog.String("error", err.Error()),
			slog.String("project_id", investment.ProjectID))
		return
	}
	if project.OwnerID != investment.UserID {
		s.notify(ctx, project.OwnerID, domain.NotificationStatusChanged, content, investment.InvestmentID)
	}
}

// refreshActiveInvestorFlag recomputes the user's active-investor flag,
// logging and swallowing failures.
func (s *investmentService) refreshActiveInvestorFlag(ctx context.Context, userID string) {
	if err := s.userRepo.RefreshActiveInvestorFlag(ctx, userID, time.Now().UTC()); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to refresh active investor flag",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
	}
}
