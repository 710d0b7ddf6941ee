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

type projectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
	userRepo    portsrepo.UserReader
	notifier    portssvc.NotificationSvcFacade
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, userRepo portsrepo.UserReader, notifier portssvc.NotificationSvcFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, userRepo: userRepo, notifier: notifier}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// CreateProject persists a new draft project owned by a manager. Drafts may be
// incomplete; the full validation pass runs at publication time.
func (s *projectService) CreateProject(ctx context.Context, ownerID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if req.MinimumInvestment.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: minimum investment cannot be negative", apperrors.ErrValidation)
	}
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be greater than zero", apperrors.ErrValidation)
	}

	// The stored role is checked, not just the token claim.
	owner, err := s.userRepo.FindUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !owner.IsManager() {
		return nil, fmt.Errorf("%w: only managers may create projects", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	project := domain.Project{
		ProjectID:         uuid.NewString(),
		OwnerID:           ownerID,
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		PropertyType:      req.PropertyType,
		MinimumInvestment: req.MinimumInvestment,
		TargetAmount:      req.TargetAmount,
		CurrentAmount:     decimal.Zero,
		ExpectedROI:       req.ExpectedROI,
		Status:            domain.ProjectDraft,
		Draft:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		logger.Error("Failed to save project", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Project draft created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

// GetProjectByID retrieves a single project.
func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

// ListPublishedProjects retrieves a page of published projects.
func (s *projectService) ListPublishedProjects(ctx context.Context, params dto.ListProjectsParams) (*dto.ProjectListResponse, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	projects, total, err := s.projectRepo.ListPublishedProjects(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve published projects: %w", err)
	}

	return &dto.ProjectListResponse{
		Data:       dto.ToProjectResponses(projects),
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

// PublishProject validates a draft for publication and flips it to published.
// Only the owning manager may publish.
func (s *projectService) PublishProject(ctx context.Context, projectID string, requestingUserID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.OwnerID != requestingUserID {
		return nil, fmt.Errorf("%w: only the project owner may publish it", apperrors.ErrForbidden)
	}
	if !project.Draft {
		return nil, fmt.Errorf("%w: project %s is not a draft", apperrors.ErrInvalidState, projectID)
	}
	if err := project.ValidateForPublish(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	if err := s.projectRepo.PublishProject(ctx, projectID, requestingUserID, now); err != nil {
		logger.Error("Failed to publish project", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return nil, err
	}

	project.Status = domain.ProjectPublished
	project.Draft = false
	project.LastUpdatedAt = now
	project.LastUpdatedBy = requestingUserID

	logger.Info("Project published", slog.String("project_id", projectID))

	// Best-effort confirmation to the owner; publication already committed.
	err = s.notifier.CreateNotification(ctx, portssvc.NewNotification{
		UserID:    project.OwnerID,
		Type:      domain.NotificationProjectPublished,
		Content:   fmt.Sprintf("Project %s is now open for investment", project.Title),
		RelatedID: project.ProjectID,
	})
	if err != nil {
		logger.Warn("Failed to dispatch publication notification",
			slog.String("error", err.Error()),
			slog.String("project_id", projectID))
	}

	return project, nil
}
