package services

import (
	"context"

	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/loretops/finalproject-LPS-sub000/internal/dto"
)

// ProjectSvcFacade defines the project-management operations around the ledger.
type ProjectSvcFacade interface {
	// CreateProject persists a new draft project owned by the given manager.
	CreateProject(ctx context.Context, ownerID string, req dto.CreateProjectRequest) (*domain.Project, error)

	// GetProjectByID retrieves a specific project by its ID.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListPublishedProjects retrieves a page of published projects.
	ListPublishedProjects(ctx context.Context, params dto.ListProjectsParams) (*dto.ProjectListResponse, error)

	// PublishProject runs the full validation pass and flips a draft to published.
	PublishProject(ctx context.Context, projectID string, requestingUserID string) (*domain.Project, error)
}
