package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
	"github.com/loretops/finalproject-LPS-sub000/internal/models"
	"github.com/loretops/finalproject-LPS-sub000/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const projectColumns = `project_id, owner_id, title, description, location, property_type,
	       minimum_investment, target_amount, current_amount, expected_roi, status, draft,
	       created_at, created_by, last_updated_at, last_updated_by`

type PgxProjectRepository struct {
	BaseRepository
}

// NewPgxProjectRepository creates a new repository for project data.
func NewPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

// SaveProject inserts a new draft project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.OwnerID,
		m.Title,
		m.Description,
		m.Location,
		m.PropertyType,
		m.MinimumInvestment,
		m.TargetAmount,
		m.CurrentAmount,
		m.ExpectedROI,
		m.Status,
		m.Draft,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: project with ID %s already exists", apperrors.ErrDuplicate, m.ProjectID)
		}
		return apperrors.NewAppError(500, "failed to save project "+m.ProjectID, err)
	}
	return nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.OwnerID,
		&m.Title,
		&m.Description,
		&m.Location,
		&m.PropertyType,
		&m.MinimumInvestment,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.ExpectedROI,
		&m.Status,
		&m.Draft,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`

	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find project by ID "+projectID, err)
	}

	p := mapping.ToDomainProject(*m)
	return &p, nil
}

// ListPublishedProjects retrieves a page of published projects ordered by
// creation time, newest first, together with the total count.
func (r *PgxProjectRepository) ListPublishedProjects(ctx context.Context, page, limit int) ([]domain.Project, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	var total int64
	countQuery := `SELECT COUNT(*) FROM projects WHERE draft = FALSE AND status != 'draft';`
	if err := r.Pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count published projects", err)
	}

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE draft = FALSE AND status != 'draft'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query published projects", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		m, scanErr := scanProject(rows)
		if scanErr != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan project row", scanErr)
		}
		projects = append(projects, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating project rows", err)
	}

	return mapping.ToDomainProjectSlice(projects), total, nil
}

// PublishProject flips a draft project to published. The caller is responsible
// for running the publication validation pass first.
func (r *PgxProjectRepository) PublishProject(ctx context.Context, projectID string, publishedBy string, at time.Time) error {
	query := `
		UPDATE projects
		SET status = 'published', draft = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE project_id = $1 AND draft = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, projectID, at, publishedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to publish project "+projectID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the project doesn't exist or it already left draft.
		if _, findErr := r.FindProjectByID(ctx, projectID); errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: project %s is not a draft", apperrors.ErrInvalidState, projectID)
	}
	return nil
}

// FindProjectByIDForUpdate retrieves a project and locks its row for the
// duration of the enclosing transaction.
func (r *PgxProjectRepository) FindProjectByIDForUpdate(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1 FOR UPDATE;`

	m, err := scanProject(tx.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock project "+projectID, err)
	}

	p := mapping.ToDomainProject(*m)
	return &p, nil
}

// ApplyFundingDeltaInTx atomically adds delta to the project's current amount.
// The guard in the WHERE clause keeps the amount from ever going negative; a
// project that crosses its target is marked funded, and one that drops back
// below target reverts to published.
func (r *PgxProjectRepository) ApplyFundingDeltaInTx(ctx context.Context, tx pgx.Tx, projectID string, delta decimal.Decimal, userID string, at time.Time) error {
	if delta.IsZero() {
		return nil
	}

	query := `
		UPDATE projects
		SET current_amount = current_amount + $2,
		    status = CASE
		        WHEN current_amount + $2 >= target_amount AND status = 'published' THEN 'funded'
		        WHEN current_amount + $2 < target_amount AND status = 'funded' THEN 'published'
		        ELSE status
		    END,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE project_id = $1 AND current_amount + $2 >= 0;
	`
	cmdTag, err := tx.Exec(ctx, query, projectID, delta, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to apply funding delta to project "+projectID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// The row is locked by the caller, so a zero row count means the
		// decrement would have driven the funded amount negative.
		return apperrors.NewAppError(500, "funding delta would make current amount negative for project "+projectID, nil)
	}
	return nil
}
