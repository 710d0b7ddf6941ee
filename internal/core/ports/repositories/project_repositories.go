package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its unique identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListPublishedProjects retrieves a page of published projects and the total count.
	ListPublishedProjects(ctx context.Context, page, limit int) ([]domain.Project, int64, error)
}

// ProjectWriter defines write operations for project data. The project's
// current funded amount is deliberately absent here: it is only ever mutated by
// the investment repository inside the funding transaction.
type ProjectWriter interface {
	// SaveProject inserts a new draft project.
	SaveProject(ctx context.Context, project domain.Project) error

	// PublishProject flips a validated draft to published.
	PublishProject(ctx context.Context, projectID string, publishedBy string, at time.Time) error
}

// ProjectFundingStore exposes the in-transaction primitives the investment
// repository uses to keep a project's funded amount consistent. Both methods
// must be called inside the transaction that mutates the ledger.
type ProjectFundingStore interface {
	// FindProjectByIDForUpdate retrieves a project and locks its row for update.
	FindProjectByIDForUpdate(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error)

	// ApplyFundingDeltaInTx atomically adds delta to the project's current
	// amount. The resulting amount is never allowed to go negative.
	ApplyFundingDeltaInTx(ctx context.Context, tx pgx.Tx, projectID string, delta decimal.Decimal, userID string, at time.Time) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	ProjectFundingStore
}
