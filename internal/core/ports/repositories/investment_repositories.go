package repositories

import (
	"context"

	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestmentFilter narrows investment listings. Zero values mean "no filter".
// Page is 1-based; Limit caps the page size.
type InvestmentFilter struct {
	UserID    string
	ProjectID string
	Status    *domain.InvestmentStatus
	Page      int
	Limit     int
}

// InvestmentReader defines read operations for investment data.
type InvestmentReader interface {
	// FindInvestmentByID retrieves a specific investment by its unique identifier.
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)

	// ListInvestments retrieves a page of investments matching the filter along
	// with the total number of matches.
	ListInvestments(ctx context.Context, filter InvestmentFilter) ([]domain.Investment, int64, error)
}

// InvestmentWriter defines write operations for investment data. Both methods
// run as a single database transaction that locks the owning project row, so
// concurrent funding mutations against the same project serialize.
type InvestmentWriter interface {
	// SaveInvestment inserts a new pending investment. The owning project is
	// re-validated (available for investment, amount meets the minimum ticket)
	// under a row lock before the insert.
	SaveInvestment(ctx context.Context, investment domain.Investment) error

	// UpdateInvestmentStatus persists the investment's new status together with
	// any updated notes/contract reference, applying fundingDelta to the owning
	// project's current amount in the same transaction. The status write is
	// conditional on the investment still being in previousStatus: a concurrent
	// transition that won the race makes this call fail with ErrInvalidState and
	// the whole transaction (funding delta included) rolls back.
	UpdateInvestmentStatus(ctx context.Context, investment domain.Investment, previousStatus domain.InvestmentStatus, fundingDelta decimal.Decimal) error
}

// InvestmentRepositoryFacade combines all investment repository interfaces.
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}

// InvestmentRepositoryWithTx extends the facade with transaction capabilities.
type InvestmentRepositoryWithTx interface {
	InvestmentRepositoryFacade
	TransactionManager
}
