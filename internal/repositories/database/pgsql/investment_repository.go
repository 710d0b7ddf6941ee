package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
	"github.com/loretops/finalproject-LPS-sub000/internal/models"
	"github.com/loretops/finalproject-LPS-sub000/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const investmentColumns = `investment_id, user_id, project_id, amount, status, notes,
	       contract_reference, invested_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxInvestmentRepository struct {
	BaseRepository
	projectRepo portsrepo.ProjectFundingStore
}

// NewPgxInvestmentRepository creates a new repository for investment data.
// The project funding store is used inside ledger transactions to lock and
// adjust the owning project's funded amount.
func NewPgxInvestmentRepository(pool *pgxpool.Pool, projectRepo portsrepo.ProjectFundingStore) portsrepo.InvestmentRepositoryWithTx {
	return &PgxInvestmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		projectRepo:    projectRepo,
	}
}

var _ portsrepo.InvestmentRepositoryWithTx = (*PgxInvestmentRepository)(nil)

// SaveInvestment inserts a new pending investment inside a transaction that
// locks the owning project row. The project's availability and minimum ticket
// are re-checked under the lock, so a concurrent mutation that closes the
// funding window between the service's validation and this insert is caught.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	project, err := r.projectRepo.FindProjectByIDForUpdate(ctx, tx, investment.ProjectID)
	if err != nil {
		return err
	}

	if !project.IsAvailableForInvestment() {
		return fmt.Errorf("%w: project %s is not available for investment", apperrors.ErrValidation, project.ProjectID)
	}
	if !project.MeetsMinimumInvestment(investment.Amount) {
		return fmt.Errorf("%w: investment must be at least %s", apperrors.ErrValidation, project.MinimumInvestment.String())
	}

	m := mapping.ToModelInvestment(investment)
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.ProjectID,
		m.Amount,
		m.Status,
		m.Notes,
		m.ContractReference,
		m.InvestedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert investment "+m.InvestmentID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateInvestmentStatus writes the investment's new status and mutable fields,
// applying fundingDelta to the owning project inside the same transaction. A
// non-zero delta locks the project row first so concurrent funding mutations
// serialize instead of losing updates. The status write is guarded on the
// investment still holding previousStatus; when a concurrent transition got
// there first the guard matches zero rows, the transaction rolls back (undoing
// the delta), and the caller gets ErrInvalidState.
func (r *PgxInvestmentRepository) UpdateInvestmentStatus(ctx context.Context, investment domain.Investment, previousStatus domain.InvestmentStatus, fundingDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if !fundingDelta.IsZero() {
		if _, err := r.projectRepo.FindProjectByIDForUpdate(ctx, tx, investment.ProjectID); err != nil {
			return err
		}
		if err := r.projectRepo.ApplyFundingDeltaInTx(ctx, tx, investment.ProjectID, fundingDelta, investment.LastUpdatedBy, investment.LastUpdatedAt); err != nil {
			return err
		}
	}

	m := mapping.ToModelInvestment(investment)
	query := `
		UPDATE investments
		SET status = $2,
		    notes = $3,
		    contract_reference = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE investment_id = $1 AND status = $7;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.InvestmentID,
		m.Status,
		m.Notes,
		m.ContractReference,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		string(previousStatus),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update investment "+m.InvestmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the investment is gone or another transition won the race.
		var currentStatus string
		scanErr := tx.QueryRow(ctx, `SELECT status FROM investments WHERE investment_id = $1;`, m.InvestmentID).Scan(&currentStatus)
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("investment " + m.InvestmentID + " not found for update")
		}
		if scanErr != nil {
			return apperrors.NewAppError(500, "failed to re-read investment "+m.InvestmentID, scanErr)
		}
		return fmt.Errorf("%w: investment %s is %s, expected %s", apperrors.ErrInvalidState, m.InvestmentID, currentStatus, previousStatus)
	}

	return r.Commit(ctx, tx)
}

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.ProjectID,
		&m.Amount,
		&m.Status,
		&m.Notes,
		&m.ContractReference,
		&m.InvestedAt,
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

// FindInvestmentByID retrieves an investment by its ID.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_id = $1;`

	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find investment by ID "+investmentID, err)
	}

	inv := mapping.ToDomainInvestment(*m)
	return &inv, nil
}

// ListInvestments retrieves a page of investments matching the filter, newest
// first, together with the total match count. Listings never mutate ledger state.
func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context, filter portsrepo.InvestmentFilter) ([]domain.Investment, int64, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		whereClause += " AND user_id = $" + strconv.Itoa(len(args))
	}
	if filter.ProjectID != "" {
		args = append(args, filter.ProjectID)
		whereClause += " AND project_id = $" + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		whereClause += " AND status = $" + strconv.Itoa(len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM investments " + whereClause + ";"
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count investments", err)
	}

	args = append(args, limit)
	limitPlaceholder := strconv.Itoa(len(args))
	args = append(args, offset)
	offsetPlaceholder := strconv.Itoa(len(args))

	query := "SELECT " + investmentColumns + " FROM investments " + whereClause +
		" ORDER BY invested_at DESC, investment_id DESC LIMIT $" + limitPlaceholder + " OFFSET $" + offsetPlaceholder + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query investments", err)
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		m, scanErr := scanInvestment(rows)
		if scanErr != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan investment row", scanErr)
		}
		investments = append(investments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating investment rows", err)
	}

	return mapping.ToDomainInvestmentSlice(investments), total, nil
}
