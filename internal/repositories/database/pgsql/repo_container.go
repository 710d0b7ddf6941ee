package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the pgsql-backed repositories. The investment
// repository takes the project repository so funding deltas run inside the
// same transaction as the status writes.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	projectRepo := NewPgxProjectRepository(dbPool)
	investmentRepo := NewPgxInvestmentRepository(dbPool, projectRepo)
	userRepo := NewPgxUserRepository(dbPool)
	notificationRepo := NewPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProjectRepo:      projectRepo,
		InvestmentRepo:   investmentRepo,
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
	}
}
