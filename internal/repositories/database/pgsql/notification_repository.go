package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// NewPgxNotificationRepository creates a new repository for notification data.
func NewPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationWriter {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationWriter = (*PgxNotificationRepository)(nil)

// SaveNotification inserts a notification row. Callers treat failures as
// non-fatal; this method just reports them.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, type, content, related_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		n.NotificationID,
		n.UserID,
		string(n.Type),
		n.Content,
		n.RelatedID,
		n.Read,
		n.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save notification "+n.NotificationID, err)
	}
	return nil
}
