package repositories

import (
	"context"

	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
)

// NotificationWriter defines write operations for notification data.
type NotificationWriter interface {
	// SaveNotification inserts a new notification row.
	SaveNotification(ctx context.Context, notification domain.Notification) error
}
