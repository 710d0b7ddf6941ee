package services

import (
	"context"

	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
)

// NewNotification is the input for dispatching a single notification.
type NewNotification struct {
	UserID    string
	Type      domain.NotificationType
	Content   string
	RelatedID string
}

// NotificationSvcFacade dispatches user notifications. Callers treat every
// method as best-effort: errors are logged by the caller and never propagate
// into the operation that triggered the notification.
type NotificationSvcFacade interface {
	CreateNotification(ctx context.Context, n NewNotification) error
}
