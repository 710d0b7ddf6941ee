package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
	portssvc "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/services"
)

type notificationService struct {
	notificationRepo portsrepo.NotificationWriter
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationWriter) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// CreateNotification persists a single unread notification. Callers treat
// failures as best-effort and only log them.
func (s *notificationService) CreateNotification(ctx context.Context, n portssvc.NewNotification) error {
	if n.UserID == "" {
		return fmt.Errorf("%w: notification recipient is required", apperrors.ErrValidation)
	}
	if n.Type == "" {
		return fmt.Errorf("%w: notification type is required", apperrors.ErrValidation)
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         n.UserID,
		Type:           n.Type,
		Content:        n.Content,
		RelatedID:      n.RelatedID,
		Read:           false,
		CreatedAt:      time.Now().UTC(),
	}

	return s.notificationRepo.SaveNotification(ctx, notification)
}
