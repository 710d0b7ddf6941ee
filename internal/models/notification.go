package models

import "time"

// Notification represents a row of the notifications table.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Type           string    `db:"type"`
	Content        string    `db:"content"`
	RelatedID      string    `db:"related_id"`
	Read           bool      `db:"read"`
	CreatedAt      time.Time `db:"created_at"`
}
