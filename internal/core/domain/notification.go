package domain

import "time"

// NotificationType classifies ledger events fanned out to users.
type NotificationType string

const (
	NotificationNewInvestment    NotificationType = "new_investment"     // to the project owner
	NotificationInvestmentMade   NotificationType = "investment_created" // to the investor
	NotificationStatusChanged    NotificationType = "investment_status_changed"
	NotificationProjectPublished NotificationType = "project_published"
)

// Notification is a best-effort message persisted for later delivery. Failures
// writing notifications are logged and swallowed; they never affect the ledger.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	UserID         string           `json:"userID"`
	Type           NotificationType `json:"type"`
	Content        string           `json:"content"`
	RelatedID      string           `json:"relatedID,omitempty"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}
