package models

import "time"

// Email notification statuses.
const (
	EmailPending = "pending"
	EmailSent    = "sent"
	EmailFailed  = "failed"
)

// EmailNotification records every outbound e-mail attempt. Sending is
// best-effort; the row is written regardless of the send outcome.
type EmailNotification struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	RecipientEmail   string     `gorm:"column:recipient_email;size:255" json:"recipient_email"`
	NotificationType string     `gorm:"column:notification_type;size:64" json:"notification_type"`
	Subject          string     `gorm:"size:255" json:"subject"`
	Content          string     `gorm:"type:text" json:"content"`
	Status           string     `gorm:"size:32;default:pending" json:"status"`
	SentAt           *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
