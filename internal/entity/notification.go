package entity

import (
	"time"
)

const (
	NotificationTypeReminderDue        = "reminder_due"
	NotificationTypeSpecialDateAdvance = "special_date_advance"
)

// Notification is the in-app channel row; the notifications UI reads
// and mutates it, the dispatcher only inserts.
type Notification struct {
	ID         string                 `json:"id" db:"id"`
	UserID     string                 `json:"user_id" db:"user_id"`
	ReminderID *string                `json:"reminder_id" db:"reminder_id"`
	Type       string                 `json:"type" db:"type"`
	Title      string                 `json:"title" db:"title"`
	Message    string                 `json:"message" db:"message"`
	Data       map[string]interface{} `json:"data" db:"data"`
	IsRead     bool                   `json:"is_read" db:"is_read"`
	CreatedAt  time.Time              `json:"created_at" db:"created_at"`
}
