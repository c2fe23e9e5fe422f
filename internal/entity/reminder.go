package entity

import (
	"time"
)

type ReminderFrequency string

const (
	FrequencyDaily   ReminderFrequency = "daily"
	FrequencyWeekly  ReminderFrequency = "weekly"
	FrequencyMonthly ReminderFrequency = "monthly"
	FrequencyYearly  ReminderFrequency = "yearly"
)

// Reminder хранит дату и время в текстовом виде ("2006-01-02", "15:04"),
// как их присылает форма напоминаний; парсинг происходит в планировщике.
type Reminder struct {
	ID                    string     `json:"id" db:"id"`
	UserID                string     `json:"user_id" db:"user_id"`
	ContactID             *string    `json:"contact_id" db:"contact_id"`
	Date                  string     `json:"date" db:"date"`
	Time                  *string    `json:"time" db:"time"`
	Purpose               string     `json:"purpose" db:"purpose"`
	IsRecurring           bool       `json:"is_recurring" db:"is_recurring"`
	Frequency             *string    `json:"frequency" db:"frequency"`
	SendEmailNotification bool       `json:"send_email_notification" db:"send_email_notification"`
	IsCompleted           bool       `json:"is_completed" db:"is_completed"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	CompletedAt           *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// ReminderWithContact is the bulk-read row the scheduler consumes:
// a reminder joined to its contact's display name and email.
type ReminderWithContact struct {
	Reminder
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
}
