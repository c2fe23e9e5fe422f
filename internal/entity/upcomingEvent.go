package entity

import (
	"time"
)

// EventKind tags the two variants of UpcomingEvent. Every switch on it
// must handle both kinds explicitly.
type EventKind string

const (
	EventKindReminder    EventKind = "reminder"
	EventKindSpecialDate EventKind = "special_date"
)

// EligibilitySource names where the email eligibility decision comes from.
type EligibilitySource string

const (
	// EligibilityReminderFlag — явный флаг send_email_notification
	// самого напоминания, без оглядки на глобальные настройки.
	EligibilityReminderFlag EligibilitySource = "reminder_flag"
	// EligibilityUserSettings — глобальный email_notifications пользователя.
	EligibilityUserSettings EligibilitySource = "user_settings"
)

// UpcomingEvent is a transient due-event produced by one scheduler sweep.
// It is never persisted. EventTime lies within [now, now+24h) at the
// moment the event is produced.
type UpcomingEvent struct {
	ID          string
	Kind        EventKind
	UserID      string
	ContactName string
	Title       string
	Message     string
	EventTime   time.Time
	Path        string
	Source      EligibilitySource

	// Reminder variant only.
	ReminderID   string
	SendEmail    bool
	Purpose      string
	ReminderDate string
	ReminderTime string

	// SpecialDate variant only.
	SpecialDateID string
	Occasion      string
	OffsetDays    int
	OffsetLabel   string
	TargetDate    string
}
