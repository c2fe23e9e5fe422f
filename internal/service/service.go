package service

import (
	"context"

	"github.com/ds124wfegd/contactremind/internal/entity"
	"github.com/ds124wfegd/contactremind/pkg/mailer"
)

// SchedulerService runs one sweep of the upcoming-event notification job.
type SchedulerService interface {
	// CheckUpcomingEvents expands due reminders and special-date advance
	// notices inside the next 24 hours and dispatches notifications for
	// each of them. It returns an error only when one of the two bulk
	// reads fails; any per-event failure is recorded in the report.
	CheckUpcomingEvents(ctx context.Context) (*entity.UpcomingCheckReport, error)
}

type ReminderService interface {
	// Основные операции
	CreateReminder(ctx context.Context, req *CreateReminderRequest) (*entity.Reminder, error)
	GetUserReminders(ctx context.Context, userID string) ([]*entity.Reminder, error)
	CompleteReminder(ctx context.Context, id string) error
	DeleteReminder(ctx context.Context, id string) error
}

type NotificationService interface {
	GetRecent(ctx context.Context, userID string) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type SettingsService interface {
	GetSettings(ctx context.Context, userID string) (*entity.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, emailNotifications bool) (*entity.UserSettings, error)
}

// Collaborator interfaces consumed by the scheduler. The postgres
// repositories satisfy them; tests substitute fakes.

type ReminderStore interface {
	GetActiveWithContacts(ctx context.Context) ([]*entity.ReminderWithContact, error)
}

type SpecialDateStore interface {
	GetAllWithContacts(ctx context.Context) ([]*entity.SpecialDateWithContact, error)
}

type NotificationStore interface {
	Create(ctx context.Context, notification *entity.Notification) error
}

type UserEmailLookup interface {
	GetEmailByID(ctx context.Context, userID string) (string, error)
}

// EmailSender is the transactional mail collaborator consumed by the
// dispatcher; pkg/mailer implements it against the Resend API.
type EmailSender interface {
	SendReminderEmail(ctx context.Context, email *mailer.ReminderEmail) error
	SendSpecialDateEmail(ctx context.Context, email *mailer.SpecialDateEmail) error
}

// SettingsResolver answers the email-eligibility fallback for
// special-date advance events.
type SettingsResolver interface {
	EmailEnabled(ctx context.Context, userID string) (bool, error)
	Invalidate(ctx context.Context, userID string)
}
