package repository

import (
	"context"

	"github.com/ds124wfegd/contactremind/internal/entity"
)

type ReminderRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, reminder *entity.Reminder) error
	GetByID(ctx context.Context, id string) (*entity.Reminder, error)
	GetByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// Bulk read for the scheduler: incomplete reminders joined to
	// contact name/email
	GetActiveWithContacts(ctx context.Context) ([]*entity.ReminderWithContact, error)
}

type SpecialDateRepository interface {
	// Bulk read for the scheduler: all rows joined to contact name/email
	GetAllWithContacts(ctx context.Context) ([]*entity.SpecialDateWithContact, error)

	GetByContactID(ctx context.Context, contactID string) ([]*entity.SpecialDate, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetRecentByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type UserRepository interface {
	// GetEmailByID returns the user's email or "" when none is stored.
	GetEmailByID(ctx context.Context, userID string) (string, error)

	// GetSettings returns the stored row, or the default settings
	// (email_notifications=true) when the user has none yet.
	GetSettings(ctx context.Context, userID string) (*entity.UserSettings, error)
	UpsertSettings(ctx context.Context, settings *entity.UserSettings) error
}
