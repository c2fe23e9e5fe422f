package entity

import "errors"

var (
	// Reminder errors
	ErrReminderNotFound  = errors.New("reminder not found")
	ErrFrequencyRequired = errors.New("frequency is required for recurring reminders")
	ErrInvalidFrequency  = errors.New("invalid reminder frequency")
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// User errors
	ErrUserNotFound     = errors.New("user not found")
	ErrUserEmailMissing = errors.New("user has no email address")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
