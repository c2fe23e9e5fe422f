package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ds124wfegd/contactremind/internal/entity"
)

type reminderRepository struct {
	db *sql.DB
}

func NewReminderRepository(db *sql.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, user_id, contact_id, date, time, purpose, is_recurring, frequency, send_email_notification, is_completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.ContactID,
		reminder.Date,
		reminder.Time,
		reminder.Purpose,
		reminder.IsRecurring,
		reminder.Frequency,
		reminder.SendEmailNotification,
		reminder.IsCompleted,
		reminder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

func (r *reminderRepository) GetByID(ctx context.Context, id string) (*entity.Reminder, error) {
	query := `
		SELECT id, user_id, contact_id, date, time, purpose, is_recurring, frequency, send_email_notification, is_completed, created_at, completed_at
		FROM reminders
		WHERE id = $1
	`

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrReminderNotFound
	}
	if err != nil {
		return nil, err
	}

	return reminder, nil
}

func (r *reminderRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	query := `
		SELECT id, user_id, contact_id, date, time, purpose, is_recurring, frequency, send_email_notification, is_completed, created_at, completed_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY date ASC, time ASC NULLS FIRST
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}

	return reminders, nil
}

func (r *reminderRepository) MarkCompleted(ctx context.Context, id string) error {
	query := `UPDATE reminders SET is_completed = TRUE, completed_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder completed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reminders WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepository) GetActiveWithContacts(ctx context.Context) ([]*entity.ReminderWithContact, error) {
	query := `
		SELECT r.id, r.user_id, r.contact_id, r.date, r.time, r.purpose, r.is_recurring, r.frequency,
		       r.send_email_notification, r.is_completed, r.created_at, r.completed_at,
		       COALESCE(c.name, ''), COALESCE(c.email, '')
		FROM reminders r
		LEFT JOIN contacts c ON c.id = r.contact_id
		WHERE r.is_completed = FALSE
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.ReminderWithContact
	for rows.Next() {
		var rm entity.ReminderWithContact
		var isRecurring sql.NullBool
		err := rows.Scan(
			&rm.ID,
			&rm.UserID,
			&rm.ContactID,
			&rm.Date,
			&rm.Time,
			&rm.Purpose,
			&isRecurring,
			&rm.Frequency,
			&rm.SendEmailNotification,
			&rm.IsCompleted,
			&rm.CreatedAt,
			&rm.CompletedAt,
			&rm.ContactName,
			&rm.ContactEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		// NULL is_recurring is treated as false
		rm.IsRecurring = isRecurring.Valid && isRecurring.Bool
		reminders = append(reminders, &rm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}

	return reminders, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (*entity.Reminder, error) {
	var reminder entity.Reminder
	var isRecurring sql.NullBool
	err := row.Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.ContactID,
		&reminder.Date,
		&reminder.Time,
		&reminder.Purpose,
		&isRecurring,
		&reminder.Frequency,
		&reminder.SendEmailNotification,
		&reminder.IsCompleted,
		&reminder.CreatedAt,
		&reminder.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	reminder.IsRecurring = isRecurring.Valid && isRecurring.Bool
	return &reminder, nil
}
