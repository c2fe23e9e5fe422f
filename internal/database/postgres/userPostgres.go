package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ds124wfegd/contactremind/internal/entity"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetEmailByID(ctx context.Context, userID string) (string, error) {
	query := `SELECT COALESCE(email, '') FROM users WHERE id = $1`

	var email string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&email)
	if err == sql.ErrNoRows {
		return "", entity.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user email: %w", err)
	}

	return email, nil
}

func (r *userRepository) GetSettings(ctx context.Context, userID string) (*entity.UserSettings, error) {
	query := `
		SELECT user_id, email_notifications, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var settings entity.UserSettings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.EmailNotifications,
		&settings.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		// Пользователь ещё не сохранял настройки: приложение
		// создаёт их с email_notifications = TRUE.
		return &entity.UserSettings{
			UserID:             userID,
			EmailNotifications: true,
			UpdatedAt:          time.Now(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}

	return &settings, nil
}

func (r *userRepository) UpsertSettings(ctx context.Context, settings *entity.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, email_notifications, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET email_notifications = EXCLUDED.email_notifications, updated_at = EXCLUDED.updated_at
	`

	settings.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		settings.UserID,
		settings.EmailNotifications,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}

	return nil
}
