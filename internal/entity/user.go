package entity

import (
	"time"
)

type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserSettings — одна строка на пользователя; EmailNotifications
// управляет письмами о приближающихся особых датах.
type UserSettings struct {
	UserID             string    `json:"user_id" db:"user_id"`
	EmailNotifications bool      `json:"email_notifications" db:"email_notifications"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type Contact struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
