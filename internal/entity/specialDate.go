package entity

import (
	"time"
)

type SpecialDateType string

const (
	SpecialDateBirthday    SpecialDateType = "birthday"
	SpecialDateAnniversary SpecialDateType = "anniversary"
	SpecialDateOther       SpecialDateType = "other"
)

// SpecialDate повторяется каждый год: значим только месяц и день,
// год в поле Date игнорируется.
type SpecialDate struct {
	ID          string          `json:"id" db:"id"`
	UserID      string          `json:"user_id" db:"user_id"`
	ContactID   string          `json:"contact_id" db:"contact_id"`
	Date        string          `json:"date" db:"date"`
	Type        SpecialDateType `json:"type" db:"type"`
	Description *string         `json:"description" db:"description"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type SpecialDateWithContact struct {
	SpecialDate
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
}

// Occasion returns the human label used in notification titles.
func (s *SpecialDate) Occasion() string {
	switch s.Type {
	case SpecialDateBirthday:
		return "birthday"
	case SpecialDateAnniversary:
		return "anniversary"
	default:
		if s.Description != nil && *s.Description != "" {
			return *s.Description
		}
		return "special date"
	}
}
