package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ds124wfegd/contactremind/internal/entity"
)

type specialDateRepository struct {
	db *sql.DB
}

func NewSpecialDateRepository(db *sql.DB) SpecialDateRepository {
	return &specialDateRepository{db: db}
}

func (r *specialDateRepository) GetAllWithContacts(ctx context.Context) ([]*entity.SpecialDateWithContact, error) {
	query := `
		SELECT s.id, s.user_id, s.contact_id, s.date, s.type, s.description, s.created_at,
		       COALESCE(c.name, ''), COALESCE(c.email, '')
		FROM special_dates s
		LEFT JOIN contacts c ON c.id = s.contact_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query special dates: %w", err)
	}
	defer rows.Close()

	var dates []*entity.SpecialDateWithContact
	for rows.Next() {
		var sd entity.SpecialDateWithContact
		err := rows.Scan(
			&sd.ID,
			&sd.UserID,
			&sd.ContactID,
			&sd.Date,
			&sd.Type,
			&sd.Description,
			&sd.CreatedAt,
			&sd.ContactName,
			&sd.ContactEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan special date: %w", err)
		}
		dates = append(dates, &sd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating special dates: %w", err)
	}

	return dates, nil
}

func (r *specialDateRepository) GetByContactID(ctx context.Context, contactID string) ([]*entity.SpecialDate, error) {
	query := `
		SELECT id, user_id, contact_id, date, type, description, created_at
		FROM special_dates
		WHERE contact_id = $1
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to query special dates by contact: %w", err)
	}
	defer rows.Close()

	var dates []*entity.SpecialDate
	for rows.Next() {
		var sd entity.SpecialDate
		err := rows.Scan(
			&sd.ID,
			&sd.UserID,
			&sd.ContactID,
			&sd.Date,
			&sd.Type,
			&sd.Description,
			&sd.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan special date: %w", err)
		}
		dates = append(dates, &sd)
	}

	return dates, nil
}
