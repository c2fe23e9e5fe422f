package entity

import (
	"time"
)

type EventStatus string

const (
	// Оба канала доставлены (письмо отправлялось).
	StatusSuccess EventStatus = "success"
	// Ровно один из двух каналов доставлен.
	StatusPartialSuccess EventStatus = "partial_success"
	// Письмо не запрашивалось, in-app уведомление доставлено.
	StatusSuccessNoEmail EventStatus = "success_no_email"
	// Ни один канал не доставлен.
	StatusError EventStatus = "error"
)

// EventResult is one row of the sweep report, one per processed event.
type EventResult struct {
	ID          string      `json:"id"`
	Type        EventKind   `json:"type"`
	Status      EventStatus `json:"status"`
	Message     string      `json:"message"`
	Contact     string      `json:"contact"`
	ProcessedAt time.Time   `json:"processed_at"`
}

// UpcomingCheckReport is the batch's sole return value.
type UpcomingCheckReport struct {
	Message string        `json:"message"`
	Results []EventResult `json:"results"`
}

// Counts tallies statuses for worker logging.
func (r *UpcomingCheckReport) Counts() (success, partial, failed int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusSuccess, StatusSuccessNoEmail:
			success++
		case StatusPartialSuccess:
			partial++
		case StatusError:
			failed++
		}
	}
	return success, partial, failed
}
