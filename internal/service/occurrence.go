package service

import (
	"fmt"
	"time"

	"github.com/ds124wfegd/contactremind/internal/entity"

	"github.com/sirupsen/logrus"
)

const (
	// lookaheadWindow is the [now, now+24h) interval scanned per sweep.
	lookaheadWindow = 24 * time.Hour

	// maxAdvanceSteps caps the recurrence advance loop so a misconfigured
	// frequency can never stall a sweep.
	maxAdvanceSteps = 366

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// parseReminderAnchor parses the reminder's stored date and optional
// time into an instant in loc. Без времени напоминание срабатывает в
// полночь своей даты.
func parseReminderAnchor(dateStr string, timeStr *string, loc *time.Location) (time.Time, error) {
	anchor, err := time.ParseInLocation(dateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse reminder date %q: %w", dateStr, err)
	}

	if timeStr != nil && *timeStr != "" {
		t, err := time.Parse(timeLayout, *timeStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse reminder time %q: %w", *timeStr, err)
		}
		anchor = anchor.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}

	return anchor, nil
}

// nextOccurrence returns the first occurrence of the reminder falling
// inside [now, now+24h), advancing recurring schedules from their anchor.
// At most one occurrence is ever produced per reminder per sweep.
func nextOccurrence(reminder *entity.ReminderWithContact, now time.Time) (time.Time, bool, error) {
	anchor, err := parseReminderAnchor(reminder.Date, reminder.Time, now.Location())
	if err != nil {
		return time.Time{}, false, err
	}

	occurrence := anchor
	if reminder.IsRecurring {
		frequency := ""
		if reminder.Frequency != nil {
			frequency = *reminder.Frequency
		}
		occurrence = advancePastOccurrence(occurrence, entity.ReminderFrequency(frequency), now, reminder.ID)
	}

	// A reminder without a time is due for the whole of its calendar
	// day, not just at its midnight anchor.
	dateOnly := reminder.Time == nil || *reminder.Time == ""
	if dateOnly && occurrence.Before(now) && sameDay(occurrence, now) {
		occurrence = now
	}

	if occurrence.Before(now) || !occurrence.Before(now.Add(lookaheadWindow)) {
		return time.Time{}, false, nil
	}

	return occurrence, true, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// advancePastOccurrence steps the occurrence forward one interval at a
// time until it is no longer in the past. An unrecognized frequency
// stops the loop immediately, which makes the reminder behave as
// non-recurring for this sweep.
func advancePastOccurrence(occurrence time.Time, frequency entity.ReminderFrequency, now time.Time, reminderID string) time.Time {
	for steps := 0; occurrence.Before(now) && steps < maxAdvanceSteps; steps++ {
		switch frequency {
		case entity.FrequencyDaily:
			occurrence = occurrence.AddDate(0, 0, 1)
		case entity.FrequencyWeekly:
			occurrence = occurrence.AddDate(0, 0, 7)
		case entity.FrequencyMonthly:
			occurrence = occurrence.AddDate(0, 1, 0)
		case entity.FrequencyYearly:
			occurrence = occurrence.AddDate(1, 0, 0)
		default:
			logrus.Warnf("Unknown frequency %q on reminder %s, treating as non-recurring", frequency, reminderID)
			return occurrence
		}
	}
	return occurrence
}
