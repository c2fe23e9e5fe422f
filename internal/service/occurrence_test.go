package service

import (
	"testing"
	"time"

	"github.com/ds124wfegd/contactremind/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testReminder(date string, timeStr *string, recurring bool, frequency *string) *entity.ReminderWithContact {
	return &entity.ReminderWithContact{
		Reminder: entity.Reminder{
			ID:          "reminder-1",
			UserID:      "user-1",
			Date:        date,
			Time:        timeStr,
			Purpose:     "catch up",
			IsRecurring: recurring,
			Frequency:   frequency,
		},
		ContactName:  "Alice",
		ContactEmail: "alice@example.com",
	}
}

// TestNextOccurrenceNonRecurring проверяет окно [now, now+24h) для
// одноразовых напоминаний
func TestNextOccurrenceNonRecurring(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		time    *string
		wantDue bool
	}{
		{
			name:    "today without time is due all day",
			date:    "2026-03-10",
			time:    nil,
			wantDue: true,
		},
		{
			name:    "later today is due",
			date:    "2026-03-10",
			time:    strPtr("18:00"),
			wantDue: true,
		},
		{
			name:    "earlier today is not due",
			date:    "2026-03-10",
			time:    strPtr("09:00"),
			wantDue: false,
		},
		{
			name:    "tomorrow morning is due",
			date:    "2026-03-11",
			time:    strPtr("09:00"),
			wantDue: true,
		},
		{
			name:    "exactly 24h away is outside the window",
			date:    "2026-03-11",
			time:    strPtr("12:00"),
			wantDue: false,
		},
		{
			name:    "yesterday is not due",
			date:    "2026-03-09",
			time:    strPtr("12:00"),
			wantDue: false,
		},
		{
			name:    "next week is not due",
			date:    "2026-03-17",
			time:    nil,
			wantDue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder := testReminder(tt.date, tt.time, false, nil)

			occurrence, due, err := nextOccurrence(reminder, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, due)
			if due {
				assert.False(t, occurrence.Before(now))
				assert.True(t, occurrence.Before(now.Add(24*time.Hour)))
			}
		})
	}
}

// TestNextOccurrenceRecurring проверяет продвижение повторяющихся
// напоминаний до текущего окна
func TestNextOccurrenceRecurring(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      string
		frequency string
		wantDue   bool
		wantDate  string
	}{
		{
			name:      "daily anchored in the past lands today",
			date:      "2026-01-01",
			frequency: "daily",
			wantDue:   true,
			wantDate:  "2026-03-10",
		},
		{
			name:      "weekly anchored 10 weeks ago lands inside the window",
			date:      "2026-01-06",
			frequency: "weekly",
			wantDue:   true,
			wantDate:  "2026-03-10",
		},
		{
			name:      "monthly on the run day",
			date:      "2025-07-10",
			frequency: "monthly",
			wantDue:   true,
			wantDate:  "2026-03-10",
		},
		{
			name:      "yearly on the run day",
			date:      "2020-03-10",
			frequency: "yearly",
			wantDue:   true,
			wantDate:  "2026-03-10",
		},
		{
			name:      "weekly landing past the window is not due",
			date:      "2026-03-08",
			frequency: "weekly",
			wantDue:   false,
		},
		{
			name:      "monthly landing later this month is not due",
			date:      "2026-02-25",
			frequency: "monthly",
			wantDue:   false,
		},
		{
			name:      "future anchor stays untouched and is not due",
			date:      "2026-04-01",
			frequency: "daily",
			wantDue:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder := testReminder(tt.date, nil, true, strPtr(tt.frequency))

			occurrence, due, err := nextOccurrence(reminder, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, due)
			if tt.wantDue {
				assert.Equal(t, tt.wantDate, occurrence.Format(dateLayout))
			}
		})
	}
}

// TestNextOccurrenceUnknownFrequency: нераспознанная частота не должна
// ни зависнуть, ни породить событие из прошлого
func TestNextOccurrenceUnknownFrequency(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	reminder := testReminder("2025-01-01", strPtr("10:00"), true, strPtr("fortnightly"))

	done := make(chan struct{})
	var due bool
	var err error
	go func() {
		_, due, err = nextOccurrence(reminder, now)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("nextOccurrence did not terminate")
	}

	require.NoError(t, err)
	assert.False(t, due)
}

// TestAdvanceLoopIsBounded: якорь дальше чем maxAdvanceSteps дней в
// прошлом не выбрасывает daily-напоминание в бесконечный цикл
func TestAdvanceLoopIsBounded(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// ~5 years back, far beyond the step cap for daily advances
	reminder := testReminder("2021-03-10", strPtr("10:00"), true, strPtr("daily"))

	occurrence := advancePastOccurrence(
		time.Date(2021, 3, 10, 10, 0, 0, 0, time.UTC),
		entity.FrequencyDaily,
		now,
		reminder.ID,
	)

	// The cap stops the loop after maxAdvanceSteps days
	expected := time.Date(2021, 3, 10, 10, 0, 0, 0, time.UTC).AddDate(0, 0, maxAdvanceSteps)
	assert.Equal(t, expected, occurrence)
}

func TestNextOccurrenceMalformedInput(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		time *string
	}{
		{name: "garbage date", date: "not-a-date", time: nil},
		{name: "wrong date layout", date: "10/03/2026", time: nil},
		{name: "garbage time", date: "2026-03-10", time: strPtr("25:99")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder := testReminder(tt.date, tt.time, false, nil)

			_, due, err := nextOccurrence(reminder, now)

			require.Error(t, err)
			assert.False(t, due)
		})
	}
}
