package service

import (
	"fmt"
	"time"

	"github.com/ds124wfegd/contactremind/internal/entity"
)

// advanceOffset is one of the fixed "N days before" notices fired for an
// annual special date. The suffix distinguishes the up-to-three events a
// single special date can yield in one sweep.
type advanceOffset struct {
	days   int
	suffix string
	label  string
}

var advanceOffsets = []advanceOffset{
	{days: 30, suffix: "30d", label: "30 days away"},
	{days: 7, suffix: "1w", label: "1 week away"},
	{days: 1, suffix: "1d", label: "1 day away"},
}

type advanceMatch struct {
	offset advanceOffset
	// target is this year's anniversary, or next year's when this
	// year's has already passed.
	target time.Time
}

// specialDateAdvances returns the advance offsets that land exactly on
// today for the given special date. Сравнение только по календарной
// дате, время суток игнорируется.
func specialDateAdvances(specialDate *entity.SpecialDateWithContact, now time.Time) ([]advanceMatch, error) {
	parsed, err := time.ParseInLocation(dateLayout, specialDate.Date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("failed to parse special date %q: %w", specialDate.Date, err)
	}

	today := truncateToDay(now)
	target := time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
	if target.Before(today) {
		target = time.Date(today.Year()+1, parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
	}

	var matches []advanceMatch
	for _, offset := range advanceOffsets {
		if target.AddDate(0, 0, -offset.days).Equal(today) {
			matches = append(matches, advanceMatch{offset: offset, target: target})
		}
	}

	return matches, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
