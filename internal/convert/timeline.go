package convert

import (
	"fmt"
	"time"
)

// DayDelta says whether a zone's local calendar date for an instant falls
// before, on, or after the reference zone's local date for that instant.
type DayDelta int

const (
	DayPrevious DayDelta = iota - 1
	DaySame
	DayNext
)

func (d DayDelta) String() string {
	switch d {
	case DayPrevious:
		return "prev day"
	case DayNext:
		return "next day"
	default:
		return "same day"
	}
}

// TimelineEntry is the per-zone projection for the 24-hour timeline row: the
// occupied local hour and the day shift relative to the reference zone.
type TimelineEntry struct {
	Zone  string
	Hour  int
	Delta DayDelta
}

// MapTimeline computes one TimelineEntry per zone, order matching zones.
// The day delta compares raw day-of-month numbers: exactly one less is
// previous, exactly one more is next, anything else is same. At a month
// boundary (31st vs 1st) the raw difference is not ±1 and the entry reports
// same; see DESIGN.md.
func MapTimeline(instant time.Time, zones []string, referenceZone string) ([]TimelineEntry, error) {
	refLoc, err := time.LoadLocation(referenceZone)
	if err != nil {
		return nil, fmt.Errorf("load reference zone %q: %w", referenceZone, err)
	}
	refDay := instant.In(refLoc).Day()

	entries := make([]TimelineEntry, 0, len(zones))
	for _, z := range zones {
		loc, err := time.LoadLocation(z)
		if err != nil {
			return nil, fmt.Errorf("load zone %q: %w", z, err)
		}
		local := instant.In(loc)

		delta := DaySame
		switch local.Day() - refDay {
		case -1:
			delta = DayPrevious
		case 1:
			delta = DayNext
		}

		entries = append(entries, TimelineEntry{
			Zone:  z,
			Hour:  local.Hour(),
			Delta: delta,
		})
	}
	return entries, nil
}
