package convert

import (
	"strings"
	"time"
)

// Parser interprets free-form date/time text against a reference location.
// Relative expressions ("tomorrow at 3pm") must resolve on that location's
// calendar anchored at now, never on the process-local zone. Implementations
// return an error when the text cannot be interpreted.
type Parser interface {
	Parse(text string, ref *time.Location, now time.Time) (time.Time, error)
}

// Resolve turns text plus a reference location into one absolute instant.
// Empty input (after trimming) fails with KindEmptyInput without touching the
// parser; parser rejection fails with KindUnparseable carrying the original
// text. Everything downstream (table, timeline) is computed from this one
// instant, so the reference zone is injected here and nowhere else.
func Resolve(text string, ref *time.Location, p Parser, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, NewFailure(KindEmptyInput, "")
	}

	t, err := p.Parse(trimmed, ref, now)
	if err != nil {
		return time.Time{}, NewFailure(KindUnparseable, text)
	}
	return t, nil
}
