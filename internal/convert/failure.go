// Package convert is the conversion engine: it resolves free-form date/time
// input to a single absolute instant, generates the zone-shifted offset
// table, and maps the 24-hour timeline. All functions are pure; callers own
// every value passed in and out.
package convert

import (
	"errors"
	"fmt"
)

// FailureKind discriminates engine failures. Callers branch on the kind; no
// engine operation panics or retries.
type FailureKind int

const (
	// KindEmptyInput means no text was supplied to Resolve.
	KindEmptyInput FailureKind = iota
	// KindUnparseable means the parser rejected the text.
	KindUnparseable
	// KindEmptyZoneSet means Generate was called with no zones.
	KindEmptyZoneSet
	// KindInvalidWindow means a non-positive step or start > end.
	KindInvalidWindow
	// KindUnknownZone means an identifier not in the registry, surfaced at
	// selection time only.
	KindUnknownZone
	// KindSelectionFull means the zone selection is at capacity.
	KindSelectionFull
)

func (k FailureKind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty input"
	case KindUnparseable:
		return "unparseable"
	case KindEmptyZoneSet:
		return "empty zone set"
	case KindInvalidWindow:
		return "invalid window"
	case KindUnknownZone:
		return "unknown zone"
	case KindSelectionFull:
		return "selection full"
	default:
		return "unknown failure"
	}
}

// Failure is the engine's error value. Input carries the offending text where
// relevant so the caller can echo it back.
type Failure struct {
	Kind  FailureKind
	Input string
}

func (f *Failure) Error() string {
	if f.Input == "" {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %q", f.Kind, f.Input)
}

// NewFailure builds a Failure for the given kind and offending input.
func NewFailure(kind FailureKind, input string) *Failure {
	return &Failure{Kind: kind, Input: input}
}

// KindOf extracts the failure kind from an error, if it is an engine failure.
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}
