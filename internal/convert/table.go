package convert

import (
	"fmt"
	"time"

	"github.com/julianstephens/tzgrid/internal/constants"
)

// FormatKind selects how much detail a rendered wall-clock string carries.
type FormatKind int

const (
	// FormatShort is numeric date plus 24h time.
	FormatShort FormatKind = iota
	// FormatLong spells out weekday, month and zone abbreviation.
	FormatLong
)

func (k FormatKind) layout() string {
	if k == FormatLong {
		return constants.LongClockFormat
	}
	return constants.ShortClockFormat
}

// Window describes the offset range around the resolved instant: [StartHours,
// EndHours] in whole hours, sampled every StepMinutes.
type Window struct {
	StartHours  int
	EndHours    int
	StepMinutes int
}

// Valid reports whether the window can produce a grid: positive step and
// start not after end. A violation is a user input error, not something to
// silently repair.
func (w Window) Valid() bool {
	return w.StepMinutes > 0 && w.StartHours <= w.EndHours
}

// OffsetRow is one generated table row: the signed offset from the instant in
// minutes, its display label, and one formatted wall-clock string per zone.
type OffsetRow struct {
	OffsetMinutes int
	Label         string
	Times         []string
}

// Generate produces the offset table: one row per multiple of StepMinutes
// from StartHours*60 through EndHours*60 inclusive, each column formatted in
// the corresponding zone's local wall clock at the shifted instant. A window
// the step does not evenly partition simply ends at the last multiple at or
// before the end; the final interval is irregular but the rows stay
// monotonic.
//
// Zones are assumed validated by the registry. Formatting each row at the
// shifted instant (not offsetting a single rendering) is what keeps a window
// that crosses a DST transition correct: the wall clock jumps or folds at the
// right row.
func Generate(instant time.Time, zones []string, window Window, format FormatKind) ([]OffsetRow, error) {
	if len(zones) == 0 {
		return nil, NewFailure(KindEmptyZoneSet, "")
	}
	if !window.Valid() {
		return nil, NewFailure(KindInvalidWindow,
			fmt.Sprintf("start=%dh end=%dh step=%dm", window.StartHours, window.EndHours, window.StepMinutes))
	}

	locs := make([]*time.Location, len(zones))
	for i, z := range zones {
		loc, err := time.LoadLocation(z)
		if err != nil {
			// Unvalidated identifiers must not reach this stage.
			return nil, fmt.Errorf("load zone %q: %w", z, err)
		}
		locs[i] = loc
	}

	startMin := window.StartHours * 60
	endMin := window.EndHours * 60
	layout := format.layout()

	var rows []OffsetRow
	for m := startMin; m <= endMin; m += window.StepMinutes {
		shifted := instant.Add(time.Duration(m) * time.Minute)
		times := make([]string, len(locs))
		for i, loc := range locs {
			times[i] = shifted.In(loc).Format(layout)
		}
		rows = append(rows, OffsetRow{
			OffsetMinutes: m,
			Label:         OffsetLabel(m),
			Times:         times,
		})
	}
	return rows, nil
}

// OffsetLabel renders a minute offset as sign, whole hours and zero-padded
// minutes: "-1:00", "+0:15", "+2:00".
func OffsetLabel(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}
