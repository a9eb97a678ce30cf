package render

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/tzgrid/internal/convert"
)

func TestTable(t *testing.T) {
	instant := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	zones := []string{"UTC", "Asia/Tokyo"}
	rows, err := convert.Generate(instant, zones, convert.Window{StartHours: -1, EndHours: 1, StepMinutes: 60}, convert.FormatShort)
	if err != nil {
		t.Fatal(err)
	}

	out := Table(zones, rows, NewStyles("dark"))

	for _, want := range []string{"offset", "UTC", "Asia/Tokyo", "-1:00", "+0:00", "+1:00", "2026-06-15 12:00", "2026-06-15 21:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 { // header + 3 rows
		t.Errorf("line count = %d, want 4", len(lines))
	}
}

func TestTimeline(t *testing.T) {
	entries := []convert.TimelineEntry{
		{Zone: "UTC", Hour: 12, Delta: convert.DaySame},
		{Zone: "Pacific/Auckland", Hour: 0, Delta: convert.DayNext},
	}

	out := Timeline(entries, NewStyles("dark"))

	if !strings.Contains(out, "(next day)") {
		t.Errorf("timeline missing next-day annotation:\n%s", out)
	}
	if strings.Contains(out, "(same day)") {
		t.Errorf("timeline annotates same-day entries:\n%s", out)
	}
	if !strings.Contains(out, "Pacific/Auckland") {
		t.Errorf("timeline missing zone name:\n%s", out)
	}
	if strings.Count(out, "█") != len(entries) {
		t.Errorf("timeline should mark exactly one hour per zone:\n%s", out)
	}
}
