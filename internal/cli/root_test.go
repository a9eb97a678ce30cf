package cli

import (
	"strings"
	"testing"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/convert"
	"github.com/julianstephens/tzgrid/internal/models"
)

func TestWindowFromSettings(t *testing.T) {
	settings := models.Settings{WindowStartHours: -1, WindowEndHours: 2, StepMinutes: 15}

	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name             string
		from, to, step   *int
		wantFrom, wantTo int
		wantStep         int
	}{
		{name: "no overrides", wantFrom: -1, wantTo: 2, wantStep: 15},
		{name: "from override", from: intPtr(-6), wantFrom: -6, wantTo: 2, wantStep: 15},
		{name: "all overridden", from: intPtr(0), to: intPtr(12), step: intPtr(60), wantFrom: 0, wantTo: 12, wantStep: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := windowFromSettings(settings, tt.from, tt.to, tt.step)
			if w.StartHours != tt.wantFrom || w.EndHours != tt.wantTo || w.StepMinutes != tt.wantStep {
				t.Errorf("window = %+v, want {%d %d %d}", w, tt.wantFrom, tt.wantTo, tt.wantStep)
			}
		})
	}
}

func TestDisplayZones(t *testing.T) {
	if got := displayZones(models.Settings{Zones: []string{"UTC", "Asia/Tokyo"}}); len(got) != 2 {
		t.Errorf("displayZones with selection = %v", got)
	}
	if got := displayZones(models.Settings{}); len(got) != 1 || got[0] != "Local" {
		t.Errorf("displayZones without selection = %v, want [Local]", got)
	}
	if got := displayZones(models.Settings{Reference: "UTC"}); len(got) != 1 || got[0] != "UTC" {
		t.Errorf("displayZones with reference fallback = %v, want [UTC]", got)
	}
}

func TestDescribeFailure(t *testing.T) {
	tests := []struct {
		name string
		kind convert.FailureKind
		want string
	}{
		{name: "empty input", kind: convert.KindEmptyInput, want: "no expression"},
		{name: "unparseable", kind: convert.KindUnparseable, want: "could not interpret"},
		{name: "empty zone set", kind: convert.KindEmptyZoneSet, want: "no zones selected"},
		{name: "invalid window", kind: convert.KindInvalidWindow, want: "invalid window"},
		{name: "unknown zone", kind: convert.KindUnknownZone, want: "unknown zone"},
		{name: "selection full", kind: convert.KindSelectionFull, want: "at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := describeFailure(convert.NewFailure(tt.kind, "x"), "x")
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("describeFailure(%v) = %q, want containing %q", tt.kind, err, tt.want)
			}
		})
	}

	if got := describeFailure(convert.NewFailure(convert.KindSelectionFull, ""), ""); !strings.Contains(got.Error(), "4") {
		t.Errorf("selection-full message %q does not mention the capacity %d", got, constants.MaxZones)
	}
}
