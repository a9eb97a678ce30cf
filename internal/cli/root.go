package cli

import (
	"time"

	"github.com/julianstephens/tzgrid/internal/convert"
	"github.com/julianstephens/tzgrid/internal/models"
	"github.com/julianstephens/tzgrid/internal/storage"
)

// Context is passed to every command's Run method.
type Context struct {
	Store  storage.Provider
	Parser convert.Parser
	Debug  bool
}

// loadLocation resolves a zone name to a location, treating "Local" and the
// empty string as the system zone.
func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// displayZones is the effective zone list for rendering: the saved selection,
// or the reference fallback when nothing is selected yet.
func displayZones(settings models.Settings) []string {
	if len(settings.Zones) > 0 {
		return settings.Zones
	}
	ref := settings.Reference
	if ref == "" {
		ref = "Local"
	}
	return []string{ref}
}

// referenceZone picks the zone ambiguous input resolves against: the first
// selected zone, else the configured fallback.
func referenceZone(settings models.Settings) string {
	return models.Selection(settings.Zones).Reference(settings.Reference)
}

// windowFromSettings builds the offset window, applying any flag overrides.
func windowFromSettings(settings models.Settings, from, to, step *int) convert.Window {
	w := convert.Window{
		StartHours:  settings.WindowStartHours,
		EndHours:    settings.WindowEndHours,
		StepMinutes: settings.StepMinutes,
	}
	if from != nil {
		w.StartHours = *from
	}
	if to != nil {
		w.EndHours = *to
	}
	if step != nil {
		w.StepMinutes = *step
	}
	return w
}
