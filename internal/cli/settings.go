package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/zone"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme     *string `help:"Color theme: dark or light."`
	Reference *string `help:"Fallback reference zone when no zones are selected (IANA name or 'Local')."`
	From      *int    `help:"Default window start offset in hours."`
	To        *int    `help:"Default window end offset in hours."`
	Step      *int    `help:"Default row step in minutes."`
	Format    *string `help:"Default wall-clock format: short or long."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Zones:      %s\n", strings.Join(displayZones(settings), ", "))
		fmt.Printf("  Reference:  %s\n", referenceZone(settings))
		fmt.Printf("  Theme:      %s\n", settings.Theme)
		fmt.Printf("  Window:     %+dh to %+dh, every %d min\n",
			settings.WindowStartHours, settings.WindowEndHours, settings.StepMinutes)
		fmt.Printf("  Format:     %s\n", settings.Format)
		return nil
	}

	updated := false
	if c.Theme != nil {
		if *c.Theme != constants.ThemeDark && *c.Theme != constants.ThemeLight {
			return fmt.Errorf("invalid theme %q: must be dark or light", *c.Theme)
		}
		settings.Theme = *c.Theme
		updated = true
	}
	if c.Reference != nil {
		ref := *c.Reference
		if ref != "Local" {
			id, ok := zone.Canonical(ref)
			if !ok {
				return fmt.Errorf("invalid reference zone %q", ref)
			}
			ref = id
		}
		settings.Reference = ref
		updated = true
	}
	if c.From != nil {
		settings.WindowStartHours = *c.From
		updated = true
	}
	if c.To != nil {
		settings.WindowEndHours = *c.To
		updated = true
	}
	if c.Step != nil {
		if *c.Step <= 0 {
			return fmt.Errorf("step must be positive, got %d", *c.Step)
		}
		settings.StepMinutes = *c.Step
		updated = true
	}
	if c.Format != nil {
		if *c.Format != constants.FormatShortName && *c.Format != constants.FormatLongName {
			return fmt.Errorf("invalid format %q: must be short or long", *c.Format)
		}
		settings.Format = *c.Format
		updated = true
	}

	if settings.WindowStartHours > settings.WindowEndHours {
		return fmt.Errorf("window start (%d) must not be after window end (%d)",
			settings.WindowStartHours, settings.WindowEndHours)
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
