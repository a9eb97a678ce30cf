package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/models"
	"github.com/julianstephens/tzgrid/internal/zone"
)

type ZonesListCmd struct{}

func (c *ZonesListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if len(settings.Zones) == 0 {
		fmt.Println("No zones selected; the system local zone is used.")
		return nil
	}
	for i, z := range settings.Zones {
		marker := " "
		if i == 0 {
			marker = "*" // reference zone
		}
		fmt.Printf("%s %d. %s\n", marker, i+1, z)
	}
	return nil
}

type ZonesAddCmd struct {
	Zone string `arg:"" help:"Zone identifier or abbreviation (e.g. Europe/Berlin, pst)."`
}

func (c *ZonesAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	sel, err := models.Selection(settings.Zones).Add(c.Zone)
	if err != nil {
		if suggestions := zone.Suggest(c.Zone, zone.AllZones(), constants.SuggestLimit); len(suggestions) > 0 {
			fmt.Println("Did you mean:")
			for _, s := range suggestions {
				fmt.Printf("  %s\n", s)
			}
		}
		return describeFailure(err, c.Zone)
	}

	settings.Zones = sel
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Added %s (%d/%d).\n", sel[len(sel)-1], len(sel), constants.MaxZones)
	return nil
}

type ZonesRemoveCmd struct {
	Zone string `arg:"" help:"Zone identifier or abbreviation to remove."`
}

func (c *ZonesRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	before := len(settings.Zones)
	settings.Zones = models.Selection(settings.Zones).Remove(c.Zone)
	if len(settings.Zones) == before {
		fmt.Printf("%s is not in the selection.\n", c.Zone)
		return nil
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Removed %s.\n", c.Zone)
	return nil
}

type ZonesResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ZonesResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Reset the zone selection?").
			Description("The selection falls back to the system local zone.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.Zones = nil
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Zone selection reset.")
	return nil
}

type ZonesSearchCmd struct {
	Query string `arg:"" help:"Substring or approximate zone name."`
	Limit int    `default:"5" help:"Maximum number of suggestions."`
}

func (c *ZonesSearchCmd) Run(ctx *Context) error {
	suggestions := zone.Suggest(c.Query, zone.AllZones(), c.Limit)
	if len(suggestions) == 0 {
		fmt.Printf("No zones match %q.\n", c.Query)
		return nil
	}
	for _, s := range suggestions {
		fmt.Println(s)
	}
	return nil
}
