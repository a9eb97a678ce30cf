package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/tzgrid/internal/zone"
)

// DoctorCmd checks storage and the time zone database.
type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	ok := true

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("✗ storage: %v\n", err)
		ok = false
	} else {
		fmt.Printf("✓ storage: %s\n", ctx.Store.ConfigPath())

		settings, err := ctx.Store.GetSettings()
		if err != nil {
			fmt.Printf("✗ settings: %v\n", err)
			ok = false
		} else {
			fmt.Printf("✓ settings: %d zone(s) selected\n", len(settings.Zones))
			for _, z := range settings.Zones {
				if _, err := time.LoadLocation(z); err != nil {
					fmt.Printf("✗ zone %s: %v\n", z, err)
					ok = false
				} else {
					fmt.Printf("✓ zone %s\n", z)
				}
			}
		}
	}

	if n := len(zone.AllZones()); n == 0 {
		fmt.Println("✗ time zone registry is empty")
		ok = false
	} else {
		fmt.Printf("✓ time zone registry: %d identifiers\n", n)
	}

	if !ok {
		return fmt.Errorf("problems found")
	}
	fmt.Println("All checks passed.")
	return nil
}
