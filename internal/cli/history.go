package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tzgrid/internal/constants"
)

type HistoryCmd struct {
	Limit int  `default:"10" help:"Number of recent conversions to show."`
	Clear bool `help:"Delete all recorded conversions."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Clear {
		if err := ctx.Store.ClearConversions(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Println("History cleared.")
		return nil
	}

	conversions, err := ctx.Store.ListConversions(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(conversions) == 0 {
		fmt.Println("No conversions recorded yet.")
		return nil
	}

	for _, conv := range conversions {
		fmt.Printf("%s  %-24q → %s  [%s]\n",
			conv.CreatedAt.Local().Format(constants.DateTimeFormat),
			conv.Input,
			conv.Resolved().Format(constants.DateTimeFormat)+" UTC",
			strings.Join(conv.Zones, ", "),
		)
	}
	return nil
}
