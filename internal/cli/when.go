package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/convert"
	"github.com/julianstephens/tzgrid/internal/logger"
	"github.com/julianstephens/tzgrid/internal/models"
	"github.com/julianstephens/tzgrid/internal/render"
)

type WhenCmd struct {
	Expression []string `arg:"" help:"Date/time expression: natural language or a unix timestamp."`

	Zone   []string `short:"z" help:"Zones to display, overriding the saved selection (max 4)."`
	From   *int     `help:"Window start offset in hours (may be negative)."`
	To     *int     `help:"Window end offset in hours."`
	Step   *int     `help:"Row step in minutes."`
	Long   bool     `short:"l" help:"Use the verbose wall-clock format."`
	NoSave bool     `help:"Do not record this conversion in history."`
}

func (c *WhenCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	zones := displayZones(settings)
	if len(c.Zone) > 0 {
		sel := models.Selection{}
		for _, z := range c.Zone {
			if sel, err = sel.Add(z); err != nil {
				return describeFailure(err, z)
			}
		}
		zones = sel
	}

	text := strings.Join(c.Expression, " ")
	ref := models.Selection(zones).Reference(settings.Reference)
	refLoc, err := loadLocation(ref)
	if err != nil {
		return fmt.Errorf("invalid reference zone %q: %w", ref, err)
	}

	instant, err := convert.Resolve(text, refLoc, ctx.Parser, time.Now())
	if err != nil {
		return describeFailure(err, text)
	}
	logger.Debug("resolved instant", "input", text, "instant", instant, "reference", ref)

	format := convert.FormatShort
	if c.Long || settings.Format == constants.FormatLongName {
		format = convert.FormatLong
	}

	rows, err := convert.Generate(instant, zones, windowFromSettings(settings, c.From, c.To, c.Step), format)
	if err != nil {
		return describeFailure(err, "")
	}

	entries, err := convert.MapTimeline(instant, zones, ref)
	if err != nil {
		return err
	}

	st := render.NewStyles(settings.Theme)
	fmt.Println(st.Accent.Render(fmt.Sprintf("%q → %s", text, instant.In(refLoc).Format(constants.LongClockFormat))))
	fmt.Println()
	fmt.Print(render.Table(zones, rows, st))
	fmt.Println()
	fmt.Print(render.Timeline(entries, st))

	if !c.NoSave {
		record := models.Conversion{
			Input:      text,
			ResolvedMs: instant.UnixMilli(),
			Zones:      zones,
		}
		if err := ctx.Store.AddConversion(record); err != nil {
			// History is best-effort; the conversion itself succeeded.
			logger.Warn("failed to record conversion", "error", err)
		}
	}

	return nil
}

// describeFailure maps engine failure kinds to user-facing messages.
func describeFailure(err error, input string) error {
	kind, ok := convert.KindOf(err)
	if !ok {
		return err
	}
	switch kind {
	case convert.KindEmptyInput:
		return fmt.Errorf("no expression given; try something like 'tomorrow at 3pm'")
	case convert.KindUnparseable:
		return fmt.Errorf("could not interpret %q as a date or time", input)
	case convert.KindEmptyZoneSet:
		return fmt.Errorf("no zones selected; add one with 'tzgrid zones add'")
	case convert.KindInvalidWindow:
		return fmt.Errorf("invalid window: step must be positive and start must not be after end")
	case convert.KindUnknownZone:
		return fmt.Errorf("unknown zone %q; try 'tzgrid zones search %s'", input, input)
	case convert.KindSelectionFull:
		return fmt.Errorf("at most %d zones can be selected; remove one first", constants.MaxZones)
	default:
		return err
	}
}
