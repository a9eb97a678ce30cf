package main

import (
	"path/filepath"
	_ "time/tzdata" // self-contained zone database

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tzgrid/internal/cli"
	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/errors"
	"github.com/julianstephens/tzgrid/internal/logger"
	"github.com/julianstephens/tzgrid/internal/parser"
	"github.com/julianstephens/tzgrid/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path." type:"path" default:"~/.config/tzgrid/tzgrid.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Initialize tzgrid storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive converter." default:"1"`
	When cli.WhenCmd `cmd:"" help:"Convert a date/time expression across the selected zones."`

	Zones struct {
		List   cli.ZonesListCmd   `cmd:"" help:"List the selected zones." default:"1"`
		Add    cli.ZonesAddCmd    `cmd:"" help:"Add a zone to the selection."`
		Remove cli.ZonesRemoveCmd `cmd:"" help:"Remove a zone from the selection."`
		Reset  cli.ZonesResetCmd  `cmd:"" help:"Clear the zone selection."`
		Search cli.ZonesSearchCmd `cmd:"" help:"Search zone identifiers."`
	} `cmd:"" help:"Manage the zone selection."`

	Settings cli.SettingsCmd `cmd:"" help:"View or update settings."`
	History  cli.HistoryCmd  `cmd:"" help:"Show recent conversions."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Check storage and zone database health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Timezone converter: one expression in, wall-clock tables out"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:  sqlite.NewStore(CLI.Config),
		Parser: parser.New(),
		Debug:  CLI.Debug,
	}

	errors.Fatal(ctx.Run(appCtx))
}
