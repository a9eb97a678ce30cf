package cli

import (
	"github.com/julianstephens/tzgrid/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	return tui.Run(ctx.Store, ctx.Parser)
}
