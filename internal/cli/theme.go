package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifelog-cli/internal/validation"
)

type ThemeCmd struct {
	Theme string `arg:"" optional:"" help:"Theme to switch to (light|dark). Omit to show the current theme."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	if c.Theme == "" {
		snap, err := ctx.Bootstrap(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Current theme: %s\n", snap.Theme)
		return nil
	}

	theme, err := validation.ThemeName(c.Theme)
	if err != nil {
		return err
	}
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	res := ctx.Engine.SetTheme(context.Background(), theme)
	fmt.Printf("Theme set to: %s\n", theme)
	Notify(res)
	return nil
}
