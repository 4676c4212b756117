package cli

import (
	"context"
	"fmt"
	"strings"
)

type MoodCmd struct {
	Show MoodShowCmd `cmd:"" help:"Show today's mood." default:"1"`
	Set  MoodSetCmd  `cmd:"" help:"Record today's mood."`
}

type MoodShowCmd struct{}

func (c *MoodShowCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Today's mood: %s\n", snap.Mood)
	return nil
}

type MoodSetCmd struct {
	Mood []string `arg:"" help:"Mood text, e.g. '😊 Happy'."`
}

func (c *MoodSetCmd) Run(ctx *Context) error {
	mood := strings.TrimSpace(strings.Join(c.Mood, " "))
	if mood == "" {
		return fmt.Errorf("mood cannot be empty")
	}
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	res := ctx.Engine.SetMood(context.Background(), mood)
	fmt.Printf("Mood set to: %s\n", mood)
	Notify(res)
	return nil
}
