package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/validation"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a journal entry."`
	List   JournalListCmd   `cmd:"" help:"List journal entries, newest first."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
}

type JournalAddCmd struct {
	Text []string `arg:"" help:"Entry text."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	text := strings.Join(c.Text, " ")
	if err := validation.JournalText(text); err != nil {
		return err
	}
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	entry, res := ctx.Engine.AddJournal(context.Background(), text)
	fmt.Printf("Saved entry from %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	Notify(res)
	return nil
}

type JournalListCmd struct {
	Page  int `short:"p" help:"Page number." default:"1"`
	Limit int `short:"n" help:"Entries per page." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	if err := validation.Page(c.Page, c.Limit); err != nil {
		return err
	}
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	page := ctx.Engine.ListJournals(context.Background(), c.Page, c.Limit)
	if page.Total == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}
	for _, j := range page.Items {
		fmt.Printf("%s  %s\n", j.CreatedAt.Format(constants.DateFormat), j.Text)
	}
	fmt.Printf("\nPage %d of %d (%d entries)\n", page.CurrentPage, page.TotalPages, page.Total)
	return nil
}

type JournalDeleteCmd struct {
	Entry string `arg:"" help:"Entry id or list position."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	entry, err := FindJournal(snap, c.Entry)
	if err != nil {
		return err
	}

	res := ctx.Engine.DeleteJournal(context.Background(), entry.ID)
	fmt.Println("Deleted journal entry.")
	Notify(res)
	return nil
}
