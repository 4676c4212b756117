package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/sync"
)

type SearchCmd struct {
	Query []string `arg:"" help:"Search text."`
}

func (c *SearchCmd) Run(ctx *Context) error {
	query := strings.Join(c.Query, " ")
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}

	results := sync.SearchSnapshot(snap, query, time.Now())
	if len(results) == 0 {
		fmt.Printf("No matches for %q.\n", query)
		return nil
	}
	for _, r := range results {
		fmt.Printf("%-7s  %s  %s\n", r.Type, r.Date.Format(constants.DateFormat), r.Text)
	}
	return nil
}
