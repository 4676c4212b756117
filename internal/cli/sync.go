package cli

import (
	"context"
	"fmt"
)

type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}

	session := ctx.Engine.Session()
	if session.Authenticated() {
		fmt.Printf("Synced as %s.\n", session.Email)
	} else {
		fmt.Println("Not signed in; showing local data only.")
	}
	fmt.Printf("  %d habits, %d journal entries, %d tasks, %d messages\n",
		len(snap.Habits), len(snap.Journals), len(snap.Tasks), len(snap.Messages))
	fmt.Printf("  last daily reset: %s\n", snap.LastReset)
	for _, insight := range snap.Insights {
		fmt.Printf("  💡 %s\n", insight)
	}
	return nil
}
