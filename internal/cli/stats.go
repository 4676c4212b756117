package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/sync"
)

type StatsCmd struct {
	Range int `short:"r" help:"Trailing window in days (7|14|30)." default:"14"`
}

func (c *StatsCmd) Validate() error {
	if c.Range != 7 && c.Range != 14 && c.Range != 30 {
		return fmt.Errorf("range must be 7, 14, or 30")
	}
	return nil
}

func (c *StatsCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}

	stats := sync.ComputeStats(snap, c.Range, time.Now())

	fmt.Printf("Journal activity (last %d days)\n", stats.RangeDays)
	max := 1
	for _, n := range stats.DayCounts {
		if n > max {
			max = n
		}
	}
	for i, n := range stats.DayCounts {
		fmt.Printf("  %s  %-10s %d\n", stats.DayLabels[i], strings.Repeat("█", n*10/max), n)
	}

	fmt.Println("\nHabits")
	fmt.Printf("  tracked %d, completed today %d\n", stats.TotalHabits, stats.CompletedHabits)
	fmt.Printf("  average streak %d, best streak %d\n", stats.AvgStreak, stats.TopStreak)

	if len(stats.TopWords) > 0 {
		fmt.Printf("\nCommon journal themes: %s\n", strings.Join(stats.TopWords, ", "))
	}

	fmt.Println("\nInsights")
	for _, line := range stats.InsightLines() {
		fmt.Printf("  • %s\n", line)
	}
	fmt.Printf("  • %s\n", sync.Tips[rand.Intn(len(sync.Tips))])
	return nil
}
