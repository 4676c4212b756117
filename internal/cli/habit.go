package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifelog-cli/internal/validation"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List     HabitListCmd     `cmd:"" help:"List habits."`
	Toggle   HabitToggleCmd   `cmd:"" help:"Toggle a habit's completion for today."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit."`
	Category HabitCategoryCmd `cmd:"" help:"Set a habit's category."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := validation.HabitName(c.Name); err != nil {
		return err
	}
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	habit, res := ctx.Engine.AddHabit(context.Background(), c.Name)
	fmt.Printf("Added habit: %s\n", habit.Name)
	Notify(res)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}

	if len(snap.Habits) == 0 {
		fmt.Println("No habits yet. Add one with 'lifelog habit add'.")
		return nil
	}
	for i, h := range snap.Habits {
		line := fmt.Sprintf("%2d. %s %s", i+1, Checkbox(h.Completed), h.Name)
		if h.Streak > 0 {
			line += fmt.Sprintf("  (streak %d)", h.Streak)
		}
		if h.Category != "" {
			line += fmt.Sprintf("  [%s]", h.Category)
		}
		fmt.Println(line)
	}
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name, id, or list position."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	habit, err := FindHabit(snap, c.Habit)
	if err != nil {
		return err
	}

	updated, res := ctx.Engine.ToggleHabit(context.Background(), habit.ID)
	if updated.ID != "" {
		fmt.Printf("%s %s (streak %d)\n", Checkbox(updated.Completed), updated.Name, updated.Streak)
	}
	Notify(res)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name, id, or list position."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	habit, err := FindHabit(snap, c.Habit)
	if err != nil {
		return err
	}

	res := ctx.Engine.DeleteHabit(context.Background(), habit.ID)
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	Notify(res)
	return nil
}

type HabitCategoryCmd struct {
	Habit    string `arg:"" help:"Habit name, id, or list position."`
	Category string `arg:"" help:"Category label (empty to clear)."`
}

func (c *HabitCategoryCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	habit, err := FindHabit(snap, c.Habit)
	if err != nil {
		return err
	}

	res := ctx.Engine.SetHabitCategory(context.Background(), habit.ID, c.Category)
	if res.Notice != "" {
		Notify(res)
		return nil
	}
	fmt.Printf("Set category for %s: %s\n", habit.Name, c.Category)
	return nil
}
