package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit a task's fields."`
	Toggle TaskToggleCmd `cmd:"" help:"Toggle a task between completed and pending."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Task description."`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Due         string `help:"Due date (YYYY-MM-DD)."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := validation.TaskTitle(c.Title); err != nil {
		return err
	}
	priority, err := validation.Priority(c.Priority)
	if err != nil {
		return err
	}
	var due *time.Time
	if c.Due != "" {
		d, err := validation.Date(c.Due)
		if err != nil {
			return err
		}
		due = &d
	}
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	task, res := ctx.Engine.AddTask(context.Background(), c.Title, c.Description, priority, due)
	fmt.Printf("Added task: %s (%s)\n", task.Title, task.Priority)
	Notify(res)
	return nil
}

type TaskListCmd struct {
	All bool `help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}

	if len(snap.Tasks) == 0 {
		fmt.Println("No tasks yet. Add one with 'lifelog task add'.")
		return nil
	}
	shown := 0
	for i, t := range snap.Tasks {
		if !c.All && t.Status == constants.StatusCompleted {
			continue
		}
		shown++
		line := fmt.Sprintf("%2d. %s %s  (%s", i+1, Checkbox(t.Status == constants.StatusCompleted), t.Title, t.Priority)
		if t.DueDate != nil {
			line += ", due " + t.DueDate.Format(constants.DateFormat)
		}
		line += ")"
		fmt.Println(line)
		if t.Description != "" {
			fmt.Printf("      %s\n", t.Description)
		}
	}
	if shown == 0 {
		fmt.Println("All tasks completed. Use --all to show them.")
	}
	return nil
}

type TaskEditCmd struct {
	Task        string `arg:"" help:"Task title, id, or list position."`
	Title       string `help:"New title."`
	Description string `short:"d" help:"New description."`
	Priority    string `short:"p" help:"New priority (low|medium|high)."`
	Status      string `short:"s" help:"New status (pending|in-progress|completed)."`
	Due         string `help:"New due date (YYYY-MM-DD, 'none' to clear)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	task, err := FindTask(snap, c.Task)
	if err != nil {
		return err
	}

	if c.Title != "" {
		if err := validation.TaskTitle(c.Title); err != nil {
			return err
		}
		task.Title = c.Title
	}
	if c.Description != "" {
		task.Description = c.Description
	}
	if c.Priority != "" {
		priority, err := validation.Priority(c.Priority)
		if err != nil {
			return err
		}
		task.Priority = priority
	}
	if c.Status != "" {
		status, err := validation.Status(c.Status)
		if err != nil {
			return err
		}
		task.Status = status
	}
	switch {
	case c.Due == "none":
		task.DueDate = nil
	case c.Due != "":
		d, err := validation.Date(c.Due)
		if err != nil {
			return err
		}
		task.DueDate = &d
	}

	updated, res := ctx.Engine.UpdateTask(context.Background(), task)
	if updated.ID != "" {
		fmt.Printf("Updated task: %s (%s, %s)\n", updated.Title, updated.Priority, updated.Status)
	}
	Notify(res)
	return nil
}

type TaskToggleCmd struct {
	Task string `arg:"" help:"Task title, id, or list position."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	task, err := FindTask(snap, c.Task)
	if err != nil {
		return err
	}

	updated, res := ctx.Engine.ToggleTask(context.Background(), task.ID)
	if updated.ID != "" {
		fmt.Printf("%s %s\n", Checkbox(updated.Status == constants.StatusCompleted), updated.Title)
	}
	Notify(res)
	return nil
}

type TaskDeleteCmd struct {
	Task string `arg:"" help:"Task title, id, or list position."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	task, err := FindTask(snap, c.Task)
	if err != nil {
		return err
	}

	res := ctx.Engine.DeleteTask(context.Background(), task.ID)
	fmt.Printf("Deleted task: %s\n", task.Title)
	Notify(res)
	return nil
}
