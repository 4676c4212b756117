package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/lifelog-cli/internal/backup"
	"github.com/julianstephens/lifelog-cli/internal/logger"
	"github.com/julianstephens/lifelog-cli/internal/models"
	"github.com/julianstephens/lifelog-cli/internal/remote"
	"github.com/julianstephens/lifelog-cli/internal/storage"
	"github.com/julianstephens/lifelog-cli/internal/sync"
)

type Context struct {
	Store  storage.Provider
	Engine *sync.Engine
	APIURL string
}

// Bootstrap loads the durable store and reconciles the snapshot with the
// remote store. A rejected credential is reported but does not abort: the
// local snapshot remains usable.
func (c *Context) Bootstrap(ctx context.Context) (models.Snapshot, error) {
	if err := c.Store.Load(); err != nil {
		return models.Snapshot{}, err
	}
	snap, err := c.Engine.Load(ctx)
	if errors.Is(err, remote.ErrUnauthorized) {
		fmt.Println("Session expired. Run 'lifelog login' to sign in again.")
	}
	return snap, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Notify prints the transient notice attached to a mutation result, if any
func Notify(res sync.Result) {
	if res.Notice != "" {
		fmt.Println(res.Notice)
	}
}

// FindHabit resolves a habit reference: an exact id, a 1-based list
// position, or a case-insensitive name match.
func FindHabit(snap models.Snapshot, ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	for _, h := range snap.Habits {
		if string(h.ID) == ref {
			return h, nil
		}
	}
	if n, err := parseIndex(ref, len(snap.Habits)); err == nil {
		return snap.Habits[n], nil
	}
	for _, h := range snap.Habits {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
}

// FindTask resolves a task reference the same way as FindHabit
func FindTask(snap models.Snapshot, ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	for _, t := range snap.Tasks {
		if string(t.ID) == ref {
			return t, nil
		}
	}
	if n, err := parseIndex(ref, len(snap.Tasks)); err == nil {
		return snap.Tasks[n], nil
	}
	for _, t := range snap.Tasks {
		if strings.EqualFold(t.Title, ref) {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("no task matches %q", ref)
}

// FindJournal resolves a journal reference by id or 1-based position
func FindJournal(snap models.Snapshot, ref string) (models.Journal, error) {
	ref = strings.TrimSpace(ref)
	for _, j := range snap.Journals {
		if string(j.ID) == ref {
			return j, nil
		}
	}
	if n, err := parseIndex(ref, len(snap.Journals)); err == nil {
		return snap.Journals[n], nil
	}
	return models.Journal{}, fmt.Errorf("no journal entry matches %q", ref)
}

func parseIndex(ref string, length int) (int, error) {
	var n int
	if _, err := fmt.Sscanf(ref, "%d", &n); err != nil {
		return 0, err
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("position %d out of range", n)
	}
	return n - 1, nil
}

// Checkbox renders a completion marker
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
