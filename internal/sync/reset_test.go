package sync

import (
	"testing"

	"github.com/julianstephens/lifelog-cli/internal/models"
)

func TestResetIfNewDayClearsCompletionOnly(t *testing.T) {
	snap := models.Snapshot{
		Habits: []models.Habit{
			{ID: "h1", Name: "Read", Completed: true, Streak: 7},
			{ID: "h2", Name: "Run", Completed: false, Streak: 0},
		},
		LastReset: "2026-08-27",
	}

	got := ResetIfNewDay(snap, "2026-08-28")
	if got.LastReset != "2026-08-28" {
		t.Errorf("lastReset = %q, want today's date", got.LastReset)
	}
	for _, h := range got.Habits {
		if h.Completed {
			t.Errorf("habit %q still completed", h.Name)
		}
	}
	if got.Habits[0].Streak != 7 {
		t.Errorf("streak = %d, want 7: only toggles move streaks", got.Habits[0].Streak)
	}
	// The input snapshot is not mutated
	if !snap.Habits[0].Completed {
		t.Error("input snapshot was mutated")
	}
}

func TestResetIfNewDayIdempotent(t *testing.T) {
	snap := models.Snapshot{
		Habits:    []models.Habit{{ID: "h1", Name: "Read", Completed: true}},
		LastReset: "2026-08-28",
	}

	got := ResetIfNewDay(snap, "2026-08-28")
	if !got.Habits[0].Completed {
		t.Error("same-day reset cleared a completion, want a no-op")
	}
}
