package sync

import "github.com/julianstephens/lifelog-cli/internal/models"

// ResetIfNewDay clears every habit's completed flag the first time a
// snapshot is loaded on a new calendar day. Streaks are untouched; only
// explicit toggles move them. Idempotent within the same day.
func ResetIfNewDay(snap models.Snapshot, today string) models.Snapshot {
	if snap.LastReset == today {
		return snap
	}

	out := snap.Clone()
	for i := range out.Habits {
		out.Habits[i].Completed = false
	}
	out.LastReset = today
	return out
}
