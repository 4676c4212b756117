package sync

import (
	"testing"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

func TestMergeSnapshotsListRules(t *testing.T) {
	local := models.Snapshot{
		Habits:   []models.Habit{{ID: "h1", Name: "Read"}},
		Journals: []models.Journal{{ID: "j1", Text: "local entry"}},
	}
	remote := models.Snapshot{
		Journals: []models.Journal{{ID: "srv-1", Text: "remote entry"}},
	}

	got := MergeSnapshots(local, remote)
	if len(got.Habits) != 1 || got.Habits[0].ID != "h1" {
		t.Errorf("habits = %+v, want local list kept when remote is empty", got.Habits)
	}
	if len(got.Journals) != 1 || got.Journals[0].ID != "srv-1" {
		t.Errorf("journals = %+v, want non-empty remote list to win", got.Journals)
	}
}

func TestMergeSnapshotsScalarFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		local     models.Snapshot
		remote    models.Snapshot
		wantMood  string
		wantTheme constants.Theme
	}{
		{
			name:      "remote values win",
			local:     models.Snapshot{Mood: "🙂 Calm", Theme: constants.ThemeLight},
			remote:    models.Snapshot{Mood: "😤 Frustrated", Theme: constants.ThemeDark},
			wantMood:  "😤 Frustrated",
			wantTheme: constants.ThemeDark,
		},
		{
			name:      "empty remote falls back to local",
			local:     models.Snapshot{Mood: "🙂 Calm", Theme: constants.ThemeDark},
			remote:    models.Snapshot{},
			wantMood:  "🙂 Calm",
			wantTheme: constants.ThemeDark,
		},
		{
			name:      "both empty fall back to defaults",
			local:     models.Snapshot{},
			remote:    models.Snapshot{},
			wantMood:  constants.DefaultMood,
			wantTheme: constants.ThemeLight,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MergeSnapshots(tc.local, tc.remote)
			if got.Mood != tc.wantMood {
				t.Errorf("mood = %q, want %q", got.Mood, tc.wantMood)
			}
			if got.Theme != tc.wantTheme {
				t.Errorf("theme = %q, want %q", got.Theme, tc.wantTheme)
			}
		})
	}
}
