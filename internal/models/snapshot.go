package models

import (
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

// Snapshot is the complete per-user data state. One snapshot is owned by
// exactly one user identity, replaced wholesale on a successful remote load
// and persisted to durable storage after every mutation.
type Snapshot struct {
	Mood      string          `json:"mood"`
	Habits    []Habit         `json:"habits"`
	Journals  []Journal       `json:"journals"`
	Tasks     []Task          `json:"tasks"`
	Messages  []ChatMessage   `json:"messages"`
	Insights  []string        `json:"insights"`
	Theme     constants.Theme `json:"theme"`
	LastReset string          `json:"last_reset"` // YYYY-MM-DD
}

// DefaultSnapshot seeds a first-run snapshot with the built-in habit set
// and welcome copy
func DefaultSnapshot(now time.Time) Snapshot {
	habits := make([]Habit, 0, len(constants.DefaultHabitNames))
	for _, name := range constants.DefaultHabitNames {
		habits = append(habits, Habit{ID: NewLocalID(), Name: name})
	}

	return Snapshot{
		Mood:   constants.DefaultMood,
		Habits: habits,
		Messages: []ChatMessage{{
			ID:   NewLocalID(),
			From: constants.SenderAI,
			Text: constants.WelcomeMessage,
			Date: now,
		}},
		Insights:  append([]string(nil), constants.DefaultInsights...),
		Theme:     constants.ThemeLight,
		LastReset: now.Format(constants.DateFormat),
	}
}

// Clone returns a deep copy of the snapshot so optimistic mutations never
// alias persisted slices
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Habits = append([]Habit(nil), s.Habits...)
	out.Journals = append([]Journal(nil), s.Journals...)
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Messages = append([]ChatMessage(nil), s.Messages...)
	out.Insights = append([]string(nil), s.Insights...)
	return out
}

// NormalizeIDs rewrites every entity identifier into the canonical opaque
// form. Records with no identifier at all receive fresh temporary ids.
// Applied at the load boundary so nothing downstream branches on
// identifier representation.
func (s *Snapshot) NormalizeIDs() {
	for i := range s.Habits {
		s.Habits[i].ID = NormalizeID(s.Habits[i].ID.String())
	}
	for i := range s.Journals {
		s.Journals[i].ID = NormalizeID(s.Journals[i].ID.String())
	}
	for i := range s.Tasks {
		s.Tasks[i].ID = NormalizeID(s.Tasks[i].ID.String())
	}
	for i := range s.Messages {
		s.Messages[i].ID = NormalizeID(s.Messages[i].ID.String())
	}
}
