package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

func testModel(snap models.Snapshot) Model {
	return NewModel(nil, snap)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		t.Fatalf("parsing date: %v", err)
	}
	return d
}

func TestViewHabitsShowsStreaksAndInsights(t *testing.T) {
	m := testModel(models.Snapshot{
		Habits: []models.Habit{
			{ID: "h1", Name: "Read 30 mins", Completed: true, Streak: 4},
		},
		Insights: []string{"Stay consistent!"},
	})

	out := m.viewHabits()
	if !strings.Contains(out, "Read 30 mins") {
		t.Errorf("habit name missing from view:\n%s", out)
	}
	if !strings.Contains(out, "4") {
		t.Errorf("streak missing from view:\n%s", out)
	}
	if !strings.Contains(out, "Stay consistent!") {
		t.Errorf("insights missing from view:\n%s", out)
	}
}

func TestViewTasksShowsDueDate(t *testing.T) {
	due := mustDate(t, "2026-09-01")
	m := testModel(models.Snapshot{
		Tasks: []models.Task{
			{ID: "t1", Title: "Pack bags", Status: constants.StatusPending, Priority: constants.PriorityHigh, DueDate: &due},
		},
	})

	out := m.viewTasks()
	if !strings.Contains(out, "Pack bags") || !strings.Contains(out, "2026-09-01") {
		t.Errorf("task line incomplete:\n%s", out)
	}
}

func TestViewChatMarksSpeakers(t *testing.T) {
	m := testModel(models.Snapshot{
		Messages: []models.ChatMessage{
			{ID: "m1", From: constants.SenderAI, Text: "Hey! How are you feeling today?"},
			{ID: "m2", From: constants.SenderUser, Text: "pretty good"},
		},
	})

	out := m.viewChat()
	if !strings.Contains(out, "coach") || !strings.Contains(out, "you") {
		t.Errorf("speaker labels missing:\n%s", out)
	}
	if !strings.Contains(out, "pretty good") {
		t.Errorf("message text missing:\n%s", out)
	}
}
