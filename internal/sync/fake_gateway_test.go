package sync

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
	"github.com/julianstephens/lifelog-cli/internal/remote"
)

// fakeGateway counts calls and returns scripted responses
type fakeGateway struct {
	calls map[string]int

	snapshot    models.Snapshot
	fetchErr    error
	addHabitErr error
	toggleErr   error
	deleteErr   error
	chatErr     error
	listPage    *remote.JournalPage

	nextID int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{calls: make(map[string]int)}
}

func (f *fakeGateway) count(name string) {
	f.calls[name]++
}

func (f *fakeGateway) canonicalID() models.ID {
	f.nextID++
	return models.ID(fmt.Sprintf("srv-%d", f.nextID))
}

func (f *fakeGateway) FetchSnapshot(ctx context.Context) (models.Snapshot, error) {
	f.count("FetchSnapshot")
	if f.fetchErr != nil {
		return models.Snapshot{}, f.fetchErr
	}
	return f.snapshot, nil
}

func (f *fakeGateway) UpdateMood(ctx context.Context, mood string) (models.Snapshot, error) {
	f.count("UpdateMood")
	return f.snapshot, nil
}

func (f *fakeGateway) UpdateTheme(ctx context.Context, theme constants.Theme) error {
	f.count("UpdateTheme")
	return nil
}

func (f *fakeGateway) AddHabit(ctx context.Context, name string) (models.Habit, error) {
	f.count("AddHabit")
	if f.addHabitErr != nil {
		return models.Habit{}, f.addHabitErr
	}
	return models.Habit{ID: f.canonicalID(), Name: name}, nil
}

func (f *fakeGateway) ToggleHabit(ctx context.Context, id models.ID) (models.Habit, error) {
	f.count("ToggleHabit")
	if f.toggleErr != nil {
		return models.Habit{}, f.toggleErr
	}
	return models.Habit{ID: id, Name: "toggled", Completed: true, Streak: 1}, nil
}

func (f *fakeGateway) DeleteHabit(ctx context.Context, id models.ID) error {
	f.count("DeleteHabit")
	return f.deleteErr
}

func (f *fakeGateway) AddJournal(ctx context.Context, text string) (models.Journal, error) {
	f.count("AddJournal")
	return models.Journal{ID: f.canonicalID(), Text: text}, nil
}

func (f *fakeGateway) DeleteJournal(ctx context.Context, id models.ID) error {
	f.count("DeleteJournal")
	return f.deleteErr
}

func (f *fakeGateway) ListJournals(ctx context.Context, page, limit int) (remote.JournalPage, error) {
	f.count("ListJournals")
	if f.listPage == nil {
		return remote.JournalPage{}, &remote.TransientError{Err: context.DeadlineExceeded}
	}
	return *f.listPage, nil
}

func (f *fakeGateway) AddTask(ctx context.Context, task models.Task) (models.Task, error) {
	f.count("AddTask")
	task.ID = f.canonicalID()
	return task, nil
}

func (f *fakeGateway) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	f.count("UpdateTask")
	return task, nil
}

func (f *fakeGateway) ToggleTask(ctx context.Context, id models.ID) (models.Task, error) {
	f.count("ToggleTask")
	if f.toggleErr != nil {
		return models.Task{}, f.toggleErr
	}
	return models.Task{ID: id, Title: "toggled", Status: constants.StatusCompleted}, nil
}

func (f *fakeGateway) DeleteTask(ctx context.Context, id models.ID) error {
	f.count("DeleteTask")
	return f.deleteErr
}

func (f *fakeGateway) FetchChat(ctx context.Context) ([]models.ChatMessage, error) {
	f.count("FetchChat")
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	return f.snapshot.Messages, nil
}

func (f *fakeGateway) SendChat(ctx context.Context, msg models.ChatMessage) (remote.ChatReply, error) {
	f.count("SendChat")
	return remote.ChatReply{
		Reply:     "That sounds like a good day.",
		MessageID: f.canonicalID(),
		ReplyID:   f.canonicalID(),
	}, nil
}

func (f *fakeGateway) ClearChat(ctx context.Context) error {
	f.count("ClearChat")
	return nil
}
