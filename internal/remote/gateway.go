package remote

import (
	"context"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

// Gateway is the request/response surface of the authoritative remote
// store. The sync engine only ever talks to this interface; tests inject
// counting fakes.
type Gateway interface {
	FetchSnapshot(ctx context.Context) (models.Snapshot, error)

	UpdateMood(ctx context.Context, mood string) (models.Snapshot, error)
	UpdateTheme(ctx context.Context, theme constants.Theme) error

	AddHabit(ctx context.Context, name string) (models.Habit, error)
	ToggleHabit(ctx context.Context, id models.ID) (models.Habit, error)
	DeleteHabit(ctx context.Context, id models.ID) error

	AddJournal(ctx context.Context, text string) (models.Journal, error)
	DeleteJournal(ctx context.Context, id models.ID) error
	ListJournals(ctx context.Context, page, limit int) (JournalPage, error)

	AddTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	ToggleTask(ctx context.Context, id models.ID) (models.Task, error)
	DeleteTask(ctx context.Context, id models.ID) error

	FetchChat(ctx context.Context) ([]models.ChatMessage, error)
	SendChat(ctx context.Context, msg models.ChatMessage) (ChatReply, error)
	ClearChat(ctx context.Context) error
}
