package remote

import (
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

// Wire types mirror the remote store's JSON documents. The store is
// inconsistent about identifiers ("_id" from the database, "id" from some
// handlers, occasionally neither), so every wire record carries both and is
// normalized into one opaque models.ID before anything else sees it.

type wireHabit struct {
	MongoID   string `json:"_id,omitempty"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
	Category  string `json:"category,omitempty"`
}

func (w wireHabit) toModel() models.Habit {
	return models.Habit{
		ID:        models.NormalizeID(w.MongoID, w.ID),
		Name:      w.Name,
		Completed: w.Completed,
		Streak:    w.Streak,
		Category:  w.Category,
	}
}

type wireJournal struct {
	MongoID   string     `json:"_id,omitempty"`
	ID        string     `json:"id,omitempty"`
	Text      string     `json:"text"`
	Date      *time.Time `json:"date,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func (w wireJournal) toModel() models.Journal {
	created := time.Time{}
	if w.Date != nil {
		created = *w.Date
	} else if w.CreatedAt != nil {
		created = *w.CreatedAt
	}
	return models.Journal{
		ID:        models.NormalizeID(w.MongoID, w.ID),
		Text:      w.Text,
		CreatedAt: created,
	}
}

type wireTask struct {
	MongoID     string     `json:"_id,omitempty"`
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (w wireTask) toModel() models.Task {
	return models.Task{
		ID:          models.NormalizeID(w.MongoID, w.ID),
		Title:       w.Title,
		Description: w.Description,
		Priority:    constants.TaskPriority(w.Priority),
		Status:      constants.TaskStatus(w.Status),
		DueDate:     w.DueDate,
		CreatedAt:   w.CreatedAt,
		CompletedAt: w.CompletedAt,
	}
}

type wireMessage struct {
	MongoID string    `json:"_id,omitempty"`
	ID      string    `json:"id,omitempty"`
	From    string    `json:"from"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
}

func (w wireMessage) toModel() models.ChatMessage {
	return models.ChatMessage{
		ID:   models.NormalizeID(w.MongoID, w.ID),
		From: constants.MessageSender(w.From),
		Text: w.Text,
		Date: w.Date,
	}
}

type wireSnapshot struct {
	TodayMood string        `json:"todayMood"`
	Habits    []wireHabit   `json:"habits"`
	Journals  []wireJournal `json:"journals"`
	Tasks     []wireTask    `json:"tasks"`
	Messages  []wireMessage `json:"messages"`
	Insights  []string      `json:"insights"`
	Theme     string        `json:"theme"`
	LastReset string        `json:"lastReset"`
}

func (w wireSnapshot) toModel() models.Snapshot {
	snap := models.Snapshot{
		Mood:      w.TodayMood,
		Insights:  w.Insights,
		Theme:     constants.Theme(w.Theme),
		LastReset: w.LastReset,
	}
	for _, h := range w.Habits {
		snap.Habits = append(snap.Habits, h.toModel())
	}
	for _, j := range w.Journals {
		snap.Journals = append(snap.Journals, j.toModel())
	}
	for _, t := range w.Tasks {
		snap.Tasks = append(snap.Tasks, t.toModel())
	}
	for _, m := range w.Messages {
		snap.Messages = append(snap.Messages, m.toModel())
	}
	return snap
}

// JournalPage is the server-paginated journal listing
type JournalPage struct {
	Journals    []models.Journal
	Total       int
	TotalPages  int
	CurrentPage int
}

// ChatReply carries the generated reply plus the canonical ids the server
// assigned to the stored turns
type ChatReply struct {
	Reply     string
	MessageID models.ID // canonical id for the user's turn
	ReplyID   models.ID // canonical id for the generated turn
}
