package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

// Client implements Gateway over the LifeLog HTTP API
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
	}
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). Network-level failures and 5xx responses come back as
// TransientError; 4xx responses map onto the error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return classifyStatus(res.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return &TransientError{Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}
	return nil
}

func (c *Client) FetchSnapshot(ctx context.Context) (models.Snapshot, error) {
	var w wireSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/lifelog", nil, &w); err != nil {
		return models.Snapshot{}, err
	}
	return w.toModel(), nil
}

func (c *Client) UpdateMood(ctx context.Context, mood string) (models.Snapshot, error) {
	var w wireSnapshot
	err := c.do(ctx, http.MethodPut, "/api/lifelog/mood", map[string]string{"todayMood": mood}, &w)
	if err != nil {
		return models.Snapshot{}, err
	}
	return w.toModel(), nil
}

func (c *Client) UpdateTheme(ctx context.Context, theme constants.Theme) error {
	return c.do(ctx, http.MethodPut, "/api/lifelog/theme", map[string]string{"theme": string(theme)}, nil)
}

func (c *Client) AddHabit(ctx context.Context, name string) (models.Habit, error) {
	var w wireHabit
	if err := c.do(ctx, http.MethodPost, "/api/lifelog/habit", map[string]string{"name": name}, &w); err != nil {
		return models.Habit{}, err
	}
	return w.toModel(), nil
}

func (c *Client) ToggleHabit(ctx context.Context, id models.ID) (models.Habit, error) {
	var w wireHabit
	path := fmt.Sprintf("/api/lifelog/habit/%s/toggle", url.PathEscape(id.String()))
	if err := c.do(ctx, http.MethodPut, path, nil, &w); err != nil {
		return models.Habit{}, err
	}
	return w.toModel(), nil
}

func (c *Client) DeleteHabit(ctx context.Context, id models.ID) error {
	path := fmt.Sprintf("/api/lifelog/habit/%s", url.PathEscape(id.String()))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) AddJournal(ctx context.Context, text string) (models.Journal, error) {
	var w wireJournal
	if err := c.do(ctx, http.MethodPost, "/api/lifelog/journal", map[string]string{"text": text}, &w); err != nil {
		return models.Journal{}, err
	}
	return w.toModel(), nil
}

func (c *Client) DeleteJournal(ctx context.Context, id models.ID) error {
	path := fmt.Sprintf("/api/lifelog/journal/%s", url.PathEscape(id.String()))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) ListJournals(ctx context.Context, page, limit int) (JournalPage, error) {
	var w struct {
		Journals    []wireJournal `json:"journals"`
		Total       int           `json:"total"`
		TotalPages  int           `json:"totalPages"`
		CurrentPage int           `json:"currentPage"`
	}
	path := fmt.Sprintf("/api/journals?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &w); err != nil {
		return JournalPage{}, err
	}

	out := JournalPage{Total: w.Total, TotalPages: w.TotalPages, CurrentPage: w.CurrentPage}
	for _, j := range w.Journals {
		out.Journals = append(out.Journals, j.toModel())
	}
	return out, nil
}

func taskBody(task models.Task) map[string]interface{} {
	body := map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"priority":    string(task.Priority),
		"status":      string(task.Status),
	}
	if task.DueDate != nil {
		body["dueDate"] = task.DueDate.Format(time.RFC3339)
	}
	return body
}

func (c *Client) AddTask(ctx context.Context, task models.Task) (models.Task, error) {
	var w wireTask
	if err := c.do(ctx, http.MethodPost, "/api/tasks", taskBody(task), &w); err != nil {
		return models.Task{}, err
	}
	return w.toModel(), nil
}

func (c *Client) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	var w wireTask
	path := fmt.Sprintf("/api/tasks/%s", url.PathEscape(task.ID.String()))
	if err := c.do(ctx, http.MethodPut, path, taskBody(task), &w); err != nil {
		return models.Task{}, err
	}
	return w.toModel(), nil
}

func (c *Client) ToggleTask(ctx context.Context, id models.ID) (models.Task, error) {
	var w wireTask
	path := fmt.Sprintf("/api/tasks/%s/toggle", url.PathEscape(id.String()))
	if err := c.do(ctx, http.MethodPut, path, nil, &w); err != nil {
		return models.Task{}, err
	}
	return w.toModel(), nil
}

func (c *Client) DeleteTask(ctx context.Context, id models.ID) error {
	path := fmt.Sprintf("/api/tasks/%s", url.PathEscape(id.String()))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) FetchChat(ctx context.Context) ([]models.ChatMessage, error) {
	var w struct {
		Messages []wireMessage `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/coach", nil, &w); err != nil {
		return nil, err
	}

	var out []models.ChatMessage
	for _, m := range w.Messages {
		out = append(out, m.toModel())
	}
	return out, nil
}

func (c *Client) SendChat(ctx context.Context, msg models.ChatMessage) (ChatReply, error) {
	body := map[string]interface{}{
		"newMessage": map[string]string{
			"from": string(msg.From),
			"text": msg.Text,
			"date": msg.Date.Format(time.RFC3339),
		},
	}

	var w struct {
		Reply     string `json:"reply"`
		MessageID string `json:"messageId"`
		ReplyID   string `json:"replyId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/coach", body, &w); err != nil {
		return ChatReply{}, err
	}

	return ChatReply{
		Reply:     w.Reply,
		MessageID: models.NormalizeID(w.MessageID),
		ReplyID:   models.NormalizeID(w.ReplyID),
	}, nil
}

func (c *Client) ClearChat(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/coach", nil, nil)
}
