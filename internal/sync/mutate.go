package sync

import (
	"context"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/coach"
	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/logger"
	"github.com/julianstephens/lifelog-cli/internal/models"
	"github.com/julianstephens/lifelog-cli/internal/remote"
)

// Result reports how a mutation reconciled. The optimistic change is
// already applied and persisted by the time a Result is returned; Notice
// carries a transient, non-blocking message when the remote store could
// not confirm it.
type Result struct {
	Confirmed bool   // the remote store acknowledged the change
	Local     bool   // final as a local-only change (guest/offline, or temp-id delete)
	Notice    string // transient notice for the UI, empty when nothing to report
}

const (
	noticeKept     = "Change saved locally; sync failed and will be retried on your next action."
	noticeReverted = "Sync failed; the change was reverted."
)

// listOps adapts one snapshot list for the generic reconciler. Every
// entity kind goes through the same three-phase protocol; only these
// accessors differ.
type listOps[T any] struct {
	get func(*models.Snapshot) []T
	set func(*models.Snapshot, []T)
	id  func(T) models.ID
}

var habitOps = listOps[models.Habit]{
	get: func(s *models.Snapshot) []models.Habit { return s.Habits },
	set: func(s *models.Snapshot, l []models.Habit) { s.Habits = l },
	id:  func(h models.Habit) models.ID { return h.ID },
}

var journalOps = listOps[models.Journal]{
	get: func(s *models.Snapshot) []models.Journal { return s.Journals },
	set: func(s *models.Snapshot, l []models.Journal) { s.Journals = l },
	id:  func(j models.Journal) models.ID { return j.ID },
}

var taskOps = listOps[models.Task]{
	get: func(s *models.Snapshot) []models.Task { return s.Tasks },
	set: func(s *models.Snapshot, l []models.Task) { s.Tasks = l },
	id:  func(t models.Task) models.ID { return t.ID },
}

var messageOps = listOps[models.ChatMessage]{
	get: func(s *models.Snapshot) []models.ChatMessage { return s.Messages },
	set: func(s *models.Snapshot, l []models.ChatMessage) { s.Messages = l },
	id:  func(m models.ChatMessage) models.ID { return m.ID },
}

// confirmInPlace substitutes the canonical record for the pending one,
// keeping its list position (no re-sort on confirmation). Stale
// confirmations, identified by sequence number, are discarded.
func confirmInPlace[T any](e *Engine, ops listOps[T], pendingID models.ID, seqNo uint64, canonical T) bool {
	if !e.latest(pendingID, seqNo) {
		logger.Debug("discarding stale confirmation", "id", pendingID)
		return false
	}

	list := ops.get(&e.snap)
	for i := range list {
		if ops.id(list[i]) == pendingID {
			list[i] = canonical
			ops.set(&e.snap, list)
			e.persist()
			return true
		}
	}
	// The record was removed locally while the request was in flight
	return false
}

// createRecord runs the apply/submit/confirm protocol for a creation. The
// record must already carry a temporary id. prepend controls list position
// (newest-first lists prepend, the chat log appends).
func createRecord[T any](e *Engine, ops listOps[T], rec T, prepend bool, submit func() (T, error)) (T, Result) {
	tempID := ops.id(rec)
	seqNo := e.bumpSeq(tempID)

	list := ops.get(&e.snap)
	if prepend {
		list = append([]T{rec}, list...)
	} else {
		list = append(list, rec)
	}
	ops.set(&e.snap, list)
	e.persist()

	if !e.online() {
		return rec, Result{Local: true}
	}

	canonical, err := submit()
	if err != nil {
		logger.Warn("create failed, keeping optimistic record", "id", tempID, "error", err)
		return rec, Result{Notice: noticeKept}
	}

	confirmInPlace(e, ops, tempID, seqNo, canonical)
	return canonical, Result{Confirmed: true}
}

// deleteRecord removes the record immediately. A record that only ever
// existed locally (temporary id) has no server counterpart, so no remote
// request is issued. A failed remote delete is logged and neither retried
// nor reverted; the removal stands.
func deleteRecord[T any](e *Engine, ops listOps[T], id models.ID, submit func() error) Result {
	e.bumpSeq(id)

	list := ops.get(&e.snap)
	kept := list[:0:0]
	for _, rec := range list {
		if ops.id(rec) != id {
			kept = append(kept, rec)
		}
	}
	ops.set(&e.snap, kept)
	e.persist()

	if id.IsLocal() || !e.online() {
		return Result{Local: true}
	}

	if err := submit(); err != nil {
		logger.Warn("remote delete failed, removal kept", "id", id, "error", err)
		return Result{}
	}
	return Result{Confirmed: true}
}

// toggleRecord applies an involutive change (toggle) optimistically. A
// transient submit failure re-applies the inverse so local state never
// disagrees with a rejected toggle; any other failure (e.g. the record was
// deleted by another client) keeps the optimistic state and is only
// logged.
func toggleRecord[T any](e *Engine, ops listOps[T], id models.ID, apply func(*T), submit func() (T, error)) (T, Result) {
	var zero T

	list := ops.get(&e.snap)
	idx := -1
	for i := range list {
		if ops.id(list[i]) == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, Result{Notice: "Record not found."}
	}

	seqNo := e.bumpSeq(id)
	apply(&list[idx])
	ops.set(&e.snap, list)
	e.persist()

	if id.IsLocal() || !e.online() {
		return list[idx], Result{Local: true}
	}

	canonical, err := submit()
	switch {
	case err == nil:
		confirmInPlace(e, ops, id, seqNo, canonical)
		return canonical, Result{Confirmed: true}
	case remote.IsTransient(err):
		// Re-apply the inverse of the optimistic change
		if e.latest(id, seqNo) {
			list = ops.get(&e.snap)
			if idx < len(list) && ops.id(list[idx]) == id {
				apply(&list[idx])
				ops.set(&e.snap, list)
				e.persist()
			}
		}
		logger.Warn("toggle failed, change reverted", "id", id, "error", err)
		return zero, Result{Notice: noticeReverted}
	default:
		logger.Warn("toggle not confirmed, keeping optimistic state", "id", id, "error", err)
		return list[idx], Result{Notice: noticeKept}
	}
}

// AddHabit creates a habit optimistically
func (e *Engine) AddHabit(ctx context.Context, name string) (models.Habit, Result) {
	habit := models.Habit{ID: models.NewLocalID(), Name: name}
	return createRecord(e, habitOps, habit, true, func() (models.Habit, error) {
		return e.gateway.AddHabit(ctx, name)
	})
}

// ToggleHabit flips a habit's completion and adjusts its streak
func (e *Engine) ToggleHabit(ctx context.Context, id models.ID) (models.Habit, Result) {
	return toggleRecord(e, habitOps, id,
		func(h *models.Habit) { h.Toggle() },
		func() (models.Habit, error) { return e.gateway.ToggleHabit(ctx, id) })
}

// DeleteHabit removes a habit optimistically
func (e *Engine) DeleteHabit(ctx context.Context, id models.ID) Result {
	return deleteRecord(e, habitOps, id, func() error {
		return e.gateway.DeleteHabit(ctx, id)
	})
}

// SetHabitCategory updates a habit's category locally. The remote store
// keeps no category field, so the change is always local-only.
func (e *Engine) SetHabitCategory(ctx context.Context, id models.ID, category string) Result {
	list := habitOps.get(&e.snap)
	for i := range list {
		if list[i].ID == id {
			list[i].Category = category
			habitOps.set(&e.snap, list)
			e.persist()
			return Result{Local: true}
		}
	}
	return Result{Notice: "Record not found."}
}

// AddJournal creates a journal entry optimistically (newest first)
func (e *Engine) AddJournal(ctx context.Context, text string) (models.Journal, Result) {
	entry := models.Journal{ID: models.NewLocalID(), Text: text, CreatedAt: e.now()}
	return createRecord(e, journalOps, entry, true, func() (models.Journal, error) {
		return e.gateway.AddJournal(ctx, text)
	})
}

// DeleteJournal removes a journal entry optimistically
func (e *Engine) DeleteJournal(ctx context.Context, id models.ID) Result {
	return deleteRecord(e, journalOps, id, func() error {
		return e.gateway.DeleteJournal(ctx, id)
	})
}

// AddTask creates a task optimistically. Empty priority defaults to
// medium; status always starts pending.
func (e *Engine) AddTask(ctx context.Context, title, description string, priority constants.TaskPriority, dueDate *time.Time) (models.Task, Result) {
	if priority == "" {
		priority = constants.PriorityMedium
	}
	task := models.Task{
		ID:          models.NewLocalID(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      constants.StatusPending,
		DueDate:     dueDate,
		CreatedAt:   e.now(),
	}
	return createRecord(e, taskOps, task, true, func() (models.Task, error) {
		return e.gateway.AddTask(ctx, task)
	})
}

// UpdateTask replaces a task's fields optimistically. A task the remote
// store has never acknowledged (temporary id) stays a local-only change.
func (e *Engine) UpdateTask(ctx context.Context, task models.Task) (models.Task, Result) {
	seqNo := e.bumpSeq(task.ID)

	list := taskOps.get(&e.snap)
	idx := -1
	for i := range list {
		if list[i].ID == task.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Task{}, Result{Notice: "Record not found."}
	}

	// Keep the completedAt invariant regardless of what the caller set
	task.SetStatus(task.Status, e.now())
	list[idx] = task
	taskOps.set(&e.snap, list)
	e.persist()

	if task.ID.IsLocal() || !e.online() {
		return task, Result{Local: true}
	}

	canonical, err := e.gateway.UpdateTask(ctx, task)
	if err != nil {
		logger.Warn("task update failed, keeping optimistic record", "id", task.ID, "error", err)
		return task, Result{Notice: noticeKept}
	}
	confirmInPlace(e, taskOps, task.ID, seqNo, canonical)
	return canonical, Result{Confirmed: true}
}

// ToggleTask flips a task between completed and pending
func (e *Engine) ToggleTask(ctx context.Context, id models.ID) (models.Task, Result) {
	return toggleRecord(e, taskOps, id,
		func(t *models.Task) { t.Toggle(e.now()) },
		func() (models.Task, error) { return e.gateway.ToggleTask(ctx, id) })
}

// DeleteTask removes a task optimistically
func (e *Engine) DeleteTask(ctx context.Context, id models.ID) Result {
	return deleteRecord(e, taskOps, id, func() error {
		return e.gateway.DeleteTask(ctx, id)
	})
}

// SetMood records today's mood optimistically
func (e *Engine) SetMood(ctx context.Context, mood string) Result {
	e.snap.Mood = mood
	e.persist()

	if !e.online() {
		return Result{Local: true}
	}
	if _, err := e.gateway.UpdateMood(ctx, mood); err != nil {
		logger.Warn("mood update failed, keeping local value", "error", err)
		return Result{Notice: noticeKept}
	}
	return Result{Confirmed: true}
}

// SetTheme switches the display theme optimistically
func (e *Engine) SetTheme(ctx context.Context, theme constants.Theme) Result {
	e.snap.Theme = theme
	e.persist()

	if !e.online() {
		return Result{Local: true}
	}
	if err := e.gateway.UpdateTheme(ctx, theme); err != nil {
		logger.Warn("theme update failed, keeping local value", "error", err)
		return Result{Notice: noticeKept}
	}
	return Result{Confirmed: true}
}

// SendChatMessage appends the user's turn, asks the reply collaborator for
// a coach response, and appends that too. Offline and failed calls fall
// back to the canned local reply; the user's message is never dropped.
func (e *Engine) SendChatMessage(ctx context.Context, text string) (models.ChatMessage, Result) {
	msg := models.ChatMessage{
		ID:   models.NewLocalID(),
		From: constants.SenderUser,
		Text: text,
		Date: e.now(),
	}
	seqNo := e.bumpSeq(msg.ID)

	history := append([]models.ChatMessage(nil), e.snap.Messages...)

	e.snap.Messages = append(e.snap.Messages, msg)
	e.persist()

	replier := e.replier
	if !e.online() || replier == nil {
		replier = coach.Canned{}
	}

	reply, err := replier.Reply(ctx, history, msg)
	confirmed := err == nil && e.online()
	if err != nil {
		logger.Warn("reply generation failed, using canned fallback", "error", err)
		reply = coach.Reply{Text: coach.FallbackText, MessageID: msg.ID, ReplyID: models.NewLocalID()}
	}

	// Adopt the canonical id for the user's turn when the server stored it
	if !reply.MessageID.IsLocal() && reply.MessageID != "" {
		confirmed = confirmInPlace(e, messageOps, msg.ID, seqNo, models.ChatMessage{
			ID:   reply.MessageID,
			From: msg.From,
			Text: msg.Text,
			Date: msg.Date,
		}) && confirmed
	}

	aiMsg := models.ChatMessage{
		ID:   reply.ReplyID,
		From: constants.SenderAI,
		Text: reply.Text,
		Date: e.now(),
	}
	if aiMsg.ID == "" {
		aiMsg.ID = models.NewLocalID()
	}
	e.snap.Messages = append(e.snap.Messages, aiMsg)
	e.persist()

	result := Result{Confirmed: confirmed}
	if err != nil {
		result.Notice = noticeKept
	} else if !e.online() {
		result.Local = true
	}
	return aiMsg, result
}

// ClearChat resets the conversation to the welcome greeting. The remote
// history is cleared best-effort; a failure is logged, not reverted.
func (e *Engine) ClearChat(ctx context.Context) Result {
	e.snap.Messages = []models.ChatMessage{{
		ID:   models.NewLocalID(),
		From: constants.SenderAI,
		Text: constants.WelcomeMessage,
		Date: e.now(),
	}}
	e.persist()

	if !e.online() {
		return Result{Local: true}
	}
	if err := e.gateway.ClearChat(ctx); err != nil {
		logger.Warn("remote chat clear failed, local reset kept", "error", err)
		return Result{}
	}
	return Result{Confirmed: true}
}
