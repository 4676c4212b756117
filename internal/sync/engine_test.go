package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/auth"
	"github.com/julianstephens/lifelog-cli/internal/models"
	"github.com/julianstephens/lifelog-cli/internal/remote"
	"github.com/julianstephens/lifelog-cli/internal/storage"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func authedSession() auth.Session {
	return auth.Session{Token: "tok", UserID: "u1"}
}

func setupTestEngine(t *testing.T, gw remote.Gateway, session auth.Session) (*Engine, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	e := New(store, gw, nil, session)
	e.now = func() time.Time { return testNow }
	return e, store
}

func seedHabits(t *testing.T, store *storage.MemoryStore, session auth.Session, habits ...models.Habit) {
	t.Helper()
	snap := models.Snapshot{
		Habits:    habits,
		LastReset: testNow.Format("2006-01-02"),
	}
	if err := store.Set(storage.SnapshotKey(session.UserID), snap); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
}

func TestLoadSeedsDefaultsForGuest(t *testing.T) {
	e, _ := setupTestEngine(t, nil, auth.Session{})

	snap, err := e.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Habits) != 3 {
		t.Fatalf("got %d default habits, want 3", len(snap.Habits))
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("got %d messages, want welcome greeting only", len(snap.Messages))
	}
	for _, h := range snap.Habits {
		if !h.ID.IsLocal() {
			t.Errorf("default habit %q should carry a local id, got %q", h.Name, h.ID)
		}
	}
}

func TestLoadKeepsLocalWhenRemoteFails(t *testing.T) {
	gw := newFakeGateway()
	gw.fetchErr = &remote.TransientError{Err: errors.New("connection refused")}
	e, store := setupTestEngine(t, gw, authedSession())
	seedHabits(t, store, e.session,
		models.Habit{ID: "h1", Name: "Read", Streak: 4},
		models.Habit{ID: "h2", Name: "Run", Streak: 2},
		models.Habit{ID: "h3", Name: "Meditate"},
	)

	snap, err := e.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for transient remote failures", err)
	}
	if len(snap.Habits) != 3 {
		t.Fatalf("got %d habits, want all 3 local habits retained", len(snap.Habits))
	}
	if snap.Habits[0].Streak != 4 {
		t.Errorf("streak = %d, want 4 untouched", snap.Habits[0].Streak)
	}
	if gw.calls["FetchSnapshot"] != 1 {
		t.Errorf("FetchSnapshot called %d times, want 1", gw.calls["FetchSnapshot"])
	}
}

func TestLoadMergeNeverDropsLocalLists(t *testing.T) {
	gw := newFakeGateway()
	gw.snapshot = models.Snapshot{Mood: "🙂 Calm"} // empty lists
	e, store := setupTestEngine(t, gw, authedSession())
	seedHabits(t, store, e.session,
		models.Habit{ID: "h1", Name: "Read"},
		models.Habit{ID: "h2", Name: "Run"},
	)

	snap, err := e.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Habits) != 2 {
		t.Fatalf("got %d habits, want local list kept over empty remote", len(snap.Habits))
	}
	if snap.Mood != "🙂 Calm" {
		t.Errorf("mood = %q, want remote value adopted", snap.Mood)
	}
}

func TestLoadNonEmptyRemoteListWins(t *testing.T) {
	gw := newFakeGateway()
	gw.snapshot = models.Snapshot{
		Habits: []models.Habit{{ID: "srv-1", Name: "Stretch"}},
	}
	e, store := setupTestEngine(t, gw, authedSession())
	seedHabits(t, store, e.session,
		models.Habit{ID: "h1", Name: "Read"},
		models.Habit{ID: "h2", Name: "Run"},
	)

	snap, err := e.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Habits) != 1 || snap.Habits[0].ID != "srv-1" {
		t.Fatalf("habits = %+v, want the remote list to replace local", snap.Habits)
	}
}

func TestLoadSurfacesRejectedCredential(t *testing.T) {
	gw := newFakeGateway()
	gw.fetchErr = remote.ErrUnauthorized
	e, store := setupTestEngine(t, gw, authedSession())
	seedHabits(t, store, e.session, models.Habit{ID: "h1", Name: "Read"})

	snap, err := e.Load(context.Background())
	if !errors.Is(err, remote.ErrUnauthorized) {
		t.Fatalf("Load() error = %v, want ErrUnauthorized", err)
	}
	if len(snap.Habits) != 1 {
		t.Errorf("local data should survive a rejected credential, got %d habits", len(snap.Habits))
	}
}

func TestLoadResetsHabitsOnNewDay(t *testing.T) {
	e, store := setupTestEngine(t, nil, auth.Session{})
	yesterday := testNow.AddDate(0, 0, -1).Format("2006-01-02")
	snap := models.Snapshot{
		Habits: []models.Habit{
			{ID: "h1", Name: "Read", Completed: true, Streak: 5},
			{ID: "h2", Name: "Run", Completed: true, Streak: 1},
		},
		LastReset: yesterday,
	}
	if err := store.Set(storage.SnapshotKey(""), snap); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	got, err := e.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, h := range got.Habits {
		if h.Completed {
			t.Errorf("habit %q still completed after daily reset", h.Name)
		}
	}
	if got.Habits[0].Streak != 5 {
		t.Errorf("streak = %d, want 5: resets must not touch streaks", got.Habits[0].Streak)
	}
	if got.LastReset != testNow.Format("2006-01-02") {
		t.Errorf("lastReset = %q, want today", got.LastReset)
	}
}

func TestRefreshChatAdoptsRemoteHistory(t *testing.T) {
	gw := newFakeGateway()
	gw.snapshot = models.Snapshot{Messages: []models.ChatMessage{
		{ID: "srv-1", Text: "hello"},
		{ID: "srv-2", Text: "hi there"},
	}}
	e, _ := setupTestEngine(t, gw, authedSession())
	e.snap = models.Snapshot{Messages: []models.ChatMessage{{ID: "m1", Text: "stale"}}}

	got := e.RefreshChat(context.Background())
	if len(got) != 2 || got[0].ID != "srv-1" {
		t.Fatalf("messages = %+v, want the remote history", got)
	}
	if gw.calls["FetchChat"] != 1 {
		t.Errorf("FetchChat called %d times, want 1", gw.calls["FetchChat"])
	}
}

func TestRefreshChatKeepsLocalOnFailureOrEmpty(t *testing.T) {
	local := []models.ChatMessage{{ID: "m1", Text: "kept"}}

	gw := newFakeGateway()
	gw.chatErr = &remote.TransientError{Err: errors.New("timeout")}
	e, _ := setupTestEngine(t, gw, authedSession())
	e.snap = models.Snapshot{Messages: local}
	if got := e.RefreshChat(context.Background()); len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("messages = %+v, want local history kept on fetch failure", got)
	}

	// Empty remote history never wipes a local conversation
	gw = newFakeGateway()
	e, _ = setupTestEngine(t, gw, authedSession())
	e.snap = models.Snapshot{Messages: local}
	if got := e.RefreshChat(context.Background()); len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("messages = %+v, want local history kept over empty remote", got)
	}
}

func TestListJournalsPrefersRemote(t *testing.T) {
	gw := newFakeGateway()
	gw.listPage = &remote.JournalPage{
		Journals:    []models.Journal{{ID: "srv-1", Text: "hello"}},
		Total:       11,
		TotalPages:  2,
		CurrentPage: 1,
	}
	e, _ := setupTestEngine(t, gw, authedSession())

	page := e.ListJournals(context.Background(), 1, 10)
	if page.Total != 11 || page.TotalPages != 2 {
		t.Errorf("page meta = %+v, want remote metadata passed through", page)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "srv-1" {
		t.Errorf("items = %+v, want remote journals", page.Items)
	}
}

func TestListJournalsFallsBackToLocal(t *testing.T) {
	gw := newFakeGateway() // ListJournals fails unless scripted
	e, _ := setupTestEngine(t, gw, authedSession())
	e.snap = models.Snapshot{Journals: []models.Journal{
		{ID: "j1", Text: "old", CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "j2", Text: "new", CreatedAt: testNow.Add(-1 * time.Hour)},
		{ID: "j3", Text: "oldest", CreatedAt: testNow.Add(-3 * time.Hour)},
	}}

	page := e.ListJournals(context.Background(), 1, 2)
	if page.Total != 3 || page.TotalPages != 2 {
		t.Fatalf("page meta = %+v, want total 3 over 2 pages", page)
	}
	if page.Items[0].ID != "j2" || page.Items[1].ID != "j1" {
		t.Errorf("items = %+v, want newest first", page.Items)
	}
}
