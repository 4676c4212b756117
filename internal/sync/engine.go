package sync

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/auth"
	"github.com/julianstephens/lifelog-cli/internal/coach"
	"github.com/julianstephens/lifelog-cli/internal/logger"
	"github.com/julianstephens/lifelog-cli/internal/models"
	"github.com/julianstephens/lifelog-cli/internal/remote"
	"github.com/julianstephens/lifelog-cli/internal/storage"
)

// Engine keeps the durable local snapshot consistent with the remote store
// while applying mutations optimistically, so callers never block on
// network latency.
//
// The in-memory snapshot is the single shared mutable resource. All
// mutations run to completion on the calling goroutine (single-threaded,
// event-driven model), so the engine takes no locks; out-of-order remote
// confirmations are handled by per-record sequence numbers instead.
type Engine struct {
	store   storage.Provider
	gateway remote.Gateway
	replier coach.Replier
	session auth.Session

	snap models.Snapshot
	// seq tracks the most recently issued request per record; stale
	// confirmations are discarded
	seq map[models.ID]uint64
	now func() time.Time
}

// New builds an engine. gateway and replier may be nil for pure
// guest/offline operation.
func New(store storage.Provider, gateway remote.Gateway, replier coach.Replier, session auth.Session) *Engine {
	return &Engine{
		store:   store,
		gateway: gateway,
		replier: replier,
		session: session,
		seq:     make(map[models.ID]uint64),
		now:     time.Now,
	}
}

// Session returns the session the engine was built with
func (e *Engine) Session() auth.Session {
	return e.session
}

func (e *Engine) online() bool {
	return e.gateway != nil && e.session.Authenticated()
}

func (e *Engine) userKey() string {
	return storage.SnapshotKey(e.session.UserID)
}

func (e *Engine) today() string {
	return e.now().Format("2006-01-02")
}

// persist writes the in-memory snapshot to the durable store. Storage
// failures are logged, never surfaced: the store wrapper degrades to
// memory on its own.
func (e *Engine) persist() {
	if err := e.store.Set(e.userKey(), e.snap); err != nil {
		logger.Warn("failed to persist snapshot", "error", err)
	}
}

// Load merges the durable local snapshot with a freshly fetched remote
// snapshot. The local copy is read first so the caller always has data;
// the remote fetch is best-effort. A remote list never replaces a
// non-empty local list with nothing.
//
// The returned error is non-nil only when the credential was rejected, so
// the caller can prompt for re-authentication; the snapshot is valid and
// local data is retained either way.
func (e *Engine) Load(ctx context.Context) (models.Snapshot, error) {
	local, ok, err := e.store.Get(e.userKey())
	if err != nil {
		logger.Warn("failed to read local snapshot", "error", err)
		ok = false
	}
	if !ok {
		local = models.DefaultSnapshot(e.now())
	}

	effective := local
	var authErr error
	if e.online() {
		remoteSnap, err := e.gateway.FetchSnapshot(ctx)
		switch {
		case err == nil:
			effective = MergeSnapshots(local, remoteSnap)
		case errors.Is(err, remote.ErrUnauthorized):
			logger.Warn("credential rejected, keeping local snapshot")
			authErr = err
		default:
			logger.Warn("remote fetch failed, using local snapshot", "error", err)
		}
	}

	effective.NormalizeIDs()
	effective = ResetIfNewDay(effective, e.today())

	e.snap = effective
	e.persist()
	return effective.Clone(), authErr
}

// Current returns a copy of the in-memory snapshot
func (e *Engine) Current() models.Snapshot {
	return e.snap.Clone()
}

// ListJournals returns one page of journal entries, newest first. The
// remote listing is preferred when a credential is present; any remote
// failure falls back to windowing the local snapshot with the exact same
// pagination function.
func (e *Engine) ListJournals(ctx context.Context, page, size int) Page[models.Journal] {
	if e.online() {
		remotePage, err := e.gateway.ListJournals(ctx, page, size)
		if err == nil {
			return Page[models.Journal]{
				Items:       remotePage.Journals,
				Total:       remotePage.Total,
				TotalPages:  remotePage.TotalPages,
				CurrentPage: remotePage.CurrentPage,
			}
		}
		logger.Warn("remote journal listing failed, paging local snapshot", "error", err)
	}

	journals := append([]models.Journal(nil), e.snap.Journals...)
	sort.SliceStable(journals, func(i, j int) bool {
		return journals[i].CreatedAt.After(journals[j].CreatedAt)
	})
	return Paginate(journals, page, size)
}

// RefreshChat replaces the local conversation with the remote history.
// The non-regression rule applies: an empty remote history never wipes a
// local conversation, and any fetch failure keeps the local one.
func (e *Engine) RefreshChat(ctx context.Context) []models.ChatMessage {
	if e.online() {
		remoteMsgs, err := e.gateway.FetchChat(ctx)
		if err != nil {
			logger.Warn("remote chat fetch failed, keeping local history", "error", err)
		} else if merged := mergeLists(e.snap.Messages, remoteMsgs); len(merged) > 0 {
			e.snap.Messages = merged
			e.persist()
		}
	}
	return append([]models.ChatMessage(nil), e.snap.Messages...)
}

// bumpSeq issues the next sequence number for a record
func (e *Engine) bumpSeq(id models.ID) uint64 {
	e.seq[id]++
	return e.seq[id]
}

// latest reports whether seqNo is the most recently issued request for the
// record
func (e *Engine) latest(id models.ID, seqNo uint64) bool {
	return e.seq[id] == seqNo
}
