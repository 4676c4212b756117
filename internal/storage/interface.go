package storage

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

var (
	// ErrNotInitialized is returned when the store file does not exist yet
	ErrNotInitialized = errors.New("storage not initialized, run 'lifelog init' first")
	// ErrNotLoaded is returned when an operation runs before Load
	ErrNotLoaded = errors.New("storage not loaded")
)

// Provider is the durable local store. One serialized snapshot is held per
// namespaced user key; switching accounts never leaks data between
// snapshots.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshots
	Get(userKey string) (models.Snapshot, bool, error)
	Set(userKey string, snap models.Snapshot) error
	Clear(userKey string) error

	// Utils
	GetConfigPath() string
}

// SnapshotKey namespaces the persisted snapshot for a user identity. An
// empty id maps to the shared guest key.
func SnapshotKey(userID string) string {
	if userID == "" {
		userID = constants.GuestUserID
	}
	return fmt.Sprintf("%s:%s", constants.SnapshotKeyPrefix, userID)
}
