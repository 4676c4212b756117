package storage

import "github.com/julianstephens/lifelog-cli/internal/models"

// MemoryStore holds snapshots for the process lifetime only. It backs the
// degraded mode when durable storage is unavailable, and tests.
type MemoryStore struct {
	snapshots map[string]models.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string]models.Snapshot),
	}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Get(userKey string) (models.Snapshot, bool, error) {
	snap, ok := s.snapshots[userKey]
	return snap, ok, nil
}

func (s *MemoryStore) Set(userKey string, snap models.Snapshot) error {
	s.snapshots[userKey] = snap
	return nil
}

func (s *MemoryStore) Clear(userKey string) error {
	delete(s.snapshots, userKey)
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ""
}
