package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/lifelog-cli/internal/models"
)

type Store struct {
	Version   int                        `json:"version"`
	Snapshots map[string]models.Snapshot `json:"snapshots"` // user key -> snapshot
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:   1,
		Snapshots: make(map[string]models.Snapshot),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Snapshots == nil {
		s.store.Snapshots = make(map[string]models.Snapshot)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(userKey string) (models.Snapshot, bool, error) {
	if s.store == nil {
		return models.Snapshot{}, false, ErrNotLoaded
	}
	snap, ok := s.store.Snapshots[userKey]
	return snap, ok, nil
}

func (s *JSONStore) Set(userKey string, snap models.Snapshot) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Snapshots[userKey] = snap
	return s.save()
}

func (s *JSONStore) Clear(userKey string) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	delete(s.store.Snapshots, userKey)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
