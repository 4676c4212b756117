package storage

import (
	"github.com/julianstephens/lifelog-cli/internal/logger"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

// Fallback wraps a Provider and degrades to an in-memory store when the
// durable backend is absent or starts failing (missing storage, quota or
// filesystem errors). Callers never see a storage error as data loss: once
// degraded, snapshots live in memory for the rest of the process.
type Fallback struct {
	durable  Provider
	memory   *MemoryStore
	degraded bool
}

func NewFallback(durable Provider) *Fallback {
	return &Fallback{
		durable: durable,
		memory:  NewMemoryStore(),
	}
}

// Degraded reports whether the durable backend has been abandoned
func (s *Fallback) Degraded() bool {
	return s.degraded
}

func (s *Fallback) degrade(op string, err error) {
	if !s.degraded {
		logger.Warn("durable storage unavailable, continuing in memory", "op", op, "error", err)
	}
	s.degraded = true
}

func (s *Fallback) Init() error {
	if err := s.durable.Init(); err != nil {
		s.degrade("init", err)
	}
	return nil
}

func (s *Fallback) Load() error {
	if s.degraded {
		return nil
	}
	if err := s.durable.Load(); err != nil {
		s.degrade("load", err)
	}
	return nil
}

func (s *Fallback) Close() error {
	if s.degraded {
		return nil
	}
	return s.durable.Close()
}

func (s *Fallback) Get(userKey string) (models.Snapshot, bool, error) {
	if !s.degraded {
		snap, ok, err := s.durable.Get(userKey)
		if err == nil {
			return snap, ok, nil
		}
		s.degrade("get", err)
	}
	return s.memory.Get(userKey)
}

func (s *Fallback) Set(userKey string, snap models.Snapshot) error {
	// Mirror into memory so a mid-process degradation keeps the latest state
	_ = s.memory.Set(userKey, snap)
	if !s.degraded {
		if err := s.durable.Set(userKey, snap); err != nil {
			s.degrade("set", err)
		}
	}
	return nil
}

func (s *Fallback) Clear(userKey string) error {
	_ = s.memory.Clear(userKey)
	if !s.degraded {
		if err := s.durable.Clear(userKey); err != nil {
			s.degrade("clear", err)
		}
	}
	return nil
}

func (s *Fallback) GetConfigPath() string {
	return s.durable.GetConfigPath()
}
