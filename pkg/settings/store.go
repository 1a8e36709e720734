package settings

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/0xmhha/pomodoro/pkg/store"
)

// Store holds the process-wide settings and persists every change.
type Store struct {
	kv     store.Store
	logger logger.Logger

	mu      sync.RWMutex
	current Settings
}

// NewStore loads settings from kv, falling back to Default() on any failure.
func NewStore(kv store.Store, log logger.Logger) *Store {
	s := &Store{
		kv:      kv,
		logger:  log,
		current: Default(),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.kv.Get(Key)
	if errors.Is(err, store.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to load settings, using defaults",
			"key", Key,
			"error", err)
		return
	}

	loaded, err := Decode(data)
	if err != nil {
		s.logger.Warn("corrupt settings, using defaults",
			"key", Key,
			"error", err)
	}
	s.current = loaded
}

// Current returns the active settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update merges u into the current settings, persists them and returns the
// result. Persistence failures are logged and the in-memory value kept.
func (s *Store) Update(u Update) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.current.Apply(u)
	s.persistLocked()
	return s.current
}

// ResetToDefault restores and persists Default().
func (s *Store) ResetToDefault() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Default()
	s.persistLocked()
	return s.current
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(s.current)
	if err != nil {
		s.logger.Warn("failed to encode settings", "error", err)
		return
	}
	if err := s.kv.Put(Key, data); err != nil {
		s.logger.Warn("failed to persist settings",
			"key", Key,
			"error", err)
	}
}
