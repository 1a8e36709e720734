package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/0xmhha/pomodoro/pkg/store"
)

// Log is the ordered, append-only session log.
type Log struct {
	kv     store.Store
	logger logger.Logger

	mu       sync.RWMutex
	sessions []Session
}

// NewLog loads the log from kv.
//
// Loading never fails: a missing key yields an empty log, an unreadable or
// corrupt payload is logged and replaced by an empty in-memory log, and
// individual malformed records are skipped.
func NewLog(kv store.Store, log logger.Logger) *Log {
	l := &Log{
		kv:       kv,
		logger:   log,
		sessions: make([]Session, 0, 16),
	}
	l.load()
	return l
}

// load reads the persisted array into memory.
func (l *Log) load() {
	data, err := l.kv.Get(Key)
	if errors.Is(err, store.ErrNotFound) {
		return
	}
	if err != nil {
		l.logger.Warn("failed to load session log, starting empty",
			"key", Key,
			"error", err)
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		l.logger.Warn("corrupt session log, starting empty",
			"key", Key,
			"error", err)
		return
	}

	for i, item := range raw {
		var s Session
		if err := json.Unmarshal(item, &s); err != nil {
			l.logger.Warn("skipping undecodable session",
				"index", i,
				"error", err)
			continue
		}
		if err := s.Validate(); err != nil {
			l.logger.Warn("skipping invalid session",
				"index", i,
				"id", s.ID,
				"error", err)
			continue
		}
		l.sessions = append(l.sessions, s)
	}

	l.logger.Debug("session log loaded", "count", len(l.sessions))
}

// Append validates s, adds it to the end of the log and persists the
// whole log.
//
// Returns ErrInvalidSession (nothing appended) or ErrPersist (appended in
// memory, not stored).
func (l *Log) Append(s Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sessions = append(l.sessions, s)

	data, err := json.Marshal(l.sessions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := l.kv.Put(Key, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	l.logger.Debug("session appended",
		"id", s.ID,
		"type", s.Type,
		"count", len(l.sessions))
	return nil
}

// All returns a copy of the log in append order.
func (l *Log) All() []Session {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Session, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// Len returns the number of sessions in the log.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sessions)
}
