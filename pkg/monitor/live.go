package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/0xmhha/pomodoro/pkg/quotes"
	"github.com/0xmhha/pomodoro/pkg/timer"
	"github.com/0xmhha/pomodoro/pkg/watcher"
)

// LiveSession streams timer updates for an interactive display.
type LiveSession struct {
	config  Config
	logger  logger.Logger
	engine  Timer
	quotes  QuoteSource
	watcher watcher.Watcher
	loader  ConfigLoader

	engineEvents <-chan timer.Event

	mu       sync.Mutex
	running  bool
	closed   bool
	stopChan chan struct{}
	cancel   context.CancelFunc

	// Update channel for consumers
	updates chan Update
}

// New creates a live session.
//
// engine and source are required. w and loader may be nil; config reload
// is enabled only when both are set and cfg.ConfigPath is not empty.
func New(cfg Config, engine Timer, source QuoteSource, w watcher.Watcher, loader ConfigLoader, log logger.Logger) (*LiveSession, error) {
	if engine == nil || source == nil {
		return nil, fmt.Errorf("%w: engine and quote source are required", ErrInvalidConfig)
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = time.Second
	}
	if cfg.WeeklyGoal <= 0 {
		cfg.WeeklyGoal = aggregator.DefaultWeeklyGoal
	}

	m := &LiveSession{
		config:       cfg,
		logger:       log,
		engine:       engine,
		quotes:       source,
		watcher:      w,
		loader:       loader,
		engineEvents: engine.Subscribe(64),
		updates:      make(chan Update, 16),
	}

	log.Debug("live session created",
		"refresh_interval", cfg.RefreshInterval,
		"config_path", cfg.ConfigPath)

	return m, nil
}

// Start begins streaming updates. It returns once the background
// goroutines are running; they end with ctx, Stop or Close.
func (m *LiveSession) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrMonitorClosed
	}
	if m.running {
		return ErrMonitorRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.stopChan = make(chan struct{})
	m.running = true

	var fileEvents <-chan watcher.Event
	var fileErrors <-chan error
	if m.reloadEnabled() {
		if err := m.watcher.Start(ctx, []string{m.config.ConfigPath}); err != nil {
			m.logger.Warn("config reload disabled",
				"path", m.config.ConfigPath,
				"error", err)
		} else {
			fileEvents = m.watcher.Events()
			fileErrors = m.watcher.Errors()
		}
	}

	go m.quotes.Run(ctx, func(quotes.Quote) {
		m.sendUpdate(nil, false)
	})
	go m.processEvents(ctx, m.stopChan, fileEvents, fileErrors)
	go m.periodicUpdates(ctx, m.stopChan)

	m.sendUpdateLocked(nil, false)

	m.logger.Info("live session started")
	return nil
}

// Stop implements a graceful stop; Updates stays open until Close.
func (m *LiveSession) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrMonitorClosed
	}
	if !m.running {
		return ErrMonitorNotRunning
	}

	m.stopLocked()
	m.logger.Info("live session stopped")
	return nil
}

// Updates returns a channel for receiving live updates.
func (m *LiveSession) Updates() <-chan Update {
	return m.updates
}

// Snapshot builds an update from the current state without sending it.
func (m *LiveSession) Snapshot() Update {
	return m.buildUpdate(nil, false)
}

// Close stops the session and closes the update channel. The watcher
// is owned by the caller and is only stopped, not closed.
func (m *LiveSession) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	if m.running {
		m.stopLocked()
	}
	m.closed = true
	close(m.updates)

	m.logger.Debug("live session closed")
	return nil
}

func (m *LiveSession) stopLocked() {
	m.cancel()
	close(m.stopChan)
	m.running = false

	if m.reloadEnabled() {
		if err := m.watcher.Stop(); err != nil {
			m.logger.Debug("failed to stop watcher", "error", err)
		}
	}
}

func (m *LiveSession) reloadEnabled() bool {
	return m.watcher != nil && m.loader != nil && m.config.ConfigPath != ""
}

// processEvents forwards engine events and handles config file changes.
func (m *LiveSession) processEvents(ctx context.Context, stop <-chan struct{}, fileEvents <-chan watcher.Event, fileErrors <-chan error) {
	engineEvents := m.engineEvents

	for {
		select {
		case <-ctx.Done():
			return

		case <-stop:
			return

		case event, ok := <-engineEvents:
			if !ok {
				engineEvents = nil
				continue
			}
			if event.Type == timer.EventTick {
				continue
			}
			m.sendUpdate(&event, false)

		case event, ok := <-fileEvents:
			if !ok {
				fileEvents = nil
				continue
			}
			m.handleConfigChange(event)

		case err, ok := <-fileErrors:
			if !ok {
				fileErrors = nil
				continue
			}
			m.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleConfigChange reloads the config and applies its settings overrides.
func (m *LiveSession) handleConfigChange(event watcher.Event) {
	m.logger.Debug("config change detected",
		"path", event.Path,
		"op", event.Op)

	if event.Op == watcher.OpRemove || event.Op == watcher.OpRename {
		return
	}

	cfg, err := m.loader.Load()
	if err != nil {
		m.logger.Warn("failed to reload config, keeping current settings",
			"path", event.Path,
			"error", err)
		return
	}

	if cfg.Settings.Empty() {
		return
	}

	applied := m.engine.UpdateSettings(cfg.Settings)
	m.logger.Info("settings reloaded",
		"focus_minutes", applied.FocusDurationMinutes,
		"break_minutes", applied.BreakDurationMinutes,
		"sound_enabled", applied.SoundEnabled)

	m.sendUpdate(nil, true)
}

// periodicUpdates sends updates on every refresh interval.
func (m *LiveSession) periodicUpdates(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(m.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-stop:
			return

		case <-ticker.C:
			m.sendUpdate(nil, false)
		}
	}
}

func (m *LiveSession) buildUpdate(event *timer.Event, reloaded bool) Update {
	stats := m.engine.Stats()
	return Update{
		Timestamp:      time.Now(),
		State:          m.engine.State(),
		Quote:          m.quotes.Current(),
		Stats:          stats,
		WeeklyProgress: aggregator.WeeklyProgress(stats.SessionsThisWeek, m.config.WeeklyGoal),
		Event:          event,
		Reloaded:       reloaded,
	}
}

// sendUpdate sends an update to the updates channel.
func (m *LiveSession) sendUpdate(event *timer.Event, reloaded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendUpdateLocked(event, reloaded)
}

func (m *LiveSession) sendUpdateLocked(event *timer.Event, reloaded bool) {
	if m.closed || !m.running {
		return
	}

	// Non-blocking send
	select {
	case m.updates <- m.buildUpdate(event, reloaded):
	default:
		m.logger.Debug("updates channel full, dropping update")
	}
}
