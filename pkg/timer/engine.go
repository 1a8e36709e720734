package timer

import (
	"fmt"
	"sync"
	"time"

	"github.com/0xmhha/pomodoro/pkg/aggregator"
	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/0xmhha/pomodoro/pkg/session"
	"github.com/0xmhha/pomodoro/pkg/settings"
	"github.com/0xmhha/pomodoro/pkg/sound"
	"github.com/0xmhha/pomodoro/pkg/store"
)

// Engine is the focus/break countdown state machine.
type Engine struct {
	options Config
	prefs   *settings.Store
	history *session.Log
	player  sound.Player
	logger  logger.Logger

	mu          sync.Mutex
	mode        session.Mode
	remaining   int
	running     bool
	nearEndRung bool
	stopCh      chan struct{}
	events      []chan Event
	closed      bool
}

// New creates an idle engine in focus mode, armed to the persisted focus
// duration. Settings and the session log are loaded from kv; load
// failures are logged and never fatal.
func New(options Config, kv store.Store, player sound.Player, log logger.Logger) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.NearEndSeconds <= 0 {
		options.NearEndSeconds = DefaultNearEndSeconds
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if player == nil {
		player = sound.Noop()
	}

	engine := &Engine{
		options: options,
		prefs:   settings.NewStore(kv, log),
		history: session.NewLog(kv, log),
		player:  player,
		logger:  log,
		mode:    session.ModeFocus,
	}
	engine.armLocked()
	return engine
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full. Channels are closed by Close.
func (e *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(ch)
		return ch
	}
	e.events = append(e.events, ch)
	return ch
}

// Start begins counting down. It is a no-op while running.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running || e.closed {
		return
	}
	e.running = true
	stop := make(chan struct{})
	e.stopCh = stop
	go e.run(stop)

	e.emitLocked(EventStateChange, nil)
}

// Pause stops counting down and keeps the remaining time. Idempotent.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}
	e.pauseLocked()
	e.emitLocked(EventStateChange, nil)
}

// Reset pauses and re-arms the current mode to its full duration.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pauseLocked()
	e.armLocked()
	e.emitLocked(EventStateChange, nil)
}

// SwitchMode pauses, changes mode and arms the new mode's duration.
// Switching to the current mode behaves like Reset.
func (e *Engine) SwitchMode(mode session.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", session.ErrInvalidMode, mode)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.switchModeLocked(mode)
	e.emitLocked(EventStateChange, nil)
	return nil
}

// UpdateSettings clamps and merges u, persists the result and returns it.
//
// While idle the countdown is re-armed to the new duration of the current
// mode. While running the remaining time is kept, but lowered to the new
// duration if it would exceed it.
func (e *Engine) UpdateSettings(u settings.Update) settings.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()

	updated := e.prefs.Update(u)
	e.afterSettingsLocked(updated)
	return updated
}

// ResetSettings restores the default settings and persists them.
func (e *Engine) ResetSettings() settings.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()

	updated := e.prefs.ResetToDefault()
	e.afterSettingsLocked(updated)
	return updated
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Settings returns the active settings.
func (e *Engine) Settings() settings.Settings {
	return e.prefs.Current()
}

// Sessions returns a copy of the session log.
func (e *Engine) Sessions() []session.Session {
	return e.history.All()
}

// Stats derives statistics from the session log as of now.
func (e *Engine) Stats() aggregator.Statistics {
	return aggregator.Summarize(e.history.All(), e.options.Now())
}

// Close stops the countdown and closes every subscriber channel.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.pauseLocked()
	e.closed = true
	for _, ch := range e.events {
		close(ch)
	}
	e.events = nil
	return nil
}

func (e *Engine) run(stop chan struct{}) {
	ticker := time.NewTicker(e.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.mu.Lock()
			// A tick that raced with Pause or a later Start belongs to a
			// stopped loop and must not decrement.
			if e.stopCh == stop {
				e.tickLocked()
			}
			e.mu.Unlock()
		}
	}
}

// tick advances the countdown by one second. No-op while idle.
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickLocked()
}

func (e *Engine) tickLocked() {
	if !e.running {
		return
	}

	if e.remaining > 0 {
		e.remaining--
		e.emitLocked(EventTick, nil)
		if e.remaining >= 1 && e.remaining <= e.options.NearEndSeconds {
			e.emitLocked(EventNearEnd, nil)
			if !e.nearEndRung {
				e.nearEndRung = true
				e.playLocked(sound.ToneNearEnd)
			}
		}
		return
	}

	e.completeLocked()
}

func (e *Engine) completeLocked() {
	e.pauseLocked()

	completed := session.NewSession(e.mode, e.prefs.Current().DurationSeconds(e.mode), e.options.Now())
	if err := e.history.Append(completed); err != nil {
		e.logger.Warn("failed to record session",
			"mode", completed.Type,
			"error", err)
	}

	e.logger.Info("session completed",
		"id", completed.ID,
		"mode", completed.Type,
		"duration", completed.DurationSeconds)

	e.emitLocked(EventCompleted, &completed)
	e.playLocked(sound.ToneComplete)

	e.switchModeLocked(e.mode.Opposite())
	e.emitLocked(EventStateChange, nil)
}

func (e *Engine) afterSettingsLocked(updated settings.Settings) {
	duration := updated.DurationSeconds(e.mode)
	if !e.running {
		e.armLocked()
	} else if e.remaining > duration {
		e.remaining = duration
	}
	e.emitLocked(EventSettingsChange, nil)
}

func (e *Engine) pauseLocked() {
	e.running = false
	if e.stopCh != nil {
		close(e.stopCh)
		e.stopCh = nil
	}
}

func (e *Engine) switchModeLocked(mode session.Mode) {
	e.pauseLocked()
	e.mode = mode
	e.armLocked()
}

func (e *Engine) armLocked() {
	e.remaining = e.prefs.Current().DurationSeconds(e.mode)
	e.nearEndRung = false
}

func (e *Engine) playLocked(tone sound.Tone) {
	if !e.prefs.Current().SoundEnabled {
		return
	}
	if err := e.player.Play(tone); err != nil {
		e.logger.Warn("failed to play tone",
			"tone", tone.String(),
			"error", err)
	}
}

func (e *Engine) stateLocked() State {
	return State{
		Mode:             e.mode,
		SecondsRemaining: e.remaining,
		Running:          e.running,
		Settings:         e.prefs.Current(),
	}
}

func (e *Engine) emitLocked(eventType EventType, completed *session.Session) {
	event := Event{
		Type:    eventType,
		State:   e.stateLocked(),
		Session: completed,
		At:      e.options.Now(),
	}
	for _, ch := range e.events {
		select {
		case ch <- event:
		default:
		}
	}
}
