package timer

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/0xmhha/pomodoro/pkg/session"
	"github.com/0xmhha/pomodoro/pkg/settings"
	"github.com/0xmhha/pomodoro/pkg/sound"
	"github.com/0xmhha/pomodoro/pkg/store"
)

var testNow = time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)

type recordingPlayer struct {
	mu    sync.Mutex
	tones []sound.Tone
	err   error
}

func (p *recordingPlayer) Play(tone sound.Tone) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tones = append(p.tones, tone)
	return p.err
}

func (p *recordingPlayer) played() []sound.Tone {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]sound.Tone(nil), p.tones...)
}

type failingPutStore struct {
	store.Store
}

func (failingPutStore) Put(string, []byte) error { return errors.New("disk full") }

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// newTestEngine returns an engine whose real ticker never fires, so tests
// drive the countdown through tick().
func newTestEngine(t *testing.T, kv store.Store, player sound.Player) *Engine {
	t.Helper()

	engine := New(Config{
		TickInterval: time.Hour,
		Now:          func() time.Time { return testNow },
	}, kv, player, logger.Noop())
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func ticks(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.tick()
	}
}

func drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case ev := <-ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func countType(events []Event, eventType EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

func TestNewEngineDefaults(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	state := engine.State()
	assert.Equal(t, session.ModeFocus, state.Mode)
	assert.Equal(t, 1500, state.SecondsRemaining)
	assert.False(t, state.Running)
	assert.Equal(t, "25:00", state.FormattedTime())
	assert.Equal(t, 0.0, state.Progress())
	assert.Equal(t, settings.Default(), engine.Settings())
	assert.Empty(t, engine.Sessions())
}

func TestFullFocusCountdownRecordsOneSession(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	engine.Start()
	ticks(engine, 1500)

	state := engine.State()
	assert.Equal(t, 0, state.SecondsRemaining)
	assert.True(t, state.Running)
	assert.Empty(t, engine.Sessions(), "reaching zero does not complete yet")

	engine.tick()

	sessions := engine.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, session.ModeFocus, sessions[0].Type)
	assert.Equal(t, 1500, sessions[0].DurationSeconds)
	assert.Equal(t, "2024-03-13", sessions[0].Date)
	assert.NotEmpty(t, sessions[0].ID)

	state = engine.State()
	assert.Equal(t, session.ModeBreak, state.Mode)
	assert.Equal(t, 300, state.SecondsRemaining)
	assert.False(t, state.Running, "next mode is armed, not started")

	ticks(engine, 10)
	assert.Len(t, engine.Sessions(), 1, "idle ticks never complete")
	assert.Equal(t, 300, engine.State().SecondsRemaining)
}

func TestBreakCompletionSwitchesToFocus(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)
	require.NoError(t, engine.SwitchMode(session.ModeBreak))

	engine.Start()
	ticks(engine, 301)

	sessions := engine.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, session.ModeBreak, sessions[0].Type)
	assert.Equal(t, 300, sessions[0].DurationSeconds)
	assert.Equal(t, session.ModeFocus, engine.State().Mode)
	assert.Equal(t, 1500, engine.State().SecondsRemaining)
}

func TestStartIsIdempotent(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	engine.Start()
	engine.Start()
	engine.tick()

	assert.Equal(t, 1499, engine.State().SecondsRemaining)
}

func TestPauseResumeHasNoDrift(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	engine.Start()
	ticks(engine, 10)
	engine.Pause()
	engine.Pause()
	ticks(engine, 5)

	state := engine.State()
	assert.False(t, state.Running)
	assert.Equal(t, 1490, state.SecondsRemaining)

	engine.Start()
	ticks(engine, 10)
	assert.Equal(t, 1480, engine.State().SecondsRemaining)
}

func TestReset(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	engine.Start()
	ticks(engine, 42)
	engine.Reset()

	state := engine.State()
	assert.False(t, state.Running)
	assert.Equal(t, 1500, state.SecondsRemaining)
	assert.Equal(t, session.ModeFocus, state.Mode)
}

func TestSwitchMode(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	engine.Start()
	ticks(engine, 3)
	require.NoError(t, engine.SwitchMode(session.ModeBreak))

	state := engine.State()
	assert.Equal(t, session.ModeBreak, state.Mode)
	assert.Equal(t, 300, state.SecondsRemaining)
	assert.False(t, state.Running)

	err := engine.SwitchMode(session.Mode("nap"))
	assert.ErrorIs(t, err, session.ErrInvalidMode)
	assert.Equal(t, session.ModeBreak, engine.State().Mode)
}

func TestProgressAndFormattedTime(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	engine.Start()
	ticks(engine, 750)

	state := engine.State()
	assert.InDelta(t, 50.0, state.Progress(), 0.0001)
	assert.Equal(t, "12:30", state.FormattedTime())
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{1500, "25:00"},
		{7200, "120:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestUpdateSettings(t *testing.T) {
	t.Run("idle re-arms", func(t *testing.T) {
		engine := newTestEngine(t, store.NewMemory(), nil)

		updated := engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(50)})
		assert.Equal(t, 50, updated.FocusDurationMinutes)
		assert.Equal(t, 3000, engine.State().SecondsRemaining)
	})

	t.Run("out of range is clamped", func(t *testing.T) {
		engine := newTestEngine(t, store.NewMemory(), nil)

		updated := engine.UpdateSettings(settings.Update{
			FocusDurationMinutes: intPtr(200),
			BreakDurationMinutes: intPtr(0),
		})
		assert.Equal(t, 120, updated.FocusDurationMinutes)
		assert.Equal(t, 1, updated.BreakDurationMinutes)
		assert.Equal(t, 7200, engine.State().SecondsRemaining)
	})

	t.Run("running keeps remaining", func(t *testing.T) {
		engine := newTestEngine(t, store.NewMemory(), nil)

		engine.Start()
		ticks(engine, 100)
		engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(45)})

		state := engine.State()
		assert.True(t, state.Running)
		assert.Equal(t, 1400, state.SecondsRemaining)
	})

	t.Run("running shrinks remaining to new duration", func(t *testing.T) {
		engine := newTestEngine(t, store.NewMemory(), nil)

		engine.Start()
		ticks(engine, 100)
		engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(10)})

		state := engine.State()
		assert.Equal(t, 600, state.SecondsRemaining)
		assert.LessOrEqual(t, state.SecondsRemaining, state.DurationSeconds())
	})

	t.Run("break change does not touch focus countdown", func(t *testing.T) {
		engine := newTestEngine(t, store.NewMemory(), nil)

		engine.UpdateSettings(settings.Update{BreakDurationMinutes: intPtr(15)})
		assert.Equal(t, 1500, engine.State().SecondsRemaining)
		assert.Equal(t, 15, engine.Settings().BreakDurationMinutes)
	})
}

func TestResetSettings(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)

	engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(45), SoundEnabled: boolPtr(false)})
	restored := engine.ResetSettings()

	assert.Equal(t, settings.Default(), restored)
	assert.Equal(t, 1500, engine.State().SecondsRemaining)
}

func TestStatePersistsAcrossEngines(t *testing.T) {
	kv := store.NewMemory()

	first := newTestEngine(t, kv, nil)
	first.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(1)})
	first.Start()
	ticks(first, 61)
	require.Len(t, first.Sessions(), 1)
	require.NoError(t, first.Close())

	second := newTestEngine(t, kv, nil)
	assert.Equal(t, 1, second.Settings().FocusDurationMinutes)
	assert.Equal(t, 60, second.State().SecondsRemaining)
	require.Len(t, second.Sessions(), 1)
	assert.Equal(t, 60, second.Sessions()[0].DurationSeconds)
}

func TestNearEndAndCompletionEvents(t *testing.T) {
	player := &recordingPlayer{}
	engine := newTestEngine(t, store.NewMemory(), player)
	engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(1)})

	events := engine.Subscribe(256)
	engine.Start()
	ticks(engine, 61)

	got := drain(events)
	assert.Equal(t, 60, countType(got, EventTick))
	assert.Equal(t, 10, countType(got, EventNearEnd))
	require.Equal(t, 1, countType(got, EventCompleted))

	for _, ev := range got {
		if ev.Type == EventNearEnd {
			assert.GreaterOrEqual(t, ev.State.SecondsRemaining, 1)
			assert.LessOrEqual(t, ev.State.SecondsRemaining, 10)
		}
		if ev.Type == EventCompleted {
			require.NotNil(t, ev.Session)
			assert.Equal(t, session.ModeFocus, ev.Session.Type)
		}
	}

	last := got[len(got)-1]
	assert.Equal(t, EventStateChange, last.Type)
	assert.Equal(t, session.ModeBreak, last.State.Mode)

	assert.Equal(t, []sound.Tone{sound.ToneNearEnd, sound.ToneComplete}, player.played())
}

func TestSoundDisabledPlaysNothing(t *testing.T) {
	player := &recordingPlayer{}
	engine := newTestEngine(t, store.NewMemory(), player)
	engine.UpdateSettings(settings.Update{
		FocusDurationMinutes: intPtr(1),
		SoundEnabled:         boolPtr(false),
	})

	engine.Start()
	ticks(engine, 61)

	assert.Len(t, engine.Sessions(), 1)
	assert.Empty(t, player.played())
}

func TestPlayerErrorDoesNotStopCompletion(t *testing.T) {
	player := &recordingPlayer{err: errors.New("no audio device")}
	engine := newTestEngine(t, store.NewMemory(), player)
	engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(1)})

	engine.Start()
	ticks(engine, 61)

	assert.Len(t, engine.Sessions(), 1)
	assert.Equal(t, session.ModeBreak, engine.State().Mode)
}

func TestPersistFailureIsNotFatal(t *testing.T) {
	engine := newTestEngine(t, failingPutStore{Store: store.NewMemory()}, nil)

	updated := engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(1)})
	assert.Equal(t, 1, updated.FocusDurationMinutes)

	engine.Start()
	ticks(engine, 61)

	assert.Len(t, engine.Sessions(), 1, "session kept in memory")
	assert.Equal(t, session.ModeBreak, engine.State().Mode)
}

func TestStats(t *testing.T) {
	engine := newTestEngine(t, store.NewMemory(), nil)
	engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(1)})

	engine.Start()
	ticks(engine, 61)

	stats := engine.Stats()
	assert.Equal(t, 1, stats.TotalSessions)
	assert.Equal(t, 1, stats.SessionsToday)
	assert.Equal(t, 60, stats.TotalFocusSeconds)
	assert.Equal(t, 60, stats.FocusSecondsToday)
	assert.Equal(t, 1, stats.SessionsThisWeek)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
}

func TestRealTickerCompletesOnce(t *testing.T) {
	engine := New(Config{
		TickInterval: 2 * time.Millisecond,
		Now:          func() time.Time { return testNow },
	}, store.NewMemory(), nil, logger.Noop())
	defer engine.Close()

	engine.UpdateSettings(settings.Update{FocusDurationMinutes: intPtr(1)})
	engine.Start()

	require.Eventually(t, func() bool {
		return len(engine.Sessions()) == 1
	}, 5*time.Second, 5*time.Millisecond)

	state := engine.State()
	assert.False(t, state.Running)
	assert.Equal(t, session.ModeBreak, state.Mode)

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, engine.Sessions(), 1)
	assert.Equal(t, 300, engine.State().SecondsRemaining)
}

func TestRestartDoesNotDoubleTick(t *testing.T) {
	engine := New(Config{
		TickInterval: time.Millisecond,
		Now:          func() time.Time { return testNow },
	}, store.NewMemory(), nil, logger.Noop())
	defer engine.Close()

	for i := 0; i < 50; i++ {
		engine.Start()
		engine.Pause()
	}

	remaining := engine.State().SecondsRemaining
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, remaining, engine.State().SecondsRemaining)
	assert.False(t, engine.State().Running)
}

func TestClose(t *testing.T) {
	engine := New(Config{TickInterval: time.Hour}, store.NewMemory(), nil, logger.Noop())
	events := engine.Subscribe(4)

	engine.Start()
	require.NoError(t, engine.Close())
	require.NoError(t, engine.Close())

	for range events {
	}

	assert.False(t, engine.State().Running)
	assert.ErrorIs(t, engine.SwitchMode(session.ModeBreak), ErrClosed)

	engine.Start()
	assert.False(t, engine.State().Running, "closed engine does not start")

	_, open := <-engine.Subscribe(1)
	assert.False(t, open)
}
