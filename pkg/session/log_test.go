package session

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/0xmhha/pomodoro/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore wraps a store and fails selected operations.
type failingStore struct {
	store.Store
	getErr error
	putErr error
}

func (f *failingStore) Get(key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(key)
}

func (f *failingStore) Put(key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.Store.Put(key, value)
}

func testSession(mode Mode, date string) Session {
	day, _ := time.ParseInLocation(DateLayout, date, time.Local)
	return NewSession(mode, 1500, day.Add(10*time.Hour))
}

func TestNewSession(t *testing.T) {
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.Local)
	s := NewSession(ModeFocus, 1500, now)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, ModeFocus, s.Type)
	assert.Equal(t, 1500, s.DurationSeconds)
	assert.Equal(t, now, s.CompletedAt)
	assert.Equal(t, "2024-03-09", s.Date)
	assert.NoError(t, s.Validate())

	other := NewSession(ModeFocus, 1500, now)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestSessionValidate(t *testing.T) {
	valid := testSession(ModeBreak, "2024-01-02")

	tests := []struct {
		name   string
		mutate func(s *Session)
	}{
		{"empty id", func(s *Session) { s.ID = "" }},
		{"unknown type", func(s *Session) { s.Type = "nap" }},
		{"zero duration", func(s *Session) { s.DurationSeconds = 0 }},
		{"bad date", func(s *Session) { s.Date = "02/01/2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSession)
		})
	}
}

func TestModeOppositeAndParse(t *testing.T) {
	assert.Equal(t, ModeBreak, ModeFocus.Opposite())
	assert.Equal(t, ModeFocus, ModeBreak.Opposite())

	m, err := ParseMode(" Break ")
	require.NoError(t, err)
	assert.Equal(t, ModeBreak, m)

	_, err = ParseMode("lunch")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestLogAppendPersistsWholeLog(t *testing.T) {
	kv := store.NewMemory()
	l := NewLog(kv, logger.Noop())
	assert.Equal(t, 0, l.Len())

	first := testSession(ModeFocus, "2024-01-01")
	second := testSession(ModeBreak, "2024-01-01")
	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	data, err := kv.Get(Key)
	require.NoError(t, err)

	var stored []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, first.ID, stored[0]["id"])
	assert.Equal(t, "break", stored[1]["type"])
	assert.EqualValues(t, 1500, stored[1]["duration"])
	assert.Equal(t, "2024-01-01", stored[1]["date"])

	reloaded := NewLog(kv, logger.Noop())
	all := reloaded.All()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.True(t, first.CompletedAt.Equal(all[0].CompletedAt))
}

func TestLogAppendRejectsInvalid(t *testing.T) {
	l := NewLog(store.NewMemory(), logger.Noop())

	err := l.Append(Session{ID: "x", Type: ModeFocus})
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.Equal(t, 0, l.Len())
}

func TestLogAllReturnsCopy(t *testing.T) {
	l := NewLog(store.NewMemory(), logger.Noop())
	require.NoError(t, l.Append(testSession(ModeFocus, "2024-01-01")))

	all := l.All()
	all[0].ID = "changed"

	assert.NotEqual(t, "changed", l.All()[0].ID)
}

func TestLogLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		getErr  error
		want    int
	}{
		{name: "missing key", want: 0},
		{name: "store error", getErr: errors.New("disk unavailable"), want: 0},
		{name: "not json", payload: "{{{", want: 0},
		{name: "json object instead of array", payload: `{"id":"a"}`, want: 0},
		{
			name: "skips malformed records",
			payload: `[
				{"id":"a","type":"focus","duration":1500,"completedAt":"2024-01-01T10:00:00.000Z","date":"2024-01-01"},
				{"id":"b","type":"nap","duration":1500,"completedAt":"2024-01-01T10:00:00Z","date":"2024-01-01"},
				"garbage",
				{"id":"c","type":"break","duration":300,"completedAt":"2024-01-01T10:30:00Z","date":"2024-01-01"}
			]`,
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			if tt.payload != "" {
				require.NoError(t, mem.Put(Key, []byte(tt.payload)))
			}

			l := NewLog(&failingStore{Store: mem, getErr: tt.getErr}, logger.Noop())
			assert.Equal(t, tt.want, l.Len())
		})
	}
}

func TestLogAppendPersistFailureKeepsSession(t *testing.T) {
	kv := &failingStore{Store: store.NewMemory(), putErr: errors.New("quota exceeded")}
	l := NewLog(kv, logger.Noop())

	err := l.Append(testSession(ModeFocus, "2024-01-01"))
	assert.ErrorIs(t, err, ErrPersist)
	assert.Equal(t, 1, l.Len())
}
