package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xmhha/pomodoro/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a store for driver in a temp dir, skipping sqlite
// when the binary was built without cgo.
func openTestStore(t *testing.T, driver Driver) Store {
	t.Helper()

	kv, err := New(Config{
		Driver: driver,
		Path:   filepath.Join(t.TempDir(), "nested", "pomodoro.db"),
	}, logger.Noop())
	if err != nil && driver == DriverSQLite && strings.Contains(strings.ToLower(err.Error()), "cgo") {
		t.Skipf("sqlite unavailable: %v", err)
	}
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = kv.Close()
	})
	return kv
}

func TestStoreContract(t *testing.T) {
	for _, driver := range []Driver{DriverBolt, DriverSQLite, DriverMemory} {
		driver := driver
		t.Run(string(driver), func(t *testing.T) {
			kv := openTestStore(t, driver)

			_, err := kv.Get("sessions")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Put("sessions", []byte(`[]`)))
			require.NoError(t, kv.Put("settings", []byte(`{"focusDuration":25}`)))

			got, err := kv.Get("settings")
			require.NoError(t, err)
			assert.Equal(t, `{"focusDuration":25}`, string(got))

			require.NoError(t, kv.Put("settings", []byte(`{"focusDuration":45}`)))
			got, err = kv.Get("settings")
			require.NoError(t, err)
			assert.Equal(t, `{"focusDuration":45}`, string(got))

			keys, err := kv.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"sessions", "settings"}, keys)

			require.NoError(t, kv.Delete("sessions"))
			require.NoError(t, kv.Delete("missing"))
			_, err = kv.Get("sessions")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.ErrorIs(t, kv.Put("", nil), ErrEmptyKey)
			_, err = kv.Get("")
			assert.ErrorIs(t, err, ErrEmptyKey)

			require.NoError(t, kv.Close())
			require.NoError(t, kv.Close())
			_, err = kv.Get("settings")
			assert.ErrorIs(t, err, ErrClosed)
			assert.ErrorIs(t, kv.Put("settings", nil), ErrClosed)
		})
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomodoro.db")

	kv, err := New(Config{Driver: DriverBolt, Path: path}, logger.Noop())
	require.NoError(t, err)
	require.NoError(t, kv.Put("sessions", []byte(`[{"id":"a"}]`)))
	require.NoError(t, kv.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	kv, err = New(Config{Driver: DriverBolt, Path: path}, logger.Noop())
	require.NoError(t, err)
	defer kv.Close()

	got, err := kv.Get("sessions")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	kv := NewMemory()
	value := []byte("abc")
	require.NoError(t, kv.Put("k", value))

	value[0] = 'x'
	got, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "unknown driver", cfg: Config{Driver: "redis", Path: "x.db"}, wantErr: ErrUnknownDriver},
		{name: "bolt without path", cfg: Config{Driver: DriverBolt}, wantErr: ErrEmptyPath},
		{name: "default driver without path", cfg: Config{}, wantErr: ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, logger.Noop())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, "/tmp/x.db", ExpandHome("/tmp/x.db"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, ".config", "pomodoro", "pomodoro.db"),
		ExpandHome("~/.config/pomodoro/pomodoro.db"))
}
