package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tododeck/tododeck/internal/domain"
	"github.com/tododeck/tododeck/internal/infra/jsonstore"
	"github.com/tododeck/tododeck/internal/infra/sqlitestore"
	"github.com/tododeck/tododeck/internal/testutil"
)

func TestNew_DefaultsToJSONBackend(t *testing.T) {
	c, err := New(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	assert.IsType(t, &jsonstore.Store{}, c.Repo)
	assert.Equal(t, "todos.json", filepath.Base(c.DataPath))
	assert.NotNil(t, c.Store)
	assert.NotNil(t, c.Limiter)
}

func TestNew_SQLiteBackend(t *testing.T) {
	configDir := t.TempDir()
	content := "[storage]\nbackend = \"sqlite\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o600))

	c, err := New(configDir, t.TempDir())
	require.NoError(t, err)

	assert.IsType(t, &sqlitestore.Store{}, c.Repo)
	assert.Equal(t, "todos.db", filepath.Base(c.DataPath))
}

func TestNew_UnknownBackend(t *testing.T) {
	configDir := t.TempDir()
	content := "[storage]\nbackend = \"redis\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o600))

	_, err := New(configDir, t.TempDir())
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestNew_LoadsPersistedState(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()

	first, err := New(configDir, dataDir)
	require.NoError(t, err)
	_, err = first.Store.Add("Buy milk", "", "high")
	require.NoError(t, err)
	require.NoError(t, first.Store.SetSearchQuery("milk"))

	// A fresh container over the same data dir sees the saved state,
	// filters included.
	second, err := New(configDir, dataDir)
	require.NoError(t, err)
	state := second.Store.State()
	require.Len(t, state.Todos, 1)
	assert.Equal(t, "Buy milk", state.Todos[0].Text)
	assert.Equal(t, "milk", state.Filters.SearchQuery)
}

func TestNewWithDeps(t *testing.T) {
	repo := testutil.NewMockRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := domain.NewRateLimiter(20, time.Minute, clock)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := NewWithDeps(repo, clock, &testutil.SeqIDGenerator{}, limiter, logger)
	require.NotNil(t, c.Store)

	todo, err := c.Store.Add("Buy milk", "", "")
	require.NoError(t, err)
	assert.Equal(t, "todo-1", todo.ID)
	assert.Equal(t, clock.NowTime, todo.CreatedAt)
}

func TestUUIDGenerator(t *testing.T) {
	id := UUIDGenerator{}.NewID()
	assert.NoError(t, domain.ValidateTodoID(id))
	assert.NotEqual(t, id, UUIDGenerator{}.NewID())
}
