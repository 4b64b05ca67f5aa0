package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tododeck/tododeck/internal/domain"
	"github.com/tododeck/tododeck/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, string, *testutil.MockClock) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	clock := &testutil.MockClock{NowTime: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New(path, clock, nil), path, clock
}

func sampleTodos(now time.Time) []domain.Todo {
	return []domain.Todo{
		{
			ID:          "a1b2c3d4-e5f6-4a1b-8c2d-3e4f5a6b7c8d",
			Text:        "Buy milk",
			Description: "2 liters",
			Priority:    domain.PriorityHigh,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:        "todo-2",
			Text:      "Walk the dog",
			Completed: true,
			Priority:  domain.PriorityLow,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store, _, _ := newTestStore(t)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Todos)
	assert.Equal(t, domain.DefaultFilterState(), state.Filters)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	store, path, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	state, err := store.Load()
	require.NoError(t, err, "corrupt data starts empty rather than failing")
	assert.Empty(t, state.Todos)
	assert.Equal(t, domain.DefaultFilterState(), state.Filters)
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	store, _, clock := newTestStore(t)
	todos := sampleTodos(clock.NowTime)
	filters := domain.FilterState{
		SearchQuery: "milk",
		Status:      domain.StatusIncomplete,
		Priority:    domain.FilterPriorityAll,
	}

	require.NoError(t, store.Save(todos, &filters))

	state, err := store.Load()
	require.NoError(t, err)
	require.Len(t, state.Todos, 2)
	assert.Equal(t, "Buy milk", state.Todos[0].Text)
	assert.Equal(t, "2 liters", state.Todos[0].Description)
	assert.Equal(t, domain.PriorityHigh, state.Todos[0].Priority)
	assert.True(t, state.Todos[0].CreatedAt.Equal(clock.NowTime))
	assert.True(t, state.Todos[1].Completed)
	assert.Equal(t, filters, state.Filters)
}

func TestStore_SaveNilFiltersPreservesStored(t *testing.T) {
	store, _, clock := newTestStore(t)
	todos := sampleTodos(clock.NowTime)
	filters := domain.FilterState{
		SearchQuery: "milk",
		Status:      domain.StatusCompleted,
		Priority:    domain.FilterPriorityHigh,
	}
	require.NoError(t, store.Save(todos, &filters))

	// A todos-only save must not clobber the stored filters.
	require.NoError(t, store.Save(todos[:1], nil))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, state.Todos, 1)
	assert.Equal(t, filters, state.Filters)
}

func TestStore_LoadMigratesLegacyRecord(t *testing.T) {
	store, path, clock := newTestStore(t)

	// A versionless record with missing priority, a malformed date and
	// an out-of-range status filter.
	legacy := `{
		"todos": [
			{"id": "todo-1", "text": "Buy milk", "completed": false, "createdAt": "not-a-date"},
			{"id": "todo-2", "text": "Old task", "completed": true, "priority": "urgent"}
		],
		"filters": {"searchQuery": "milk", "status": "done", "priority": "high"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	state, err := store.Load()
	require.NoError(t, err)
	require.Len(t, state.Todos, 2)

	assert.Equal(t, domain.PriorityMedium, state.Todos[0].Priority)
	assert.True(t, state.Todos[0].CreatedAt.Equal(clock.NowTime), "bad date coerced to now")
	assert.Equal(t, domain.PriorityMedium, state.Todos[1].Priority, "invalid priority coerced to medium")

	// Each filter field migrates independently.
	assert.Equal(t, "milk", state.Filters.SearchQuery)
	assert.Equal(t, domain.StatusAll, state.Filters.Status)
	assert.Equal(t, domain.FilterPriorityHigh, state.Filters.Priority)

	// The migrated record was re-persisted under the current version.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(content, &rec))
	assert.Equal(t, SchemaVersion, rec["version"])
}

func TestStore_Clear(t *testing.T) {
	store, path, clock := newTestStore(t)
	require.NoError(t, store.Save(sampleTodos(clock.NowTime), nil))

	require.NoError(t, store.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-empty store succeeds.
	assert.NoError(t, store.Clear())
}

func TestStore_Info(t *testing.T) {
	store, _, clock := newTestStore(t)

	info, err := store.Info()
	require.NoError(t, err)
	assert.False(t, info.HasData)

	require.NoError(t, store.Save(sampleTodos(clock.NowTime), nil))

	info, err = store.Info()
	require.NoError(t, err)
	assert.True(t, info.HasData)
	assert.Equal(t, SchemaVersion, info.Version)
	assert.True(t, info.LastUpdated.Equal(clock.NowTime))
}

func TestStore_IsAvailable(t *testing.T) {
	store, _, _ := newTestStore(t)
	assert.True(t, store.IsAvailable())
}
