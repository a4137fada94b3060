package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/context7-agent/internal/config"
)

// Test Plan for History Store:
// - Load() on a missing file yields an empty store
// - Load() fails for unreadable JSON
// - Append() assigns IDs and timestamps and grows the log
// - Save() then Load() round-trips entries
// - Appends beyond max_history keep only the newest entries
// - Load() prunes an oversized file down to max_history
// - Clear() truncates the persisted log

func testSettings(t *testing.T, maxHistory int) *config.Settings {
	t.Helper()
	return &config.Settings{
		HistoryPath: filepath.Join(t.TempDir(), "history.json"),
		MaxHistory:  maxHistory,
	}
}

func TestLoad_MissingFileYieldsEmptyStore(t *testing.T) {
	t.Parallel()

	store := NewStore(testSettings(t, 10))

	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Entries())
}

func TestLoad_ReturnsErrorForMalformedJSON(t *testing.T) {
	t.Parallel()

	settings := testSettings(t, 10)
	require.NoError(t, os.WriteFile(settings.HistoryPath, []byte("{not json"), 0644))

	store := NewStore(settings)

	err := store.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse history")
}

func TestAppend_AssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	store := NewStore(testSettings(t, 10))

	entry := store.Append("user", "hello")

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "user", entry.Role)
	assert.Equal(t, "hello", entry.Content)
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, 1, store.Len())
}

func TestSaveLoad_RoundTripsEntries(t *testing.T) {
	t.Parallel()

	settings := testSettings(t, 10)

	store := NewStore(settings)
	store.Append("user", "what is context7?")
	store.Append("assistant", "a documentation MCP server")
	require.NoError(t, store.Save())

	reloaded := NewStore(settings)
	require.NoError(t, reloaded.Load())

	require.Equal(t, 2, reloaded.Len())
	entries := reloaded.Entries()
	assert.Equal(t, store.Entries()[0].ID, entries[0].ID)
	assert.Equal(t, "what is context7?", entries[0].Content)
	assert.Equal(t, "assistant", entries[1].Role)
}

func TestAppend_PrunesOldestBeyondLimit(t *testing.T) {
	t.Parallel()

	store := NewStore(testSettings(t, 3))

	store.Append("user", "first")
	store.Append("assistant", "second")
	store.Append("user", "third")
	store.Append("assistant", "fourth")

	require.Equal(t, 3, store.Len())
	entries := store.Entries()
	assert.Equal(t, "second", entries[0].Content)
	assert.Equal(t, "fourth", entries[2].Content)
}

func TestLoad_PrunesOversizedFile(t *testing.T) {
	t.Parallel()

	settings := testSettings(t, 10)

	store := NewStore(settings)
	for i := 0; i < 5; i++ {
		store.Append("user", "msg")
	}
	require.NoError(t, store.Save())

	// Reload with a tighter limit
	settings.MaxHistory = 2
	reloaded := NewStore(settings)
	require.NoError(t, reloaded.Load())

	assert.Equal(t, 2, reloaded.Len())
}

func TestClear_TruncatesPersistedLog(t *testing.T) {
	t.Parallel()

	settings := testSettings(t, 10)

	store := NewStore(settings)
	store.Append("user", "hello")
	require.NoError(t, store.Save())

	require.NoError(t, store.Clear())
	assert.Equal(t, 0, store.Len())

	reloaded := NewStore(settings)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 0, reloaded.Len())
}
