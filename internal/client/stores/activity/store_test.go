package activity

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*Store, *storage.SQLiteAdapter) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE records (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter := storage.NewSQLiteAdapter(db, logger, 0)
	return New(adapter, logger), adapter
}

func TestRecord_PrependsNewestFirst(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, models.Activity{ID: "1", Actor: "You", Text: "shared a memory.", Timestamp: 100}))
	require.NoError(t, s.Record(ctx, models.Activity{ID: "2", Actor: "You", Text: "liked a post.", Timestamp: 200}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "1", list[1].ID)
}

func TestRecord_CapsAtMaxEntries(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	for i := 1; i <= MaxEntries+5; i++ {
		require.NoError(t, s.Record(ctx, models.Activity{
			ID: fmt.Sprint(i), Timestamp: int64(i),
		}))
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, MaxEntries)
	assert.Equal(t, fmt.Sprint(MaxEntries+5), list[0].ID)
}

func TestList_DropsEntriesWithoutTimestamp(t *testing.T) {
	s, adapter := setupStore(t)
	ctx := context.Background()

	// Old releases could persist malformed rows.
	require.NoError(t, adapter.Save(ctx, storage.KeyRecentActivities, []models.Activity{
		{ID: "ok", Timestamp: 10},
		{ID: "no-ts"},
		{ID: "neg", Timestamp: -1},
	}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ok", list[0].ID)
}
