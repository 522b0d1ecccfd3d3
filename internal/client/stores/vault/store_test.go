package vault

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/common"
	"github.com/Kisalay21/familytree/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE records (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(storage.NewSQLiteAdapter(db, logger, 0), logger)
}

func TestGet_EnsuresProtectedFolder(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, v.Folders)
	assert.Equal(t, models.GeneralFolderName, v.Folders[0].Name)
	assert.Equal(t, models.GeneralFolderID, v.Folders[0].ID)
}

func TestAddFolder_AndDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	f, err := s.AddFolder(ctx, "Trips")
	require.NoError(t, err)
	require.NotEmpty(t, f.ID)

	mediaID := NewMediaID()
	require.NoError(t, s.AddMedia(ctx, f.ID, models.MediaItem{ID: mediaID, Src: "x"}))

	require.NoError(t, s.DeleteFolder(ctx, f.ID))

	v, err := s.Get(ctx)
	require.NoError(t, err)
	require.Len(t, v.Folders, 1)
	// The folder's media went with it.
	assert.Nil(t, v.FindMedia(mediaID))
}

func TestDeleteFolder_ProtectedIsRejected(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	err := s.DeleteFolder(ctx, models.GeneralFolderID)
	require.ErrorIs(t, err, common.ErrProtectedFolder)

	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GeneralFolderName, v.Folders[0].Name)
}

func TestDeleteFolder_UnknownIsNoOp(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.DeleteFolder(context.Background(), "999"))
}

func TestAddMedia_PrependsAndMigrates(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMedia(ctx, models.GeneralFolderID, models.MediaItem{ID: "old", Src: "a"}))
	require.NoError(t, s.AddMedia(ctx, models.GeneralFolderID, models.MediaItem{ID: "new", Src: "b"}))

	v, err := s.Get(ctx)
	require.NoError(t, err)
	media := v.Folders[0].Media
	require.Len(t, media, 2)
	assert.Equal(t, models.FlexID("new"), media[0].ID)
	// Migrated on the way in.
	assert.Equal(t, models.MediaTypeImage, media[0].Type)
	assert.NotNil(t, media[0].Comments)
}

func TestAddMedia_BatchCap(t *testing.T) {
	s := setupStore(t)

	items := make([]models.MediaItem, MaxUploadBatch+1)
	for i := range items {
		items[i] = models.MediaItem{ID: NewMediaID(), Src: "x"}
	}

	err := s.AddMedia(context.Background(), models.GeneralFolderID, items...)
	require.ErrorIs(t, err, common.ErrTooManyFiles)

	v, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, v.Folders[0].Media)
}

func TestAddMedia_UnknownFolder(t *testing.T) {
	s := setupStore(t)
	err := s.AddMedia(context.Background(), "999", models.MediaItem{ID: "1"})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteMedia_RemovesWithoutTouchingOthers(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMedia(ctx, models.GeneralFolderID,
		models.MediaItem{ID: "1", Src: "a"}, models.MediaItem{ID: "2", Src: "b"}))

	require.NoError(t, s.DeleteMedia(ctx, "1"))
	require.NoError(t, s.DeleteMedia(ctx, "missing")) // lookup miss is a no-op

	v, err := s.Get(ctx)
	require.NoError(t, err)
	require.Len(t, v.Folders[0].Media, 1)
	assert.Equal(t, models.FlexID("2"), v.Folders[0].Media[0].ID)
}

func TestDeleteMedia_CoversTaggedCollection(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	v, err := s.Get(ctx)
	require.NoError(t, err)
	v.Tagged = []models.MediaItem{{ID: "t1", Type: models.MediaTypeImage, Src: "x", TaggedBy: "Sita"}}
	require.NoError(t, s.Save(ctx, v))

	require.NoError(t, s.DeleteMedia(ctx, "t1"))

	v, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Tagged)
}

func TestNewMediaID_NumericAndUnique(t *testing.T) {
	a := NewMediaID()
	b := NewMediaID()
	assert.NotEqual(t, a, b)
	assert.True(t, a.Matches(a))
}
