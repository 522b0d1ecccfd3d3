// Package vault owns the mediaVault record: folders of photos and videos,
// the protected default folder, and the batch-upload cap.
package vault

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/Kisalay21/familytree/internal/client/migrate"
	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/common"
	"github.com/Kisalay21/familytree/internal/logging"
)

// MaxUploadBatch caps the number of media items accepted per upload.
const MaxUploadBatch = 20

// Store loads, migrates and persists the media vault.
type Store struct {
	adapter storage.Adapter
	logger  logging.Logger
}

func New(adapter storage.Adapter, logger logging.Logger) *Store {
	return &Store{adapter: adapter, logger: logger.With("store", "vault")}
}

// Get returns the migrated vault. The protected folder is guaranteed to
// exist afterwards. A migration that cannot be persisted for quota reasons
// still yields the migrated in-memory copy.
func (s *Store) Get(ctx context.Context) (*models.Vault, error) {
	v := &models.Vault{Folders: []models.Folder{}}
	if err := s.adapter.Load(ctx, storage.KeyMediaVault, v); err != nil {
		return nil, fmt.Errorf("loading vault: %w", err)
	}

	if migrate.Vault(v) {
		if err := s.Save(ctx, v); err != nil {
			if !errors.Is(err, common.ErrQuotaExceeded) {
				return nil, err
			}
			s.logger.Warn(ctx, "could not persist migrated vault", "error", err.Error())
		}
	}

	return v, nil
}

func (s *Store) Save(ctx context.Context, v *models.Vault) error {
	if err := s.adapter.Save(ctx, storage.KeyMediaVault, v); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}
	return nil
}

// NewMediaID produces a time-based identifier in the numeric format old
// records use, so new and old ids compare under the same tolerance rule.
func NewMediaID() models.FlexID {
	v := float64(time.Now().UnixMilli()) + rand.Float64()
	return models.FlexID(strconv.FormatFloat(v, 'f', -1, 64))
}

// AddFolder appends a new folder and returns it.
func (s *Store) AddFolder(ctx context.Context, name string) (*models.Folder, error) {
	v, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	folder := models.Folder{
		ID:    models.FlexID(strconv.FormatInt(time.Now().UnixMilli(), 10)),
		Name:  name,
		Media: []models.MediaItem{},
	}
	v.Folders = append(v.Folders, folder)

	if err := s.Save(ctx, v); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder and evicts its media. Deleting the
// protected folder is rejected and leaves the vault unchanged.
func (s *Store) DeleteFolder(ctx context.Context, id models.FlexID) error {
	v, err := s.Get(ctx)
	if err != nil {
		return err
	}

	for i, f := range v.Folders {
		if !f.ID.Matches(id) {
			continue
		}
		if f.Name == models.GeneralFolderName {
			return fmt.Errorf("folder %q: %w", f.Name, common.ErrProtectedFolder)
		}
		v.Folders = append(v.Folders[:i], v.Folders[i+1:]...)
		return s.Save(ctx, v)
	}

	return nil
}

// AddMedia prepends items to a folder, newest first. Batches above
// MaxUploadBatch are rejected outright.
func (s *Store) AddMedia(ctx context.Context, folderID models.FlexID, items ...models.MediaItem) error {
	if len(items) > MaxUploadBatch {
		return fmt.Errorf("%d items: %w", len(items), common.ErrTooManyFiles)
	}

	v, err := s.Get(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		migrate.Media(&items[i])
	}

	for fi := range v.Folders {
		if v.Folders[fi].ID.Matches(folderID) {
			v.Folders[fi].Media = append(items, v.Folders[fi].Media...)
			return s.Save(ctx, v)
		}
	}

	return fmt.Errorf("folder %s: %w", folderID, common.ErrorNotFound)
}

// DeleteMedia removes one item from its folder or the tagged collection.
// Mirrored feed posts are deliberately left alone; removing a memory from
// the vault does not unshare it.
func (s *Store) DeleteMedia(ctx context.Context, id models.FlexID) error {
	v, err := s.Get(ctx)
	if err != nil {
		return err
	}

	if !v.RemoveMedia(id) {
		return nil
	}
	return s.Save(ctx, v)
}
