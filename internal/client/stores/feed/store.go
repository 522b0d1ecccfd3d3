// Package feed keeps the client's view of the shared post collection: a
// live subscription with a locally cached snapshot, degrading to a
// feed-level error state when the stream breaks.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Kisalay21/familytree/internal/client/feedapi"
	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/common"
	"github.com/Kisalay21/familytree/internal/logging"
)

// Store mirrors the remote collection into memory and a local cache.
type Store struct {
	collection feedapi.Collection
	adapter    storage.Adapter
	logger     logging.Logger

	mu     sync.RWMutex
	posts  []models.Post
	err    error
	cancel func()
}

func New(collection feedapi.Collection, adapter storage.Adapter, logger logging.Logger) *Store {
	return &Store{collection: collection, adapter: adapter, logger: logger.With("store", "feed")}
}

// Start loads the cached snapshot and opens the live subscription. A
// subscription that cannot be opened leaves the store in the unavailable
// state with the cached posts still readable; other stores are unaffected.
func (s *Store) Start(ctx context.Context) {
	var cached []models.Post
	if err := s.adapter.Load(ctx, storage.KeyFeedPosts, &cached); err != nil {
		s.logger.Warn(ctx, "could not load cached feed", "error", err.Error())
	}
	s.mu.Lock()
	s.posts = cached
	s.mu.Unlock()

	cancel, err := s.collection.Subscribe(ctx, func(posts []models.Post, err error) {
		s.onSnapshot(ctx, posts, err)
	})
	if err != nil {
		s.setErr(fmt.Errorf("%w: %w", common.ErrFeedUnavailable, err))
		s.logger.Error(ctx, "feed subscription failed", "error", err.Error())
		return
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
}

// Stop closes the live subscription.
func (s *Store) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (s *Store) onSnapshot(ctx context.Context, posts []models.Post, err error) {
	if err != nil {
		s.setErr(fmt.Errorf("%w: %w", common.ErrFeedUnavailable, err))
		s.logger.Error(ctx, "feed stream broke", "error", err.Error())
		return
	}

	s.mu.Lock()
	s.posts = posts
	s.err = nil
	s.mu.Unlock()

	// Cache the snapshot; a quota failure only costs the offline copy.
	if err := s.adapter.Save(ctx, storage.KeyFeedPosts, posts); err != nil {
		if errors.Is(err, common.ErrQuotaExceeded) {
			s.logger.Warn(ctx, "feed cache over quota", "error", err.Error())
			return
		}
		s.logger.Error(ctx, "could not cache feed", "error", err.Error())
	}
}

func (s *Store) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Posts returns the latest snapshot, newest first.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Err reports the feed-level error state, nil when the feed is live.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FindByMirrorID returns the post mirroring the given vault media id.
func (s *Store) FindByMirrorID(id models.FlexID) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.VaultMediaID != "" && p.VaultMediaID.Matches(id) {
			return p, true
		}
	}
	return models.Post{}, false
}

// Find returns the post with the given document id.
func (s *Store) Find(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Append, Update and Delete pass through to the collection; the resulting
// snapshot arrives over the subscription.

func (s *Store) Append(ctx context.Context, post models.Post) (string, error) {
	return s.collection.Append(ctx, post)
}

func (s *Store) Update(ctx context.Context, id string, patch feedapi.Patch) error {
	return s.collection.Update(ctx, id, patch)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.collection.Delete(ctx, id)
}
