// Package activity owns the capped recent-activity log.
package activity

import (
	"context"
	"fmt"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/logging"
)

// MaxEntries is how many activities the log retains, newest first.
const MaxEntries = 10

// Store persists the activity log.
type Store struct {
	adapter storage.Adapter
	logger  logging.Logger
}

func New(adapter storage.Adapter, logger logging.Logger) *Store {
	return &Store{adapter: adapter, logger: logger.With("store", "activity")}
}

// List returns the stored activities, dropping entries without a valid
// timestamp left behind by old releases.
func (s *Store) List(ctx context.Context) ([]models.Activity, error) {
	var raw []models.Activity
	if err := s.adapter.Load(ctx, storage.KeyRecentActivities, &raw); err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	out := make([]models.Activity, 0, len(raw))
	for _, a := range raw {
		if a.Timestamp > 0 {
			out = append(out, a)
		}
	}
	return out, nil
}

// Record prepends an activity and truncates the log to MaxEntries.
func (s *Store) Record(ctx context.Context, a models.Activity) error {
	existing, err := s.List(ctx)
	if err != nil {
		return err
	}

	entries := append([]models.Activity{a}, existing...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := s.adapter.Save(ctx, storage.KeyRecentActivities, entries); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	return nil
}
