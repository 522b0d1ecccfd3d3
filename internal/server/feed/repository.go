// Package feed implements the server side of the family feed: Postgres
// persistence, the snapshot hub, and presigned uploads for large payloads.
package feed

import (
	"context"

	"github.com/Kisalay21/familytree/internal/server/models"
)

// Repository is the persistence contract for posts.
type Repository interface {
	Insert(ctx context.Context, post *models.Post) error
	Get(ctx context.Context, id string) (*models.Post, bool, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) (bool, error)

	// List returns every post, newest first.
	List(ctx context.Context) ([]models.Post, error)
}
