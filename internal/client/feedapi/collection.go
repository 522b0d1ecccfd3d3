// Package feedapi defines the client's view of the shared feed: an ordered
// document collection with live subscriptions. The gRPC client implements it
// against the feed server; Memory implements it locally for tests and
// offline use.
package feedapi

import (
	"context"

	"github.com/Kisalay21/familytree/internal/client/models"
)

// Patch is a partial post update. Nil pointer fields are left unchanged.
// HasCommentsList gates CommentsList so an empty list can be set explicitly.
type Patch struct {
	Likes           *int64
	IsLiked         *bool
	Comments        *int64
	HasCommentsList bool
	CommentsList    []models.PostComment
	Content         *string
}

// Collection is a feed document collection.
//
// Subscribe delivers the full collection ordered by timestamp descending:
// once immediately, then again after every change, until the returned
// cancel func is called or ctx ends. When the live subscription breaks, fn
// is invoked once with a nil snapshot and the failure; earlier snapshots
// stay valid. Update and Delete of an unknown id are silent no-ops.
type Collection interface {
	Append(ctx context.Context, post models.Post) (string, error)
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context, fn func(posts []models.Post, err error)) (cancel func(), err error)
}

// Apply merges a patch into a post.
func (p Patch) Apply(post *models.Post) {
	if p.Likes != nil {
		post.Likes = *p.Likes
	}
	if p.IsLiked != nil {
		post.IsLiked = *p.IsLiked
	}
	if p.Comments != nil {
		post.Comments = *p.Comments
	}
	if p.HasCommentsList {
		post.CommentsList = p.CommentsList
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
}
