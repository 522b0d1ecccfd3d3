// Package syncer keeps vault media and their mirrored feed posts
// consistent. A shared mirror identifier (the vault media id, stored on the
// post as vaultMediaId) links the two records; likes and comments propagate
// across the link in both directions.
//
// Every cross-store write is best-effort: the primary mutation stands even
// when the mirrored side cannot be updated, and a propagation that finds no
// mirror is a silent no-op. Deletes never cascade.
package syncer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kisalay21/familytree/internal/client/feedapi"
	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/stores/activity"
	"github.com/Kisalay21/familytree/internal/client/stores/feed"
	"github.com/Kisalay21/familytree/internal/client/stores/profile"
	"github.com/Kisalay21/familytree/internal/client/stores/vault"
	"github.com/Kisalay21/familytree/internal/logging"
)

// initialMirrorComment seeds the vault copy of a shared memory.
const initialMirrorComment = "Shared from my feed!"

// Engine coordinates the profile, vault, feed and activity stores.
type Engine struct {
	profiles   *profile.Store
	vault      *vault.Store
	feed       *feed.Store
	activities *activity.Store
	logger     logging.Logger

	now        func() time.Time       // test seam
	newMediaID func() models.FlexID   // test seam
}

func New(profiles *profile.Store, v *vault.Store, f *feed.Store, activities *activity.Store, logger logging.Logger) *Engine {
	return &Engine{
		profiles:   profiles,
		vault:      v,
		feed:       f,
		activities: activities,
		logger:     logger.With("module", "syncer"),
		now:        time.Now,
		newMediaID: vault.NewMediaID,
	}
}

// ShareResult is the outcome of sharing a memory. VaultWarning carries a
// recoverable vault-side failure; the post was appended regardless.
type ShareResult struct {
	Post         models.Post
	VaultWarning error
}

// ShareMemory creates the linked pair: a vault copy in the protected folder
// and a feed post carrying the mirror identifier. The vault side is
// best-effort; a failure there does not stop the share.
func (e *Engine) ShareMemory(ctx context.Context, content, mediaType, payloadRef string) (*ShareResult, error) {
	p, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := e.now()
	mirrorID := e.newMediaID()

	result := &ShareResult{}

	item := models.MediaItem{
		ID:   mirrorID,
		Type: mediaType,
		Src:  payloadRef,
		Comments: []models.MediaComment{{
			ID:     models.FlexID(strconv.FormatInt(now.UnixMilli(), 10)),
			Text:   initialMirrorComment,
			Author: p.DisplayName,
			Avatar: models.AvatarSentinel,
		}},
	}
	if err := e.vault.AddMedia(ctx, models.GeneralFolderID, item); err != nil {
		result.VaultWarning = fmt.Errorf("vault copy not saved: %w", err)
		e.logger.Warn(ctx, "sharing without vault copy", "error", err.Error())
	}

	post := models.Post{
		VaultMediaID: mirrorID,
		AuthorID:     p.UID,
		Author:       p.DisplayName,
		AuthorImage:  p.PhotoURL,
		Relationship: "You",
		Content:      content,
		Timestamp:    now.UTC().Format(time.RFC3339),
		DisplayTime:  "Just now",
		CommentsList: []models.PostComment{},
	}
	switch mediaType {
	case models.MediaTypeVideo:
		post.Video = payloadRef
	default:
		post.Image = payloadRef
	}

	id, err := e.feed.Append(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("appending post: %w", err)
	}
	post.ID = id
	result.Post = post

	e.recordActivity(ctx, "post", "shared a memory.", "heart")
	return result, nil
}

// ToggleMediaLike flips the like on a vault item and applies the same flip
// and count delta to the mirrored post, if any.
func (e *Engine) ToggleMediaLike(ctx context.Context, mediaID models.FlexID) (*models.MediaItem, error) {
	v, err := e.vault.Get(ctx)
	if err != nil {
		return nil, err
	}

	item := v.FindMedia(mediaID)
	if item == nil {
		return nil, nil
	}

	item.Liked = !item.Liked
	delta := int64(-1)
	if item.Liked {
		delta = 1
	}
	item.Likes += delta

	if err := e.vault.Save(ctx, v); err != nil {
		return nil, err
	}

	// The mirror gets the delta against its own count; a drifted mirror
	// keeps its drift.
	if post, ok := e.feed.FindByMirrorID(item.ID); ok {
		likes := post.Likes + delta
		patch := feedapi.Patch{Likes: &likes, IsLiked: &item.Liked}
		if err := e.feed.Update(ctx, post.ID, patch); err != nil {
			e.logger.Warn(ctx, "like not propagated to feed", "post", post.ID, "error", err.Error())
		}
	}

	e.recordActivity(ctx, "like", "liked a memory.", "heart")

	out := *item
	return &out, nil
}

// TogglePostLike flips the like on a feed post and applies the same flip and
// count delta to the vault mirror, if any.
func (e *Engine) TogglePostLike(ctx context.Context, postID string) (*models.Post, error) {
	post, ok := e.feed.Find(postID)
	if !ok {
		return nil, nil
	}

	post.IsLiked = !post.IsLiked
	delta := int64(-1)
	if post.IsLiked {
		delta = 1
	}
	post.Likes += delta

	patch := feedapi.Patch{Likes: &post.Likes, IsLiked: &post.IsLiked}
	if err := e.feed.Update(ctx, post.ID, patch); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	if post.VaultMediaID != "" {
		if err := e.applyMediaLike(ctx, post.VaultMediaID, post.IsLiked, delta); err != nil {
			e.logger.Warn(ctx, "like not propagated to vault", "post", post.ID, "error", err.Error())
		}
	}

	e.recordActivity(ctx, "like", "liked a post.", "heart")
	return &post, nil
}

func (e *Engine) applyMediaLike(ctx context.Context, mediaID models.FlexID, liked bool, delta int64) error {
	v, err := e.vault.Get(ctx)
	if err != nil {
		return err
	}
	item := v.FindMedia(mediaID)
	if item == nil {
		return nil
	}
	item.Liked = liked
	item.Likes += delta
	return e.vault.Save(ctx, v)
}

// CommentResult is the outcome of commenting on a vault item. VaultWarning
// carries a recoverable vault-side failure; the in-memory comment and its
// feed mirror stand regardless.
type CommentResult struct {
	Comment      models.MediaComment
	VaultWarning error
}

// AddMediaComment appends a comment to a vault item and mirrors it onto the
// linked post. The post's comment counter is recomputed from the list
// length, never incremented. The vault save is best-effort: a failure there
// surfaces as a warning and does not stop the mirror update.
func (e *Engine) AddMediaComment(ctx context.Context, mediaID models.FlexID, text string) (*CommentResult, error) {
	p, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	v, err := e.vault.Get(ctx)
	if err != nil {
		return nil, err
	}

	item := v.FindMedia(mediaID)
	if item == nil {
		return nil, nil
	}

	now := e.now().UnixMilli()
	comment := models.MediaComment{
		ID:     models.FlexID(strconv.FormatInt(now, 10)),
		Text:   text,
		Author: p.DisplayName,
		Avatar: commentAvatar(p.PhotoURL),
	}

	item.Comments = append(item.Comments, comment)

	result := &CommentResult{Comment: comment}
	if err := e.vault.Save(ctx, v); err != nil {
		result.VaultWarning = fmt.Errorf("comment not saved to vault: %w", err)
		e.logger.Warn(ctx, "commenting without vault copy", "error", err.Error())
	}

	if post, ok := e.feed.FindByMirrorID(item.ID); ok {
		list := append(post.CommentsList, models.PostComment{
			ID:          comment.ID,
			Author:      p.DisplayName,
			AuthorImage: p.PhotoURL,
			Text:        text,
			Timestamp:   now,
		})
		count := int64(len(list))
		patch := feedapi.Patch{HasCommentsList: true, CommentsList: list, Comments: &count}
		if err := e.feed.Update(ctx, post.ID, patch); err != nil {
			e.logger.Warn(ctx, "comment not propagated to feed", "post", post.ID, "error", err.Error())
		}
	}

	e.recordActivity(ctx, "comment", "commented on a memory.", "chat")
	return result, nil
}

// AddPostComment appends a comment to a feed post and mirrors it onto the
// linked vault item.
func (e *Engine) AddPostComment(ctx context.Context, postID, text string) (*models.PostComment, error) {
	p, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	post, ok := e.feed.Find(postID)
	if !ok {
		return nil, nil
	}

	now := e.now().UnixMilli()
	comment := models.PostComment{
		ID:          models.FlexID(strconv.FormatInt(now, 10)),
		Author:      p.DisplayName,
		AuthorImage: p.PhotoURL,
		Text:        text,
		Timestamp:   now,
	}

	list := append(post.CommentsList, comment)
	count := int64(len(list))
	patch := feedapi.Patch{HasCommentsList: true, CommentsList: list, Comments: &count}
	if err := e.feed.Update(ctx, post.ID, patch); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	if post.VaultMediaID != "" {
		if err := e.addMediaCommentMirror(ctx, post.VaultMediaID, models.MediaComment{
			ID:     comment.ID,
			Text:   text,
			Author: p.DisplayName,
			Avatar: commentAvatar(p.PhotoURL),
		}); err != nil {
			e.logger.Warn(ctx, "comment not propagated to vault", "post", post.ID, "error", err.Error())
		}
	}

	e.recordActivity(ctx, "comment", "commented on a post.", "chat")
	return &comment, nil
}

func (e *Engine) addMediaCommentMirror(ctx context.Context, mediaID models.FlexID, comment models.MediaComment) error {
	v, err := e.vault.Get(ctx)
	if err != nil {
		return err
	}
	item := v.FindMedia(mediaID)
	if item == nil {
		return nil
	}
	item.Comments = append(item.Comments, comment)
	return e.vault.Save(ctx, v)
}

// DeletePostComment removes one comment from a post and recomputes the
// counter.
func (e *Engine) DeletePostComment(ctx context.Context, postID string, commentID models.FlexID) error {
	post, ok := e.feed.Find(postID)
	if !ok {
		return nil
	}

	list := make([]models.PostComment, 0, len(post.CommentsList))
	for _, c := range post.CommentsList {
		if !c.ID.Matches(commentID) {
			list = append(list, c)
		}
	}
	if len(list) == len(post.CommentsList) {
		return nil
	}

	count := int64(len(list))
	patch := feedapi.Patch{HasCommentsList: true, CommentsList: list, Comments: &count}
	return e.feed.Update(ctx, post.ID, patch)
}

// DeleteMedia removes a vault item. The mirrored post stays: removing a
// memory from the vault does not unshare it.
func (e *Engine) DeleteMedia(ctx context.Context, mediaID models.FlexID) error {
	return e.vault.DeleteMedia(ctx, mediaID)
}

// DeletePost removes a feed post. The vault mirror stays.
func (e *Engine) DeletePost(ctx context.Context, postID string) error {
	return e.feed.Delete(ctx, postID)
}

func (e *Engine) recordActivity(ctx context.Context, typ, text, icon string) {
	now := e.now().UnixMilli()
	err := e.activities.Record(ctx, models.Activity{
		ID:        strconv.FormatInt(now, 10),
		Type:      typ,
		Actor:     "You",
		Text:      text,
		Timestamp: now,
		Icon:      icon,
	})
	if err != nil {
		e.logger.Warn(ctx, "activity not recorded", "error", err.Error())
	}
}

// commentAvatar keeps inline payloads out of comment records; a data URL
// collapses to the sentinel resolved against the profile at render time.
func commentAvatar(photoURL string) string {
	if strings.HasPrefix(photoURL, "data:") {
		return models.AvatarSentinel
	}
	return photoURL
}
