package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/netx"
)

func mediaTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".webm", ".avi", ".mkv":
		return models.MediaTypeVideo
	default:
		return models.MediaTypeImage
	}
}

// loadPayload turns a local file into the reference stored on the post: an
// inline data URL, or, for videos while online, an object key behind a
// presigned upload.
func (a *App) loadPayload(ctx context.Context, path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	mediaType := mediaTypeForFile(path)
	mimeType := mime.TypeByExtension(filepath.Ext(path))

	// Videos are too large to inline; hand them to the server when it is
	// reachable.
	if mediaType == models.MediaTypeVideo && a.Mode == ModeOnline {
		url, key, err := a.api.GetUploadURL(ctx, filepath.Base(path), mimeType)
		if err == nil {
			if err := netx.UploadToPresignedURL(ctx, url, data, mimeType); err == nil {
				return key, mediaType, nil
			}
		}
		a.logger.Warn(ctx, "presigned upload failed, inlining payload", "file", path)
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), mediaType, nil
	}

	ref, err := a.processor.Encode(ctx, data, mediaType, mimeType)
	if err != nil {
		return "", "", err
	}
	return ref, mediaType, nil
}

// Post shares a memory: the content goes to the feed and a linked copy
// lands in the vault.
func (a *App) Post(ctx context.Context) error {
	out := os.Stdout

	content, err := GetMultiline(a.reader, "What do you want to share?", out)
	if err != nil {
		return err
	}

	path, err := GetSimpleText(a.reader, "Attach a photo or video (file path, optional):", out)
	if err != nil {
		return err
	}

	var payloadRef, mediaType string
	if path != "" {
		payloadRef, mediaType, err = a.loadPayload(ctx, path)
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
	}

	res, err := a.engine.ShareMemory(ctx, content, mediaType, payloadRef)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if res.VaultWarning != nil {
		fmt.Println("Note: the vault copy could not be saved:", res.VaultWarning.Error())
	}

	fmt.Printf("Shared (post %s).\n", res.Post.ID)
	return nil
}

func (a *App) Feed(ctx context.Context) error {
	if err := a.feed.Err(); err != nil {
		fmt.Println("Live feed unavailable, showing cached posts:", err.Error())
	}

	posts := a.feed.Posts()
	if len(posts) == 0 {
		fmt.Println("The feed is empty.")
		return nil
	}

	for _, p := range posts {
		fmt.Printf("[%s] %s (%s) — %s\n", p.ID, p.Author, p.Relationship, p.DisplayTime)
		if p.Content != "" {
			fmt.Println("  " + p.Content)
		}
		attachments := ""
		if p.Image != "" {
			attachments = "photo"
		}
		if p.Video != "" {
			attachments = "video"
		}
		if attachments != "" {
			fmt.Println("  [" + attachments + "]")
		}
		liked := ""
		if p.IsLiked {
			liked = " (you)"
		}
		fmt.Printf("  %d like(s)%s, %d comment(s)\n", p.Likes, liked, p.Comments)
		for _, c := range p.CommentsList {
			fmt.Printf("    %s: %s\n", c.Author, c.Text)
		}
	}
	return nil
}

func (a *App) Like(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Post id:", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.engine.TogglePostLike(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if post == nil {
		fmt.Println("No such post.")
		return nil
	}

	if post.IsLiked {
		fmt.Printf("Liked (%d).\n", post.Likes)
	} else {
		fmt.Printf("Unliked (%d).\n", post.Likes)
	}
	return nil
}

func (a *App) Comment(ctx context.Context) error {
	out := os.Stdout
	id, err := GetSimpleText(a.reader, "Post id:", out)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Comment:", out)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	c, err := a.engine.AddPostComment(ctx, id, text)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if c == nil {
		fmt.Println("No such post.")
		return nil
	}

	fmt.Printf("Comment added (%s).\n", c.ID)
	return nil
}

func (a *App) DelComment(ctx context.Context) error {
	out := os.Stdout
	id, err := GetSimpleText(a.reader, "Post id:", out)
	if err != nil {
		return err
	}
	commentID, err := GetSimpleText(a.reader, "Comment id:", out)
	if err != nil {
		return err
	}

	if err := a.engine.DeletePostComment(ctx, id, models.FlexID(commentID)); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Comment removed.")
	return nil
}

func (a *App) DelPost(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Post id:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.engine.DeletePost(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Post removed. The vault copy, if any, is untouched.")
	return nil
}
