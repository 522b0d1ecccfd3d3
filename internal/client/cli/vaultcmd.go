package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/stores/vault"
)

func (a *App) Folders(ctx context.Context) error {
	v, err := a.vault.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, f := range v.Folders {
		label := ""
		if f.Name == models.GeneralFolderName {
			label = " (protected)"
		}
		fmt.Printf("[%s] %s%s — %d item(s)\n", f.ID, f.Name, label, len(f.Media))
	}
	return nil
}

func (a *App) NewFolder(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Folder name:", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}

	f, err := a.vault.AddFolder(ctx, name)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Printf("Created folder %s (%s).\n", f.Name, f.ID)
	return nil
}

func (a *App) DelFolder(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Folder id:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.vault.DeleteFolder(ctx, models.FlexID(id)); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Folder removed.")
	return nil
}

// Upload adds up to the batch cap of local files to a folder.
func (a *App) Upload(ctx context.Context) error {
	out := os.Stdout

	folderID, err := GetSimpleText(a.reader, "Folder id (empty for "+models.GeneralFolderName+"):", out)
	if err != nil {
		return err
	}
	if folderID == "" {
		folderID = models.GeneralFolderID.String()
	}

	line, err := GetSimpleText(a.reader, fmt.Sprintf("File paths, space separated (max %d):", vault.MaxUploadBatch), out)
	if err != nil {
		return err
	}
	paths := strings.Fields(line)
	if len(paths) == 0 {
		return nil
	}

	items := make([]models.MediaItem, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		mediaType := mediaTypeForFile(path)
		src, err := a.processor.Encode(ctx, data, mediaType, mime.TypeByExtension(filepath.Ext(path)))
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		items = append(items, models.MediaItem{
			ID:   vault.NewMediaID(),
			Type: mediaType,
			Src:  src,
		})
	}

	if err := a.vault.AddMedia(ctx, models.FlexID(folderID), items...); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Printf("Added %d item(s).\n", len(items))
	return nil
}

func (a *App) Media(ctx context.Context) error {
	v, err := a.vault.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, f := range v.Folders {
		fmt.Printf("%s:\n", f.Name)
		printMediaList(f.Media)
	}
	if len(v.Tagged) > 0 {
		fmt.Println("Tagged:")
		printMediaList(v.Tagged)
	}
	return nil
}

func printMediaList(media []models.MediaItem) {
	for _, m := range media {
		liked := ""
		if m.Liked {
			liked = " ♥"
		}
		tagged := ""
		if m.TaggedBy != "" {
			tagged = " (tagged by " + m.TaggedBy + ")"
		}
		fmt.Printf("  [%s] %s — %d like(s)%s, %d comment(s)%s\n",
			m.ID, m.Type, m.Likes, liked, len(m.Comments), tagged)
		for _, c := range m.Comments {
			fmt.Printf("    %s: %s\n", c.Author, c.Text)
		}
	}
}

func (a *App) LikeMedia(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Media id:", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.engine.ToggleMediaLike(ctx, models.FlexID(id))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if item == nil {
		fmt.Println("No such media item.")
		return nil
	}

	if item.Liked {
		fmt.Printf("Liked (%d).\n", item.Likes)
	} else {
		fmt.Printf("Unliked (%d).\n", item.Likes)
	}
	return nil
}

func (a *App) CommentMedia(ctx context.Context) error {
	out := os.Stdout
	id, err := GetSimpleText(a.reader, "Media id:", out)
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

	res, err := a.engine.AddMediaComment(ctx, models.FlexID(id), text)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if res == nil {
		fmt.Println("No such media item.")
		return nil
	}

	fmt.Printf("Comment added (%s).\n", res.Comment.ID)
	if res.VaultWarning != nil {
		fmt.Printf("Warning: %s. Use 'reset' to free local space.\n", res.VaultWarning)
	}
	return nil
}

func (a *App) DelMedia(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Media id:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.engine.DeleteMedia(ctx, models.FlexID(id)); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Media removed. The shared post, if any, is untouched.")
	return nil
}
