// Package media normalizes uploaded payloads into the inline data-URL form
// the rest of the application stores and renders.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/logging"
	"github.com/nfnt/resize"
)

const (
	// CanvasSize is the square edge every shared image is letterboxed into.
	CanvasSize = 1080
	// AvatarSize is the smaller square used for profile photos.
	AvatarSize = 400
	// jpegQuality keeps inline payloads within the local storage quota.
	jpegQuality = 50
)

// Processor turns raw media bytes into data URLs.
type Processor struct {
	logger logging.Logger
}

func NewProcessor(logger logging.Logger) *Processor {
	return &Processor{logger: logger.With("module", "media")}
}

// Encode converts a payload into a data URL. Images are letterboxed onto a
// CanvasSize square; videos and undecodable payloads pass through as a plain
// base64 data URL of the declared type.
func (p *Processor) Encode(ctx context.Context, data []byte, mediaType, mimeType string) (string, error) {
	if mediaType == models.MediaTypeImage {
		out, err := letterbox(data, CanvasSize)
		if err == nil {
			return out, nil
		}
		p.logger.Warn(ctx, "image not decodable, storing as-is", "error", err.Error())
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return dataURL(mimeType, data), nil
}

// EncodeAvatar produces the AvatarSize variant used for profile photos.
func (p *Processor) EncodeAvatar(data []byte) (string, error) {
	out, err := letterbox(data, AvatarSize)
	if err != nil {
		return "", fmt.Errorf("decoding avatar: %w", err)
	}
	return out, nil
}

// letterbox scales the image to fit a size×size square, centers it on a
// black canvas and re-encodes it as JPEG.
func letterbox(data []byte, size int) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	fitted := resize.Thumbnail(uint(size), uint(size), src, resize.Lanczos3)

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	b := fitted.Bounds()
	offset := image.Pt((size-b.Dx())/2, (size-b.Dy())/2)
	draw.Draw(canvas, b.Add(offset), fitted, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return dataURL("image/jpeg", buf.Bytes()), nil
}

func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
