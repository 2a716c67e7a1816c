package ioutils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

// ErrNotImage is returned when cover art data is not a JPEG or PNG image.
var ErrNotImage = errors.New("not a supported image")

// maxCoverSize bounds the size of a cover file read from disk.
const maxCoverSize = 10 * 1024 * 1024

// ImageService prepares cover art for embedding in MP3 files.
//
// Example:
//
//	svc := NewImageService()
//	data, name, err := svc.LoadCover(ctx, albumDir, []string{"cover.jpg", "folder.jpg"})
//	if err == nil {
//	    data, _ = svc.ResizeImage(ctx, data, 500, 500)
//	}
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// DetectImage returns the MIME type of data, or ErrNotImage when the data is
// not a JPEG or PNG image.
func (s *ImageService) DetectImage(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("failed to determine file type: %w", err)
	}
	switch kind.MIME.Value {
	case "image/jpeg", "image/png":
		return kind.MIME.Value, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotImage, kind.Extension)
}

// LoadCover reads the first of candidates that exists in dir and holds an
// image. It returns the data and the name of the file that was used.
// os.ErrNotExist is returned when none of the candidates is usable.
func (s *ImageService) LoadCover(ctx context.Context, dir string, candidates []string) ([]byte, string, error) {
	for _, name := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() || info.Size() > maxCoverSize {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		if _, err := s.DetectImage(data); err != nil {
			continue
		}
		return data, name, nil
	}
	return nil, "", os.ErrNotExist
}

// ResizeImage scales an image to fit within maxWidth x maxHeight, keeping
// the aspect ratio, and returns it JPEG encoded. Images that already fit
// are returned unchanged.
//
// The Catmull-Rom kernel is used for scaling.
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxWidth && height <= maxHeight {
		return data, nil
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}
	width = max(width, 1)
	height = max(height, 1)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToJPEG re-encodes an image as JPEG with quality 90. JPEG input is
// returned unchanged.
func (s *ImageService) ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mime, err := s.DetectImage(data); err == nil && mime == "image/jpeg" {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
