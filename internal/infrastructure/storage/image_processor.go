package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ProcessedCover holds the normalized cover and its thumbnail variant,
// both re-encoded as JPEG.
type ProcessedCover struct {
	Cover     []byte
	Thumbnail []byte
}

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 5 * 1024 * 1024} // 5MB
}

// ValidateImage checks JPEG/PNG and rejects files over MaxSize
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// ProcessCover resizes to cover (800px) and thumbnail (300px) variants,
// JPEG quality 90
func (p *ImageProcessor) ProcessCover(data []byte) (*ProcessedCover, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	encode := func(size int) ([]byte, error) {
		resized := imaging.Fit(img, size, size, imaging.Lanczos)
		b := new(bytes.Buffer)
		if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}

	cover, err := encode(800)
	if err != nil {
		return nil, fmt.Errorf("cannot encode cover: %w", err)
	}
	thumb, err := encode(300)
	if err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}

	return &ProcessedCover{Cover: cover, Thumbnail: thumb}, nil
}
