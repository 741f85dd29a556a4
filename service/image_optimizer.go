package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800

	ImageSizeThumb  = "thumb"
	ImageSizeMedium = "medium"
)

// ImageOptimizer resizes product images to JPEG and keeps them in a disk cache
type ImageOptimizer struct {
	cacheDir string
}

// NewImageOptimizer creates an ImageOptimizer caching into cacheDir
func NewImageOptimizer(cacheDir string) *ImageOptimizer {
	return &ImageOptimizer{cacheDir: cacheDir}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (o *ImageOptimizer) EnsureCacheDir() error {
	if err := os.MkdirAll(o.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// NormalizeImageSize maps any requested size to thumb or medium
func NormalizeImageSize(size string) string {
	if strings.ToLower(strings.TrimSpace(size)) == ImageSizeThumb {
		return ImageSizeThumb
	}
	return ImageSizeMedium
}

// CachePath returns the cache file path for a product image size
func (o *ImageOptimizer) CachePath(slug string, size string) string {
	filename := fmt.Sprintf("product_%s_%s.jpg", filepath.Base(slug), NormalizeImageSize(size))
	return filepath.Join(o.cacheDir, filename)
}

// ReadFromCache reads a cached image. ok is false when it is not cached yet.
func (o *ImageOptimizer) ReadFromCache(cachePath string) ([]byte, bool) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SaveToCache writes an image to the cache through a temp file and rename,
// so concurrent readers never see a partial file
func (o *ImageOptimizer) SaveToCache(cachePath string, imageData []byte) error {
	dir := filepath.Dir(cachePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.jpg")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	if _, err := tmp.Write(imageData); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), cachePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move image into cache: %w", err)
	}

	log.Debug().Msgf("✓ Image cached: %s", cachePath)
	return nil
}

// OptimizeImage converts an image to JPEG, shrinking it to fit the size's max dimension.
// imageData: raw image bytes (PNG, JPEG, etc.)
// size: "thumb" or "medium"
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if NormalizeImageSize(size) == ImageSizeThumb {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		log.Debug().Msgf("🔄 Resizing image: %dx%d -> fit %d", bounds.Dx(), bounds.Dy(), maxDim)
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Debug().Msgf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
