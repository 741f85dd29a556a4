package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/repository"
)

// drivePrefix marks image references stored in Google Drive ("drive:<fileId>")
const drivePrefix = "drive:"

// ErrImageSourceUnavailable is returned for Drive images when Drive is not configured
var ErrImageSourceUnavailable = errors.New("image source unavailable")

// ProductImageService serves resized product images from local assets or Google Drive
type ProductImageService struct {
	repository   repository.ProductRepositoryInterface
	driveService DriveServiceInterface
	optimizer    *ImageOptimizer
	assetsDir    string
}

// NewProductImageService creates a ProductImageService. driveService may be nil.
func NewProductImageService(
	repo repository.ProductRepositoryInterface,
	driveService DriveServiceInterface,
	optimizer *ImageOptimizer,
	assetsDir string,
) *ProductImageService {
	return &ProductImageService{
		repository:   repo,
		driveService: driveService,
		optimizer:    optimizer,
		assetsDir:    assetsDir,
	}
}

// ProductImage returns the product image as JPEG at the requested size, using the cache when possible
func (s *ProductImageService) ProductImage(ctx context.Context, slug string, size string) ([]byte, error) {
	p, ok := s.repository.FindBySlug(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, slug)
	}
	size = NormalizeImageSize(size)

	cachePath := s.optimizer.CachePath(p.Slug, size)
	if data, ok := s.optimizer.ReadFromCache(cachePath); ok {
		return data, nil
	}

	original, err := s.loadOriginal(ctx, p.Image)
	if err != nil {
		return nil, err
	}

	optimized, err := OptimizeImage(original, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize image for %s: %w", p.Slug, err)
	}

	if err := s.optimizer.SaveToCache(cachePath, optimized); err != nil {
		// Serving still works without the cache
		log.Warn().Err(err).Msgf("⚠️  Failed to cache image for %s", p.Slug)
	}
	return optimized, nil
}

func (s *ProductImageService) loadOriginal(ctx context.Context, ref string) ([]byte, error) {
	if fileID, ok := strings.CutPrefix(ref, drivePrefix); ok {
		if s.driveService == nil {
			return nil, fmt.Errorf("%w: drive is not configured for %s", ErrImageSourceUnavailable, ref)
		}
		return s.driveService.DownloadImage(ctx, fileID)
	}

	if ref == "" {
		return nil, fmt.Errorf("%w: product has no image", ErrImageSourceUnavailable)
	}

	// Clean against a rooted path so references cannot leave the assets directory
	path := filepath.Join(s.assetsDir, filepath.Clean("/"+ref))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrImageSourceUnavailable, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return data, nil
}
