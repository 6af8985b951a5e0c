package port

import (
	"context"

	"github.com/bnema/mytab/internal/domain/entity"
)

// ImagePreloader fetches an image far enough to know it renders.
type ImagePreloader interface {
	// Preload returns the URL once the image has been fetched and decoded.
	Preload(ctx context.Context, url string) (string, error)
}

// BingArchive lists recent Bing daily images.
type BingArchive interface {
	// FetchImages returns the archive entries, newest first. Entry URLs are
	// absolute.
	FetchImages(ctx context.Context) ([]entity.BingImage, error)
}
