package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

// ErrPreloadFailed means the chosen image could not be fetched or decoded;
// the background was left unchanged.
var ErrPreloadFailed = errors.New("image preload failed")

var errEmptyBingArchive = errors.New("bing archive returned no images")

// Wallpaper provider defaults.
const (
	DefaultPicsumURL   = "https://picsum.photos"
	DefaultRandomURL   = "https://imgapi.xl0408.top/index.php"
	DefaultBingTimeout = 10 * time.Second
	DefaultWidth       = 1920
	DefaultHeight      = 1080
)

// WallpaperOptions configures the network wallpaper sources.
type WallpaperOptions struct {
	PicsumURL   string
	RandomURL   string
	BingTimeout time.Duration
	Width       int
	Height      int
}

// DefaultWallpaperOptions returns the stock provider endpoints.
func DefaultWallpaperOptions() WallpaperOptions {
	return WallpaperOptions{
		PicsumURL:   DefaultPicsumURL,
		RandomURL:   DefaultRandomURL,
		BingTimeout: DefaultBingTimeout,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

func (o WallpaperOptions) withDefaults() WallpaperOptions {
	def := DefaultWallpaperOptions()
	if o.PicsumURL == "" {
		o.PicsumURL = def.PicsumURL
	}
	if o.RandomURL == "" {
		o.RandomURL = def.RandomURL
	}
	if o.BingTimeout <= 0 {
		o.BingTimeout = def.BingTimeout
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	o.PicsumURL = strings.TrimRight(o.PicsumURL, "/")
	return o
}

// ResolveWallpaperUseCase turns a wallpaper source and category into a
// background URL. A URL is committed to the store only after it preloads.
type ResolveWallpaperUseCase struct {
	store     *settings.Store
	preloader port.ImagePreloader
	bing      port.BingArchive
	opts      WallpaperOptions
	intn      func(n int) int
	now       func() time.Time
}

// NewResolveWallpaperUseCase creates a new wallpaper resolver.
func NewResolveWallpaperUseCase(
	store *settings.Store,
	preloader port.ImagePreloader,
	bing port.BingArchive,
	opts WallpaperOptions,
) *ResolveWallpaperUseCase {
	return &ResolveWallpaperUseCase{
		store:     store,
		preloader: preloader,
		bing:      bing,
		opts:      opts.withDefaults(),
		intn:      rand.IntN,
		now:       time.Now,
	}
}

// WithRandom replaces the uniform picker; intn must return a value in [0, n).
func (uc *ResolveWallpaperUseCase) WithRandom(intn func(n int) int) *ResolveWallpaperUseCase {
	uc.intn = intn
	return uc
}

// WithClock replaces the time source used for cache-busting seeds.
func (uc *ResolveWallpaperUseCase) WithClock(now func() time.Time) *ResolveWallpaperUseCase {
	uc.now = now
	return uc
}

// ResolveCurrent resolves using the stored wallpaper source.
func (uc *ResolveWallpaperUseCase) ResolveCurrent(ctx context.Context, category string) (string, error) {
	return uc.Resolve(ctx, uc.store.WallpaperSource.Get(), category)
}

// Resolve picks a wallpaper from source, preloads it and commits it as the
// background. Unknown sources behave like the curated local catalog.
func (uc *ResolveWallpaperUseCase) Resolve(ctx context.Context, source, category string) (string, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("source", source).Str("category", category).Msg("resolving wallpaper")

	switch source {
	case entity.WallpaperSourceRandom:
		return uc.SetBackground(ctx, uc.randomURL())
	case entity.WallpaperSourceUnsplash:
		return uc.SetBackground(ctx, uc.unsplashURL(category))
	case entity.WallpaperSourcePicsum:
		return uc.SetBackground(ctx, uc.picsumURL())
	case entity.WallpaperSourceBing:
		return uc.resolveBing(ctx)
	default:
		return uc.resolveLocal(ctx, category)
	}
}

// SetBackground preloads target and then stores it as the background.
func (uc *ResolveWallpaperUseCase) SetBackground(ctx context.Context, target string) (string, error) {
	log := logging.FromContext(ctx)

	loaded, err := uc.preloader.Preload(ctx, target)
	if err != nil {
		log.Warn().Err(err).Str("url", target).Msg("wallpaper preload failed")
		return "", fmt.Errorf("%w: %s: %w", ErrPreloadFailed, target, err)
	}

	uc.store.BackgroundURL.Set(loaded)
	log.Info().Str("url", loaded).Msg("background updated")
	return loaded, nil
}

func (uc *ResolveWallpaperUseCase) resolveLocal(ctx context.Context, category string) (string, error) {
	candidates := entity.WallpapersByCategory(category)
	if len(candidates) == 0 {
		logging.FromContext(ctx).Debug().Str("category", category).Msg("no curated wallpapers in category")
		return uc.store.BackgroundURL.Get(), nil
	}
	return uc.SetBackground(ctx, candidates[uc.intn(len(candidates))].URL)
}

func (uc *ResolveWallpaperUseCase) resolveBing(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	images, err := uc.fetchBing(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Dur("timeout", uc.opts.BingTimeout).Msg("bing wallpaper request timed out, using picsum fallback")
		} else {
			log.Warn().Err(err).Msg("failed to fetch bing wallpaper, using picsum fallback")
		}
		return uc.SetBackground(ctx, uc.picsumURL())
	}

	return uc.SetBackground(ctx, images[uc.intn(len(images))].URL)
}

func (uc *ResolveWallpaperUseCase) fetchBing(ctx context.Context) ([]entity.BingImage, error) {
	if uc.bing == nil {
		return nil, errors.New("bing archive not configured")
	}

	fetchCtx, cancel := context.WithTimeout(ctx, uc.opts.BingTimeout)
	defer cancel()

	images, err := uc.bing.FetchImages(fetchCtx)
	if err != nil {
		if fetchCtx.Err() != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		return nil, err
	}
	if len(images) == 0 {
		return nil, errEmptyBingArchive
	}
	return images, nil
}

func (uc *ResolveWallpaperUseCase) millis() string {
	return strconv.FormatInt(uc.now().UnixMilli(), 10)
}

func (uc *ResolveWallpaperUseCase) randomURL() string {
	sep := "?"
	if strings.Contains(uc.opts.RandomURL, "?") {
		sep = "&"
	}
	return uc.opts.RandomURL + sep + "t=" + uc.millis()
}

func (uc *ResolveWallpaperUseCase) unsplashURL(category string) string {
	seeds := entity.CategorySeeds(category)
	return uc.seededURL(seeds[uc.intn(len(seeds))] + uc.millis())
}

func (uc *ResolveWallpaperUseCase) picsumURL() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for range 6 {
		b.WriteByte(alphabet[uc.intn(len(alphabet))])
	}
	return uc.seededURL(b.String() + uc.millis())
}

func (uc *ResolveWallpaperUseCase) seededURL(seed string) string {
	return fmt.Sprintf("%s/seed/%s/%d/%d", uc.opts.PicsumURL, seed, uc.opts.Width, uc.opts.Height)
}

// Sources lists the selectable wallpaper sources.
func (uc *ResolveWallpaperUseCase) Sources() []entity.WallpaperSource {
	return entity.WallpaperSources()
}

// Categories lists the wallpaper categories.
func (uc *ResolveWallpaperUseCase) Categories() []entity.WallpaperCategory {
	return entity.WallpaperCategories()
}

// WallpapersByCategory lists curated wallpapers; "" or "all" lists all.
func (uc *ResolveWallpaperUseCase) WallpapersByCategory(category string) []entity.Wallpaper {
	return entity.WallpapersByCategory(category)
}
