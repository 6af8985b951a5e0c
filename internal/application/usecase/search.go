package usecase

import (
	"context"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/domain/url"
	"github.com/bnema/mytab/internal/logging"
)

// SearchUseCase turns search box input into an engine URL.
type SearchUseCase struct {
	store *settings.Store
}

// NewSearchUseCase creates a new search use case.
func NewSearchUseCase(store *settings.Store) *SearchUseCase {
	return &SearchUseCase{store: store}
}

// CurrentEngine returns the selected engine, or the first known engine when
// the stored id is unknown.
func (uc *SearchUseCase) CurrentEngine() entity.SearchEngine {
	if engine, ok := entity.FindSearchEngine(uc.store.SearchEngine.Get()); ok {
		return engine
	}
	return entity.SearchEngines()[0]
}

// BuildURL returns the search URL for query, or "" for blank input.
// A leading "!shortcut" selects another engine for this query only.
func (uc *SearchUseCase) BuildURL(ctx context.Context, query string) string {
	engine := uc.CurrentEngine()

	shortcuts := make(map[string]string)
	for _, e := range entity.SearchEngines() {
		shortcuts[e.Shortcut] = e.URL
	}

	target := url.BuildSearchURL(query, shortcuts, engine.URL)
	if target != "" {
		logging.FromContext(ctx).Debug().Str("engine", engine.ID).Str("url", target).Msg("search url built")
	}
	return target
}
