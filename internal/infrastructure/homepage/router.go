package homepage

import (
	"context"
	"net/http"
	"time"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/service"
	"github.com/bnema/mytab/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds dependencies for the homepage API.
type Config struct {
	Store       *settings.Store
	BookmarksUC *usecase.ManageBookmarksUseCase
	PrefsUC     *usecase.UpdatePreferencesUseCase
	SearchUC    *usecase.SearchUseCase
	WallpaperUC *usecase.ResolveWallpaperUseCase
	TransferUC  *usecase.TransferConfigUseCase
	ImportUC    *usecase.ImportBookmarksUseCase
	// Favicons is optional; /api/favicon is not mounted without it.
	Favicons service.FaviconSource
}

// NewHandler builds the HTTP API. ctx carries the base logger used for every request.
func NewHandler(ctx context.Context, cfg Config) http.Handler {
	log := logging.FromContext(ctx)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(withRequestLogger(ctx))
	r.Use(middleware.Recoverer)

	bookmarks := NewBookmarkHandlers(cfg.BookmarksUC)
	groups := NewGroupHandlers(cfg.BookmarksUC)
	prefs := NewPreferenceHandlers(cfg.Store, cfg.PrefsUC, cfg.WallpaperUC)
	transfer := NewTransferHandlers(cfg.TransferUC, cfg.ImportUC)
	events := NewEventHandlers(cfg.Store)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", prefs.HandleState)
		r.Get("/events", events.HandleStream)
		r.Get("/catalog", prefs.HandleCatalog)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", bookmarks.HandleList)
			r.Post("/", bookmarks.HandleCreate)
			r.Patch("/{id}", bookmarks.HandleUpdate)
			r.Delete("/{id}", bookmarks.HandleDelete)
			r.Post("/{id}/move", bookmarks.HandleMove)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", groups.HandleList)
			r.Post("/", groups.HandleCreate)
			r.Put("/active", groups.HandleSetActive)
			r.Patch("/{id}", groups.HandleUpdate)
			r.Delete("/{id}", groups.HandleDelete)
		})

		r.Patch("/preferences", prefs.HandleUpdate)
		r.Post("/wallpaper", prefs.HandleWallpaper)

		r.Get("/config/export", transfer.HandleExport)
		r.Post("/config/import", transfer.HandleImport)
		r.Get("/config/schema", transfer.HandleSchema)

		r.Get("/browser-bookmarks", transfer.HandleListBrowser)
		r.Post("/browser-bookmarks/import", transfer.HandleImportBrowser)

		if cfg.Favicons != nil {
			r.Get("/favicon", NewFaviconHandlers(cfg.Favicons).HandleGet)
		}
	})

	r.Get("/search", NewSearchHandler(cfg.SearchUC))

	log.Debug().Msg("homepage API routes registered")
	return r
}

// withRequestLogger attaches the base logger, tagged with the request id, to each request.
func withRequestLogger(base context.Context) func(http.Handler) http.Handler {
	logger := logging.FromContext(base)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logging.WithContext(r.Context(), *logger)
			ctx = logging.WithRequestID(ctx, middleware.GetReqID(ctx))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			logging.FromContext(ctx).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("http request")
		})
	}
}
