package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/mytab/internal/infrastructure/config"
	"github.com/bnema/mytab/internal/infrastructure/homepage"
	"github.com/bnema/mytab/internal/logging"
)

const shutdownTimeout = 5 * time.Second

var (
	serveAddr    string
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the new-tab API",
	Long: `Serve the JSON API used by the new-tab page on server.addr.

config.toml is watched while the server runs: logging.level and
favicon.proxy_template apply immediately, other keys need a restart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}

		addr := app.Config.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "server"), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log := logging.FromContext(ctx)

		if !serveNoWatch && app.ConfigMgr != nil {
			app.ConfigMgr.OnConfigChange(func(cfg *config.Config) { app.ApplyConfig(cfg) })
			if err := app.ConfigMgr.Watch(); err != nil {
				log.Warn().Err(err).Msg("config hot reload disabled")
			}
		}

		handler := homepage.NewHandler(ctx, homepage.Config{
			Store:       svc.Store,
			BookmarksUC: svc.Bookmarks,
			PrefsUC:     svc.Preferences,
			SearchUC:    svc.Search,
			WallpaperUC: svc.Wallpaper,
			TransferUC:  svc.Transfer,
			ImportUC:    svc.Import,
			Favicons:    app.NewFaviconService(),
		})

		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", addr, err)
		}
		srv := &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			// Event streams end with ctx.
			BaseContext: func(net.Listener) context.Context { return ctx },
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info().Str("addr", listener.Addr().String()).Msg("serving new-tab API")
			if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default server.addr)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "do not reload config.toml on change")
}
