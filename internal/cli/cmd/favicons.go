package cmd

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/mytab/internal/domain/service"
	domainurl "github.com/bnema/mytab/internal/domain/url"
	"github.com/bnema/mytab/internal/logging"
)

const warmConcurrency = 4

var faviconOutput string

var faviconsCmd = &cobra.Command{
	Use:   "favicons",
	Short: "Manage the favicon cache behind /api/favicon",
}

var faviconsGetCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Fetch the icon for a site through the cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		icons := app.NewFaviconService()
		data, contentType, err := icons.Icon(app.Ctx(), domainurl.Normalize(args[0]))
		if err != nil {
			return err
		}
		if faviconOutput == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %d bytes\n", contentType, len(data))
			return nil
		}
		if err := os.WriteFile(faviconOutput, data, 0o600); err != nil {
			return fmt.Errorf("failed to write icon: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("wrote "+faviconOutput))
		return nil
	},
}

var faviconsWarmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Prefetch the icons of every bookmark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		icons := app.NewFaviconService()
		ctx := logging.WithComponent(app.Ctx(), "favicons")
		log := logging.FromContext(ctx)

		var fetched, missing atomic.Int32
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(warmConcurrency)
		for _, b := range svc.Bookmarks.ListBookmarks() {
			g.Go(func() error {
				_, _, err := icons.Icon(gctx, b.URL)
				switch {
				case err == nil:
					fetched.Add(1)
				case errors.Is(err, service.ErrNoFavicon):
					missing.Add(1)
				default:
					missing.Add(1)
					log.Debug().Err(err).Str("url", b.URL).Msg("favicon fetch failed")
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(
			fmt.Sprintf("cached %d icons, %d unavailable", fetched.Load(), missing.Load())))
		return nil
	},
}

var faviconsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached icon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.NewFaviconService().Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("favicon cache cleared"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(faviconsCmd)
	faviconsCmd.AddCommand(faviconsGetCmd, faviconsWarmCmd, faviconsClearCmd)

	faviconsGetCmd.Flags().StringVarP(&faviconOutput, "output", "o", "", "write the icon to this file")
}
