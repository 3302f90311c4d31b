package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"tutorial-landing/pkg/config"
	"tutorial-landing/pkg/handlers"
	applog "tutorial-landing/pkg/log"
	"tutorial-landing/pkg/render"
	"tutorial-landing/pkg/services"
	"tutorial-landing/pkg/youtube"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Start the web server for the landing page. Video metadata is refreshed in the
background, through the Data API when an API key is set and from the public pages otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return ServeWebsite(cmd.Context(), cfg)
		},
	}
}

// ServeWebsite runs the web server and the background enrichment until ctx is done
func ServeWebsite(ctx context.Context, cfg *config.Config) error {
	logger := applog.WithComponent("server")

	source, err := enrichmentSource(ctx, cfg)
	if err != nil {
		return err
	}
	thumbs := services.NewThumbnailChecker(config.RequestTimeout, applog.WithComponent("thumbnails"))
	enricher := services.NewEnricher(source, thumbs, config.RequestDelay, applog.WithComponent("enrichment"))
	svc := services.NewService(cfg, enricher, applog.WithComponent("content"))

	renderer, err := render.NewPugRenderer(cfg.ViewsDir, "index.pug")
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := &handlers.Handlers{
		Service:  svc,
		Builder:  render.NewBuilder(render.ServerRoutes, applog.WithComponent("render")),
		Renderer: renderer,
		Tracker:  services.NewPlayTracker(reg, applog.WithComponent("tracker")),
		Thumbs:   thumbs,
		Logger:   logger,
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           handlers.NewRouter(h, cfg.PublicDir, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cfg.PrintServerStartMessage()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		if err := svc.Watch(ctx); err != nil {
			logger.Warn().Err(err).Msg("content watcher disabled, use POST /admin/reload after edits")
		}
		return nil
	})

	g.Go(func() error {
		runEnrichment(ctx, svc, enricher, applog.WithComponent("enrichment"))
		return nil
	})

	return g.Wait()
}

// enrichmentSource picks the Data API when a key is configured
func enrichmentSource(ctx context.Context, cfg *config.Config) (services.Source, error) {
	if cfg.YouTubeAPIKey == "" {
		logger := applog.WithComponent("enrichment")
		return services.PageSource{
			OEmbed: youtube.NewOEmbedFetcher(cfg.OEmbedURL, config.RequestTimeout, logger),
			Relay:  youtube.NewRelayScraper(cfg.RelayURL, config.RequestTimeout, config.DescriptionLimit),
			Logger: logger,
		}, nil
	}

	var opts []option.ClientOption
	if cfg.DataAPIURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.DataAPIURL))
	}
	fetcher, err := youtube.NewDataAPIFetcher(ctx, cfg.YouTubeAPIKey, config.RequestTimeout, config.DescriptionLimit, applog.WithComponent("data-api"), opts...)
	if err != nil {
		return nil, err
	}
	return services.DataAPISource{Fetcher: fetcher}, nil
}

// runEnrichment never fails the server: errors are logged and the configured
// records stay in use.
func runEnrichment(ctx context.Context, svc *services.Service, enricher *services.Enricher, logger zerolog.Logger) {
	videos, err := svc.GetVideos()
	if err != nil {
		logger.Warn().Err(err).Msg("cannot enrich, content failed to load")
		return
	}
	if err := enricher.Run(ctx, videos); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn().Err(err).Msg("enrichment stopped")
	}
}
