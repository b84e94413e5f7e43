package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	appgames "github.com/preston-bernstein/nhl-edge-service/internal/app/games"
	apphome "github.com/preston-bernstein/nhl-edge-service/internal/app/home"
	appteams "github.com/preston-bernstein/nhl-edge-service/internal/app/teams"
	"github.com/preston-bernstein/nhl-edge-service/internal/config"
	httpserver "github.com/preston-bernstein/nhl-edge-service/internal/http"
	"github.com/preston-bernstein/nhl-edge-service/internal/http/handlers"
	"github.com/preston-bernstein/nhl-edge-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/logo"
	"github.com/preston-bernstein/nhl-edge-service/internal/metrics"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
	"github.com/preston-bernstein/nhl-edge-service/internal/settings"
	"github.com/preston-bernstein/nhl-edge-service/internal/teamcache"
	"github.com/preston-bernstein/nhl-edge-service/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	settings      settings.Store
	settingsClose func() error
	teams         *teamcache.Cache
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the default Supabase client and settings store.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithClient(cfg config.Config, logger *slog.Logger, client remote.TableClient) *Server {
	return newServerWithMetrics(cfg, logger, client, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, client remote.TableClient, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if client == nil {
		client = newClientFactory(logger, recorder).build(cfg)
	}
	store := buildSettings(cfg, logger)
	// A fetch may wait on the rate limiter before its own request timeout starts.
	cache := teamcache.New(client,
		teamcache.WithLogger(logger),
		teamcache.WithMetrics(recorder),
		teamcache.WithFetchTimeout(2*cfg.Supabase.Timeout),
	)
	loc := timeutil.ResolveLocation(cfg.Display.Timezone, time.Local)

	handler := buildHandler(cfg, logger, recorder, client, store.store, cache, loc)
	httpSrv := buildHTTPServer(cfg, handler, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		settings:      store.store,
		settingsClose: store.close,
		teams:         cache,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, store settings.Store, httpSrv httpServer, closeSettings func() error) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		settings:      store,
		settingsClose: closeSettings,
		httpServer:    httpSrv,
	}
}

func buildHandler(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, client remote.TableClient, store settings.Store, cache *teamcache.Cache, loc *time.Location) *handlers.Handler {
	gamesSvc := appgames.NewService(appgames.Config{
		Settings:   store,
		Teams:      cache,
		Games:      client,
		GamesLimit: cfg.Supabase.GamesLimit,
		Logger:     logger,
	})
	teamsSvc := appteams.NewService(store, cache, logger)
	homeSvc := apphome.NewService(gamesSvc, cfg.Display.FeaturedTeams, logger)
	logos := logo.NewRenderer(logo.NewFetcher(logo.Config{
		Timeout: cfg.Logo.Timeout,
		Logger:  logger,
		Metrics: recorder,
	}))

	return handlers.NewHandler(handlers.Config{
		Home:     homeSvc,
		Games:    gamesSvc,
		Teams:    teamsSvc,
		Index:    cache,
		Logos:    logos,
		Settings: store,
		Location: loc,
		Logger:   logger,
	})
}

func buildHTTPServer(cfg config.Config, handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return newNetHTTPServer(cfg.Port, wrapped)
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// The settings db closes after the listener so in-flight writes finish.
	if s.settingsClose != nil {
		if err := s.settingsClose(); err != nil {
			logging.Warn(s.logger, "settings store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
