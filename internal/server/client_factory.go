package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-edge-service/internal/config"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/metrics"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote/supabase"
)

// clientFactory assembles the table client with shared wrappers (rate limit + instrumentation).
type clientFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newClientFactory(logger *slog.Logger, recorder *metrics.Recorder) clientFactory {
	return clientFactory{logger: logger, metrics: recorder}
}

// build always returns a client. Without a configured URL every query fails with
// remote.ErrSourceUnavailable, so mock mode keeps working.
func (f clientFactory) build(cfg config.Config) remote.TableClient {
	if !cfg.Supabase.Configured() {
		logging.Warn(f.logger, "supabase url not configured, remote mode unavailable")
	}
	base := supabase.NewClient(supabase.Config{
		BaseURL: cfg.Supabase.URL,
		APIKey:  cfg.Supabase.AnonKey,
		Timeout: cfg.Supabase.Timeout,
	})
	limited := remote.NewRateLimitedClient(base, cfg.Supabase.RateLimit, f.logger)
	return remote.NewInstrumentedClient(limited, f.logger, f.metrics)
}
