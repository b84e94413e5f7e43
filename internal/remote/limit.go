package remote

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

// rateLimitedClient wraps a TableClient and spaces queries to respect the project quota.
type rateLimitedClient struct {
	next    TableClient
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedClient returns a TableClient that allows perSecond queries with a burst
// of one table pair. Calls block until a token is available or ctx is done.
func NewRateLimitedClient(next TableClient, perSecond float64, logger *slog.Logger) TableClient {
	if perSecond <= 0 {
		perSecond = 1
	}
	return &rateLimitedClient{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 2),
		logger:  logger,
	}
}

func (c *rateLimitedClient) QueryTeams(ctx context.Context) ([]TeamRow, error) {
	if err := c.wait(ctx, TableTeams); err != nil {
		return nil, err
	}
	return c.next.QueryTeams(ctx)
}

func (c *rateLimitedClient) QueryGames(ctx context.Context, limit int) ([]GameRow, error) {
	if err := c.wait(ctx, TableGames); err != nil {
		return nil, err
	}
	return c.next.QueryGames(ctx, limit)
}

func (c *rateLimitedClient) wait(ctx context.Context, table string) error {
	if c == nil || c.next == nil {
		return &QueryError{Table: table, Err: ErrSourceUnavailable}
	}
	if err := c.limiter.Wait(ctx); err != nil {
		if c.logger != nil {
			c.logger.Warn("rate-limited query canceled", slog.String("table", table), "error", err)
		}
		return &QueryError{Table: table, Err: err}
	}
	return nil
}
