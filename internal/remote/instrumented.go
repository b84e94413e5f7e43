package remote

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/metrics"
)

// instrumentedClient records latency and failures for every table query and makes
// sure callers only ever see QueryError values. It never retries: a failed load is
// recovered by the caller refreshing.
type instrumentedClient struct {
	inner   TableClient
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedClient wraps inner with query metrics and logging.
func NewInstrumentedClient(inner TableClient, logger *slog.Logger, recorder *metrics.Recorder) TableClient {
	return &instrumentedClient{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
	}
}

func (c *instrumentedClient) QueryTeams(ctx context.Context) ([]TeamRow, error) {
	if c.inner == nil {
		return nil, c.finish(ctx, TableTeams, time.Now(), 0, ErrSourceUnavailable)
	}
	start := time.Now()
	rows, err := c.inner.QueryTeams(ctx)
	if err = c.finish(ctx, TableTeams, start, len(rows), err); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *instrumentedClient) QueryGames(ctx context.Context, limit int) ([]GameRow, error) {
	if c.inner == nil {
		return nil, c.finish(ctx, TableGames, time.Now(), 0, ErrSourceUnavailable)
	}
	start := time.Now()
	rows, err := c.inner.QueryGames(ctx, limit)
	if err = c.finish(ctx, TableGames, start, len(rows), err); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *instrumentedClient) finish(ctx context.Context, table string, start time.Time, count int, err error) error {
	elapsed := time.Since(start)
	err = WrapQueryError(table, err)
	c.metrics.RecordQuery(table, elapsed, err)

	logger := logging.FromContext(ctx, c.logger)
	if err != nil {
		logging.Error(logger, "table query failed", err,
			logging.FieldTable, table,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return err
	}
	logging.Debug(logger, "table query complete",
		logging.FieldTable, table,
		logging.FieldCount, count,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return nil
}
