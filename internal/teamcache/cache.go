// Package teamcache holds the in-memory team generation shared by every screen loader.
package teamcache

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/metrics"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
)

const (
	flightKey           = "teams"
	defaultFetchTimeout = 30 * time.Second
)

// Generation is one successful teams fetch. ByID always indexes exactly Rows.
type Generation struct {
	Rows      []remote.TeamRow
	ByID      map[int]remote.TeamRow
	FetchedAt time.Time
}

// Cache keeps the latest team generation. There is no TTL: a generation lives until a
// forced refresh replaces it. At most one teams query is in flight at a time.
type Cache struct {
	source       remote.TeamSource
	logger       *slog.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
	fetchTimeout time.Duration

	group singleflight.Group

	mu      sync.RWMutex
	current *Generation
}

// Option customizes a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithMetrics records hit and miss counts on the recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(c *Cache) {
		c.metrics = recorder
	}
}

// WithClock overrides the clock used to stamp generations.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithFetchTimeout bounds a single teams fetch. The fetch runs detached from the caller
// that started it, so this is its only deadline.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// New constructs an empty cache backed by source.
func New(source remote.TeamSource, opts ...Option) *Cache {
	c := &Cache{
		source:       source,
		now:          time.Now,
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTeams returns cached rows unless forceRefresh is set or nothing is cached yet.
func (c *Cache) FetchTeams(ctx context.Context, forceRefresh bool) ([]remote.TeamRow, error) {
	gen, err := c.Load(ctx, forceRefresh)
	if err != nil {
		return nil, err
	}
	return gen.Rows, nil
}

// Load returns rows and index from a single generation, fetching when forced or empty.
// On failure the previous generation is left in place and a *remote.QueryError is returned.
// A forced call that arrives while a fetch is already in flight joins that fetch.
// The shared fetch does not inherit any caller's cancellation; a caller whose ctx ends
// stops waiting and gets ctx.Err() while the fetch completes for the others.
func (c *Cache) Load(ctx context.Context, forceRefresh bool) (Generation, error) {
	if !forceRefresh {
		if gen := c.snapshot(); gen != nil {
			c.metrics.RecordCacheLookup(true)
			return copyGeneration(gen), nil
		}
	}
	c.metrics.RecordCacheLookup(false)

	ch := c.group.DoChan(flightKey, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		return c.fetch(fetchCtx)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Generation{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return Generation{}, res.Err
	}
	gen := res.Val.(*Generation)
	if res.Shared {
		logging.Debug(c.logger, "joined in-flight teams fetch",
			logging.FieldCount, len(gen.Rows),
			logging.FieldForced, forceRefresh,
		)
	}
	return copyGeneration(gen), nil
}

// CachedTeamsByID returns the current index without fetching. ok is false until a fetch
// has completed.
func (c *Cache) CachedTeamsByID() (map[int]remote.TeamRow, bool) {
	gen := c.snapshot()
	if gen == nil {
		return nil, false
	}
	return maps.Clone(gen.ByID), true
}

func (c *Cache) fetch(ctx context.Context) (*Generation, error) {
	if c.source == nil {
		return nil, &remote.QueryError{Table: remote.TableTeams, Err: remote.ErrSourceUnavailable}
	}

	rows, err := c.source.QueryTeams(ctx)
	if err != nil {
		logging.Debug(logging.FromContext(ctx, c.logger), "keeping previous team generation")
		return nil, remote.WrapQueryError(remote.TableTeams, err)
	}

	gen := newGeneration(rows, c.now())
	c.mu.Lock()
	c.current = gen
	c.mu.Unlock()

	logging.Info(logging.FromContext(ctx, c.logger), "team cache refreshed", logging.FieldCount, len(gen.Rows))
	return gen, nil
}

func (c *Cache) snapshot() *Generation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func newGeneration(rows []remote.TeamRow, fetchedAt time.Time) *Generation {
	owned := slices.Clone(rows)
	if owned == nil {
		owned = []remote.TeamRow{}
	}
	byID := make(map[int]remote.TeamRow, len(owned))
	for _, row := range owned {
		byID[row.TeamID] = row
	}
	return &Generation{Rows: owned, ByID: byID, FetchedAt: fetchedAt}
}

func copyGeneration(gen *Generation) Generation {
	return Generation{
		Rows:      slices.Clone(gen.Rows),
		ByID:      maps.Clone(gen.ByID),
		FetchedAt: gen.FetchedAt,
	}
}
