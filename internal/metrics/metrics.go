package metrics

import (
	"sync"
	"time"
)

type tableStats struct {
	queries          int
	errors           int
	lastQueryLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about table queries, the team
// cache and logo fetches, and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu          sync.Mutex
	tables      map[string]*tableStats
	cacheHits   int
	cacheMisses int
	logos       map[string]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		tables: make(map[string]*tableStats),
		logos:  make(map[string]int),
		otel:   otel,
	}
}

// RecordQuery increments counters for a table query and stores the last observed latency.
func (r *Recorder) RecordQuery(table string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.tables[table]
	if !ok {
		stats = &tableStats{}
		r.tables[table] = stats
	}
	stats.queries++
	stats.lastQueryLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(table, duration, err)
	}
}

// RecordCacheLookup tracks whether a team cache read was served without a query.
func (r *Recorder) RecordCacheLookup(hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if hit {
		r.cacheHits++
	} else {
		r.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(hit)
	}
}

// RecordLogoFetch tracks the outcome of a remote logo fetch.
func (r *Recorder) RecordLogoFetch(outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.logos[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLogoFetch(outcome, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for a table.
type Snapshot struct {
	Queries          int
	Errors           int
	LastQueryLatency time.Duration
}

// Snapshot returns a copy of the current stats for the table.
func (r *Recorder) Snapshot(table string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.tables[table]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Queries:          stats.queries,
		Errors:           stats.errors,
		LastQueryLatency: stats.lastQueryLatency,
	}
}

// Queries returns the total queries recorded for a table.
func (r *Recorder) Queries(table string) int {
	return r.Snapshot(table).Queries
}

// QueryErrors returns the total failed queries recorded for a table.
func (r *Recorder) QueryErrors(table string) int {
	return r.Snapshot(table).Errors
}

// CacheHits returns the number of team cache reads served from memory.
func (r *Recorder) CacheHits() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheHits
}

// CacheMisses returns the number of team cache reads that required a query.
func (r *Recorder) CacheMisses() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheMisses
}

// LogoFetches returns how many logo fetches ended with the given outcome.
func (r *Recorder) LogoFetches(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logos[outcome]
}
