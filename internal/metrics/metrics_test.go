package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksQueriesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordQuery("teams", 10*time.Millisecond, nil)
	rec.RecordQuery("teams", 15*time.Millisecond, errors.New("boom"))

	if got := rec.Queries("teams"); got != 2 {
		t.Fatalf("expected 2 queries, got %d", got)
	}
	if got := rec.QueryErrors("teams"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	snap := rec.Snapshot("teams")
	if snap.LastQueryLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastQueryLatency)
	}
	if got := rec.Queries("games"); got != 0 {
		t.Fatalf("expected untouched table to report zero, got %d", got)
	}
}

func TestRecorderTracksCacheLookups(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheLookup(false)
	rec.RecordCacheLookup(true)
	rec.RecordCacheLookup(true)

	if rec.CacheHits() != 2 || rec.CacheMisses() != 1 {
		t.Fatalf("unexpected cache stats hits=%d misses=%d", rec.CacheHits(), rec.CacheMisses())
	}
}

func TestRecorderTracksLogoOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordLogoFetch("rendered", time.Millisecond)
	rec.RecordLogoFetch("bad_status", time.Millisecond)
	rec.RecordLogoFetch("rendered", time.Millisecond)

	if got := rec.LogoFetches("rendered"); got != 2 {
		t.Fatalf("expected 2 rendered, got %d", got)
	}
	if got := rec.LogoFetches("decode_failed"); got != 0 {
		t.Fatalf("expected 0 decode failures, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordQuery("teams", time.Millisecond, nil)
	rec.RecordCacheLookup(true)
	rec.RecordLogoFetch("rendered", time.Millisecond)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.Queries("teams") != 0 || rec.CacheHits() != 0 || rec.LogoFetches("rendered") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
