package remote

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedClientPassesThrough(t *testing.T) {
	inner := &stubClient{teams: []TeamRow{{TeamID: 1}}, games: []GameRow{{GameID: 7}}}
	c := NewRateLimitedClient(inner, 100, nil)

	teams, err := c.QueryTeams(context.Background())
	if err != nil || len(teams) != 1 {
		t.Fatalf("expected teams passthrough, got %v %v", teams, err)
	}
	games, err := c.QueryGames(context.Background(), 25)
	if err != nil || len(games) != 1 {
		t.Fatalf("expected games passthrough, got %v %v", games, err)
	}
	if inner.lastLimit != 25 {
		t.Fatalf("expected limit to be forwarded, got %d", inner.lastLimit)
	}
}

func TestRateLimitedClientSpacesCallsBeyondBurst(t *testing.T) {
	inner := &stubClient{}
	c := NewRateLimitedClient(inner, 50, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := c.QueryTeams(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("expected third call to wait for a token, elapsed %s", elapsed)
	}
	if inner.calls.Load() != 3 {
		t.Fatalf("expected 3 inner calls, got %d", inner.calls.Load())
	}
}

func TestRateLimitedClientRespectsCanceledContext(t *testing.T) {
	inner := &stubClient{}
	c := NewRateLimitedClient(inner, 0.001, nil)
	// Drain the burst so the next call has to wait.
	_, _ = c.QueryTeams(context.Background())
	_, _ = c.QueryTeams(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.QueryGames(ctx, 10)
	qErr, ok := AsQueryError(err)
	if !ok || qErr.Table != TableGames {
		t.Fatalf("expected games QueryError, got %v", err)
	}
	if inner.calls.Load() != 2 {
		t.Fatalf("expected inner client not called on canceled context")
	}
}

func TestRateLimitedClientHandlesNilInner(t *testing.T) {
	c := NewRateLimitedClient(nil, 1, nil)

	_, err := c.QueryTeams(context.Background())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
