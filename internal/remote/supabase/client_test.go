package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
)

func tableServer(t *testing.T, status int, body string, seen *http.Request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = *r.Clone(context.Background())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{BaseURL: " " + baseURL + "/ ", APIKey: " anon-key "})
}

func TestQueryTeamsBuildsRequestAndDecodesRows(t *testing.T) {
	var seen http.Request
	srv := tableServer(t, http.StatusOK, `[
		{"team_id": 1, "abbrev": "NJD", "name": "New Jersey Devils", "city": "Newark", "logo_url": "https://assets/njd.svg", "updated_at": null},
		{"team_id": 3, "abbrev": "NYR", "name": "New York Rangers", "city": null, "logo_url": null}
	]`, &seen)

	rows, err := newTestClient(srv.URL).QueryTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "/rest/v1/teams", seen.URL.Path)
	assert.True(t, strings.HasPrefix(seen.URL.Query().Get("order"), "team_id.asc"), seen.URL.RawQuery)
	assert.Equal(t, "*", seen.URL.Query().Get("select"))
	assert.Equal(t, "anon-key", seen.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", seen.Header.Get("Authorization"))

	assert.Equal(t, "NJD", rows[0].Abbrev)
	require.NotNil(t, rows[0].City)
	assert.Equal(t, "Newark", *rows[0].City)
	assert.Nil(t, rows[1].City)
	assert.Nil(t, rows[1].LogoURL)
}

func TestQueryGamesOrdersAndLimits(t *testing.T) {
	var seen http.Request
	srv := tableServer(t, http.StatusOK, `[
		{"game_id": 2025020701, "season": 20252026, "game_type": "2", "game_date": "2026-01-18",
		 "start_time_utc": "2026-01-18T00:00:00Z", "home_team_id": 3, "away_team_id": 1,
		 "status": "FUT", "venue": "Madison Square Garden"}
	]`, &seen)

	rows, err := newTestClient(srv.URL).QueryGames(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	order := seen.URL.Query().Get("order")
	assert.Equal(t, "/rest/v1/games", seen.URL.Path)
	assert.True(t, strings.HasPrefix(order, "game_date.asc"), order)
	assert.Contains(t, order, ",start_time_utc.asc")
	assert.Equal(t, "200", seen.URL.Query().Get("limit"))
	assert.Equal(t, 2025020701, rows[0].GameID)
	require.NotNil(t, rows[0].StartTimeUTC)
	assert.Equal(t, "2026-01-18T00:00:00Z", *rows[0].StartTimeUTC)
	assert.Nil(t, rows[0].LastIngestedAt)
}

func TestQueryErrorResponseReturnsQueryError(t *testing.T) {
	srv := tableServer(t, http.StatusUnauthorized, `{"message":"Invalid API key","code":"PGRST301"}`, nil)

	_, err := newTestClient(srv.URL).QueryTeams(context.Background())
	qErr, ok := remote.AsQueryError(err)
	require.True(t, ok, "expected QueryError, got %v", err)
	assert.Equal(t, remote.TableTeams, qErr.Table)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestQueryNonJSONErrorResponseReturnsQueryError(t *testing.T) {
	srv := tableServer(t, http.StatusBadGateway, "upstream down", nil)

	_, err := newTestClient(srv.URL).QueryGames(context.Background(), 10)
	qErr, ok := remote.AsQueryError(err)
	require.True(t, ok, "expected QueryError, got %v", err)
	assert.Equal(t, remote.TableGames, qErr.Table)
}

func TestQueryTransportErrorReturnsQueryError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).QueryGames(context.Background(), 10)
	qErr, ok := remote.AsQueryError(err)
	require.True(t, ok, "expected QueryError, got %v", err)
	assert.Equal(t, remote.TableGames, qErr.Table)
}

func TestQueryDecodeErrorReturnsQueryError(t *testing.T) {
	srv := tableServer(t, http.StatusOK, `{"not":"an array"}`, nil)

	_, err := newTestClient(srv.URL).QueryTeams(context.Background())
	_, ok := remote.AsQueryError(err)
	require.True(t, ok, "expected QueryError, got %v", err)
}

func blockingServer(t *testing.T) *httptest.Server {
	t.Helper()
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	return srv
}

func TestQueryHonorsCallerCancellation(t *testing.T) {
	srv := blockingServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	_, err := newTestClient(srv.URL).QueryTeams(ctx)

	_, ok := remote.AsQueryError(err)
	require.True(t, ok, "expected QueryError, got %v", err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueryAppliesTimeout(t *testing.T) {
	srv := blockingServer(t)
	client := NewClient(Config{BaseURL: srv.URL, APIKey: "k", Timeout: 20 * time.Millisecond})

	_, err := client.QueryGames(context.Background(), 5)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueryWithoutBaseURLIsUnavailable(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.QueryTeams(context.Background())
	assert.True(t, errors.Is(err, remote.ErrSourceUnavailable))
	_, ok := remote.AsQueryError(err)
	assert.True(t, ok)
}
