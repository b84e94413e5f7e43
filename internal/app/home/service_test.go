package home

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appgames "github.com/preston-bernstein/nhl-edge-service/internal/app/games"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
	"github.com/preston-bernstein/nhl-edge-service/internal/settings"
	"github.com/preston-bernstein/nhl-edge-service/internal/teamcache"
	"github.com/preston-bernstein/nhl-edge-service/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestHomeMockShowsAllMockGamesAndSixTeams(t *testing.T) {
	gamesSvc := appgames.NewService(appgames.Config{Settings: settings.NewMemory(true)})
	svc := NewService(gamesSvc, 0, nil)
	// Early enough that now+3h stays on the same day.
	now := time.Date(2026, 1, 18, 9, 0, 0, 0, time.UTC)

	res, err := svc.Load(context.Background(), Request{Now: now, Location: time.UTC})

	require.NoError(t, err)
	assert.Equal(t, domain.SourceMock, res.Source)
	assert.Equal(t, "2026-01-18", res.Date)
	assert.Len(t, res.Today, 3)
	require.Len(t, res.Featured, 6)
	assert.Equal(t, "Buffalo Sabres", res.Featured[0].Name)
}

func TestHomeRemoteFiltersTodayAndFeatures(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2026, 1, 17, 18, 0, 0, 0, est)
	src := &testutil.StubTableClient{
		Teams: []remote.TeamRow{
			{TeamID: 1, Name: "Rangers", Abbrev: "NYR"},
			{TeamID: 2, Name: "Devils", Abbrev: "NJD"},
		},
		Games: []remote.GameRow{
			// 7 PM EST on Jan 17.
			{GameID: 1, GameDate: "2026-01-18", StartTimeUTC: strPtr("2026-01-18T00:00:00Z"), HomeTeamID: 1, AwayTeamID: 2},
			{GameID: 2, GameDate: "2026-01-16", HomeTeamID: 2, AwayTeamID: 1},
			{GameID: 3, GameDate: "2026-01-20", HomeTeamID: 2, AwayTeamID: 1},
		},
	}
	gamesSvc := appgames.NewService(appgames.Config{
		Settings: settings.NewMemory(false),
		Teams:    teamcache.New(src),
		Games:    src,
	})
	svc := NewService(gamesSvc, 1, nil)

	res, err := svc.Load(context.Background(), Request{Now: now, Location: est})

	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, "2026-01-17", res.Date)
	require.Len(t, res.Today, 1)
	assert.Equal(t, "1", res.Today[0].ID)
	assert.Equal(t, "7:00 PM", res.Today[0].StartTimeText)
	require.Len(t, res.Featured, 1)
	assert.Equal(t, "Devils", res.Featured[0].Name)
}

type failingGames struct{ err error }

func (f failingGames) Load(context.Context, appgames.Request) (appgames.Result, error) {
	return appgames.Result{}, f.err
}

func TestHomePropagatesErrors(t *testing.T) {
	want := &remote.QueryError{Table: remote.TableGames, StatusCode: 500}
	svc := NewService(failingGames{err: want}, 6, nil)

	_, err := svc.Load(context.Background(), Request{})

	assert.True(t, errors.Is(err, want))
}
