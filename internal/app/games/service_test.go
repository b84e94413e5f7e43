package games

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-edge-service/internal/domain"
	"github.com/preston-bernstein/nhl-edge-service/internal/mapper"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
	"github.com/preston-bernstein/nhl-edge-service/internal/settings"
	"github.com/preston-bernstein/nhl-edge-service/internal/teamcache"
	"github.com/preston-bernstein/nhl-edge-service/internal/testutil"
)

func strPtr(s string) *string { return &s }

func remoteService(src *testutil.StubTableClient) *Service {
	return NewService(Config{
		Settings:   settings.NewMemory(false),
		Teams:      teamcache.New(src),
		Games:      src,
		GamesLimit: 50,
	})
}

func TestLoadUsesMockDataWhenEnabled(t *testing.T) {
	src := &testutil.StubTableClient{}
	svc := NewService(Config{Settings: settings.NewMemory(true), Teams: teamcache.New(src), Games: src})
	now := time.Date(2026, 1, 18, 18, 0, 0, 0, time.UTC)

	res, err := svc.Load(context.Background(), Request{Now: now})

	require.NoError(t, err)
	assert.Equal(t, domain.SourceMock, res.Source)
	assert.Len(t, res.Games, 3)
	assert.Len(t, res.Teams, 6)
	assert.Zero(t, src.TeamCalls()+src.GameCalls(), "mock mode must bypass the remote client")
}

func TestLoadNilSettingsDefaultsToMock(t *testing.T) {
	res, err := NewService(Config{}).Load(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMock, res.Source)
}

func TestLoadRemoteJoinsAndSorts(t *testing.T) {
	src := &testutil.StubTableClient{
		Teams: []remote.TeamRow{
			{TeamID: 1, Name: "Rangers", Abbrev: "NYR"},
			{TeamID: 2, Name: "Devils", Abbrev: "NJD"},
		},
		Games: []remote.GameRow{
			{GameID: 20, GameDate: "2026-01-19", HomeTeamID: 2, AwayTeamID: 1},
			{GameID: 10, GameDate: "2026-01-18", StartTimeUTC: strPtr("2026-01-18T00:00:00Z"), HomeTeamID: 1, AwayTeamID: 99},
		},
	}
	svc := remoteService(src)

	res, err := svc.Load(context.Background(), Request{Location: time.UTC})

	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	require.Len(t, res.Games, 2)
	assert.Equal(t, "10", res.Games[0].ID)
	assert.Equal(t, "12:00 AM", res.Games[0].StartTimeText)
	assert.Equal(t, "AWY", res.Games[0].AwayAbbrev)
	assert.Equal(t, "Devils", res.Games[1].HomeTeamName)
	assert.Equal(t, 50, src.LastLimit())
	assert.Len(t, res.Teams, 2)
}

func TestLoadReusesCachedTeams(t *testing.T) {
	src := &testutil.StubTableClient{Teams: []remote.TeamRow{{TeamID: 1, Name: "A"}}}
	svc := remoteService(src)

	_, err := svc.Load(context.Background(), Request{})
	require.NoError(t, err)
	_, err = svc.Load(context.Background(), Request{})
	require.NoError(t, err)
	_, err = svc.Load(context.Background(), Request{ForceRefreshTeams: true})
	require.NoError(t, err)

	assert.Equal(t, 2, src.TeamCalls())
	assert.Equal(t, 3, src.GameCalls())
}

func TestLoadPropagatesTeamQueryError(t *testing.T) {
	src := &testutil.StubTableClient{TeamErr: errors.New("boom")}
	svc := remoteService(src)

	_, err := svc.Load(context.Background(), Request{})

	qErr, ok := remote.AsQueryError(err)
	require.True(t, ok)
	assert.Equal(t, remote.TableTeams, qErr.Table)
	assert.Zero(t, src.GameCalls())
}

func TestLoadPropagatesGameQueryError(t *testing.T) {
	src := &testutil.StubTableClient{GameErr: errors.New("timeout")}
	svc := remoteService(src)

	_, err := svc.Load(context.Background(), Request{})

	qErr, ok := remote.AsQueryError(err)
	require.True(t, ok)
	assert.Equal(t, remote.TableGames, qErr.Table)
}

type failingSettings struct{}

func (failingSettings) UseTestData(context.Context) (bool, error) {
	return false, errors.New("db locked")
}

func TestLoadSettingsFailure(t *testing.T) {
	svc := NewService(Config{Settings: failingSettings{}})

	_, err := svc.Load(context.Background(), Request{})

	require.Error(t, err)
	_, isQuery := remote.AsQueryError(err)
	assert.False(t, isQuery)
}

func TestMapRowsLogsFallbackSummary(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rows := []remote.GameRow{{GameID: 1, GameDate: "bad", HomeTeamID: 1, AwayTeamID: 2}}

	got := MapRows(logger, rows, nil, mapperOptionsFixed())

	require.Len(t, got, 1)
	assert.Contains(t, buf.String(), "games mapped with fallbacks")
	assert.Contains(t, buf.String(), "missing_teams=2")
	assert.Contains(t, buf.String(), "now_dates=1")
	assert.Contains(t, buf.String(), "game date unparseable")
}

func mapperOptionsFixed() mapper.Options {
	fixed := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	return mapper.Options{Now: func() time.Time { return fixed }}
}
