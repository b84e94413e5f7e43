package games

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-edge-service/internal/aggregate"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain"
	domaingames "github.com/preston-bernstein/nhl-edge-service/internal/domain/games"
	domainteams "github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/mapper"
	"github.com/preston-bernstein/nhl-edge-service/internal/mockdata"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
	"github.com/preston-bernstein/nhl-edge-service/internal/settings"
	"github.com/preston-bernstein/nhl-edge-service/internal/teamcache"
)

// TeamLoader returns one team generation, fetching when forced or empty.
type TeamLoader interface {
	Load(ctx context.Context, forceRefresh bool) (teamcache.Generation, error)
}

// Config wires a Service.
type Config struct {
	Settings   settings.Reader
	Teams      TeamLoader
	Games      remote.GameSource
	GamesLimit int
	Logger     *slog.Logger
}

// Request carries the viewer-dependent inputs of a load.
type Request struct {
	ForceRefreshTeams bool
	Location          *time.Location
	Now               time.Time
}

// Result is one loaded games list. Teams holds the display teams of the same generation
// the games were joined against.
type Result struct {
	Source domain.Source
	Games  []domaingames.Game
	Teams  []domainteams.Team
}

// Service loads the games screen from mock data or the remote tables.
type Service struct {
	settings   settings.Reader
	teams      TeamLoader
	games      remote.GameSource
	gamesLimit int
	logger     *slog.Logger
}

// NewService constructs a Service.
func NewService(cfg Config) *Service {
	return &Service{
		settings:   cfg.Settings,
		teams:      cfg.Teams,
		games:      cfg.Games,
		gamesLimit: cfg.GamesLimit,
		logger:     cfg.Logger,
	}
}

// Load returns every game sorted by date. Remote loads use the cached team generation
// unless ForceRefreshTeams is set; only *remote.QueryError and settings failures are returned.
func (s *Service) Load(ctx context.Context, req Request) (Result, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	useTestData, err := s.useTestData(ctx)
	if err != nil {
		return Result{}, err
	}
	if useTestData {
		return Result{
			Source: domain.SourceMock,
			Games:  aggregate.SortByDate(mockdata.Games(now)),
			Teams:  mockdata.Teams(),
		}, nil
	}

	if s.teams == nil || s.games == nil {
		return Result{}, &remote.QueryError{Table: remote.TableGames, Err: remote.ErrSourceUnavailable}
	}

	gen, err := s.teams.Load(ctx, req.ForceRefreshTeams)
	if err != nil {
		return Result{}, err
	}
	rows, err := s.games.QueryGames(ctx, s.gamesLimit)
	if err != nil {
		return Result{}, remote.WrapQueryError(remote.TableGames, err)
	}

	logger := logging.FromContext(ctx, s.logger)
	mapped := MapRows(logger, rows, gen.ByID, mapper.Options{
		Location: req.Location,
		Now:      func() time.Time { return now },
	})
	return Result{
		Source: domain.SourceRemote,
		Games:  aggregate.SortByDate(mapped),
		Teams:  mapper.MapTeams(gen.Rows),
	}, nil
}

func (s *Service) useTestData(ctx context.Context) (bool, error) {
	if s.settings == nil {
		return true, nil
	}
	v, err := s.settings.UseTestData(ctx)
	if err != nil {
		return false, fmt.Errorf("read settings: %w", err)
	}
	return v, nil
}

// MapRows maps every row and logs a single summary of the fallbacks taken.
func MapRows(logger *slog.Logger, rows []remote.GameRow, byID map[int]remote.TeamRow, opts mapper.Options) []domaingames.Game {
	out := make([]domaingames.Game, 0, len(rows))
	var missingTeams, nowDates int
	for _, row := range rows {
		g, res := mapper.MapGame(row, byID, opts)
		if res.HomeTeamMissing {
			missingTeams++
		}
		if res.AwayTeamMissing {
			missingTeams++
		}
		if res.Date == mapper.DateFromNow {
			nowDates++
			logging.Debug(logger, "game date unparseable, using now", "game_id", row.GameID, "game_date", row.GameDate)
		}
		out = append(out, g)
	}
	if missingTeams > 0 || nowDates > 0 {
		logging.Warn(logger, "games mapped with fallbacks",
			logging.FieldCount, len(rows),
			"missing_teams", missingTeams,
			"now_dates", nowDates,
		)
	}
	return out
}
