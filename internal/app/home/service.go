package home

import (
	"context"
	"log/slog"
	"time"

	appgames "github.com/preston-bernstein/nhl-edge-service/internal/app/games"
	"github.com/preston-bernstein/nhl-edge-service/internal/aggregate"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain"
	domaingames "github.com/preston-bernstein/nhl-edge-service/internal/domain/games"
	domainteams "github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/timeutil"
)

// GamesLoader is the games pipeline the home screen builds on.
type GamesLoader interface {
	Load(ctx context.Context, req appgames.Request) (appgames.Result, error)
}

// Request carries the home screen inputs.
type Request struct {
	ForceRefreshTeams bool
	Location          *time.Location
	Now               time.Time
}

// Result is the loaded home screen.
type Result struct {
	Source   domain.Source
	Date     string
	Today    []domaingames.Game
	Featured []domainteams.Team
}

// Service loads today's games and the featured teams.
type Service struct {
	games         GamesLoader
	featuredCount int
	logger        *slog.Logger
}

// NewService constructs a Service. featuredCount <= 0 uses the default of six.
func NewService(games GamesLoader, featuredCount int, logger *slog.Logger) *Service {
	return &Service{
		games:         games,
		featuredCount: featuredCount,
		logger:        logger,
	}
}

// Load returns games on the viewer's current day and the featured teams, both drawn from
// the same team generation.
func (s *Service) Load(ctx context.Context, req Request) (Result, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	loc := req.Location
	if loc == nil {
		loc = time.Local
	}

	res, err := s.games.Load(ctx, appgames.Request{
		ForceRefreshTeams: req.ForceRefreshTeams,
		Location:          loc,
		Now:               now,
	})
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "home load failed", "error", err)
		return Result{}, err
	}

	return Result{
		Source:   res.Source,
		Date:     timeutil.FormatDate(now.In(loc)),
		Today:    aggregate.Today(res.Games, now, loc),
		Featured: aggregate.Featured(res.Teams, s.featuredCount),
	}, nil
}
