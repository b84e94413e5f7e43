package teams

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nhl-edge-service/internal/aggregate"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain"
	domainteams "github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/mapper"
	"github.com/preston-bernstein/nhl-edge-service/internal/mockdata"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
	"github.com/preston-bernstein/nhl-edge-service/internal/settings"
)

// TeamFetcher returns team rows, cached unless forceRefresh is set.
type TeamFetcher interface {
	FetchTeams(ctx context.Context, forceRefresh bool) ([]remote.TeamRow, error)
}

// Request selects refresh and search behavior for a teams load.
type Request struct {
	ForceRefresh bool
	Query        string
}

// Result is one loaded teams list.
type Result struct {
	Source domain.Source
	Teams  []domainteams.Team
}

// Service loads the teams screen.
type Service struct {
	settings settings.Reader
	teams    TeamFetcher
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(reader settings.Reader, fetcher TeamFetcher, logger *slog.Logger) *Service {
	return &Service{
		settings: reader,
		teams:    fetcher,
		logger:   logger,
	}
}

// Load returns teams sorted by name, filtered by Query when set.
func (s *Service) Load(ctx context.Context, req Request) (Result, error) {
	useTestData := true
	if s.settings != nil {
		v, err := s.settings.UseTestData(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("read settings: %w", err)
		}
		useTestData = v
	}

	var (
		list   []domainteams.Team
		source = domain.SourceFor(useTestData)
	)
	if useTestData {
		list = mockdata.Teams()
	} else {
		if s.teams == nil {
			return Result{}, &remote.QueryError{Table: remote.TableTeams, Err: remote.ErrSourceUnavailable}
		}
		rows, err := s.teams.FetchTeams(ctx, req.ForceRefresh)
		if err != nil {
			return Result{}, err
		}
		list = mapper.MapTeams(rows)
	}

	list = aggregate.SortByName(list)
	if req.Query != "" {
		list = aggregate.SearchTeams(list, req.Query)
		logging.Debug(logging.FromContext(ctx, s.logger), "teams filtered",
			"query", req.Query,
			logging.FieldCount, len(list),
		)
	}
	return Result{Source: source, Teams: list}, nil
}
