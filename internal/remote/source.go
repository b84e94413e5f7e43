package remote

import "context"

// TeamSource reads the full teams table ordered by team_id ascending.
type TeamSource interface {
	QueryTeams(ctx context.Context) ([]TeamRow, error)
}

// GameSource reads up to limit games ordered by game_date, then start_time_utc.
type GameSource interface {
	QueryGames(ctx context.Context, limit int) ([]GameRow, error)
}

// TableClient combines all table reads the service needs.
type TableClient interface {
	TeamSource
	GameSource
}
