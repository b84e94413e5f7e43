package remote

// Table names in the Supabase project.
const (
	TableTeams = "teams"
	TableGames = "games"
)

// TeamRow is a row of the teams table as returned by the table store.
type TeamRow struct {
	TeamID    int     `json:"team_id"`
	Abbrev    string  `json:"abbrev"`
	Name      string  `json:"name"`
	City      *string `json:"city"`
	LogoURL   *string `json:"logo_url"`
	UpdatedAt *string `json:"updated_at"`
}

// GameRow is a row of the games table. GameDate is a YYYY-MM-DD calendar date and
// StartTimeUTC an ISO-8601 timestamp when the puck drop is known.
type GameRow struct {
	GameID         int     `json:"game_id"`
	Season         int     `json:"season"`
	GameType       string  `json:"game_type"`
	GameDate       string  `json:"game_date"`
	StartTimeUTC   *string `json:"start_time_utc"`
	HomeTeamID     int     `json:"home_team_id"`
	AwayTeamID     int     `json:"away_team_id"`
	Status         *string `json:"status"`
	Venue          *string `json:"venue"`
	LastIngestedAt *string `json:"last_ingested_at"`
}
