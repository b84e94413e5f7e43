package games

import "time"

// Placeholders shown when a game references a team the cache does not know.
const (
	PlaceholderAwayName   = "Away"
	PlaceholderHomeName   = "Home"
	PlaceholderAwayAbbrev = "AWY"
	PlaceholderHomeAbbrev = "HME"
)

// Game is the display shape of one scheduled game.
type Game struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	AwayTeamName  string    `json:"awayTeamName"`
	HomeTeamName  string    `json:"homeTeamName"`
	AwayAbbrev    string    `json:"awayAbbrev"`
	HomeAbbrev    string    `json:"homeAbbrev"`
	StartTimeText string    `json:"startTimeText"`
	Venue         *string   `json:"venue,omitempty"`
	AwayLogoURL   *string   `json:"awayLogoUrl,omitempty"`
	HomeLogoURL   *string   `json:"homeLogoUrl,omitempty"`
	HomeWinProb   *float64  `json:"homeWinProb,omitempty"`
	AwayWinProb   *float64  `json:"awayWinProb,omitempty"`
}

// ListResponse is the payload returned by /games.
type ListResponse struct {
	Source string `json:"source"`
	Games  []Game `json:"games"`
}

// NewListResponse builds a ListResponse, never encoding a null games list.
func NewListResponse(source string, games []Game) ListResponse {
	if games == nil {
		games = []Game{}
	}
	return ListResponse{
		Source: source,
		Games:  games,
	}
}
