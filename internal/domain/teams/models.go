package teams

// Team is the display shape of a team. Conference, Division, Rating and PlayoffOdds are
// only populated by mock data.
type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Abbrev      string   `json:"abbrev"`
	City        string   `json:"city"`
	LogoURL     *string  `json:"logoUrl,omitempty"`
	Conference  string   `json:"conference"`
	Division    string   `json:"division"`
	Rating      *float64 `json:"rating,omitempty"`
	PlayoffOdds *float64 `json:"playoffOdds,omitempty"`
}

// ListResponse is the payload returned by /teams.
type ListResponse struct {
	Source string `json:"source"`
	Query  string `json:"query,omitempty"`
	Teams  []Team `json:"teams"`
}

// NewListResponse builds a ListResponse, never encoding a null teams list.
func NewListResponse(source, query string, teams []Team) ListResponse {
	if teams == nil {
		teams = []Team{}
	}
	return ListResponse{
		Source: source,
		Query:  query,
		Teams:  teams,
	}
}
