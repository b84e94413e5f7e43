package testutil

import "github.com/preston-bernstein/nhl-edge-service/internal/remote"

func strPtr(s string) *string { return &s }

// SampleTeamRows returns two teams with logos.
func SampleTeamRows() []remote.TeamRow {
	return []remote.TeamRow{
		{TeamID: 1, Abbrev: "NJD", Name: "New Jersey Devils", City: strPtr("Newark"), LogoURL: strPtr("https://assets.example/njd.svg")},
		{TeamID: 3, Abbrev: "NYR", Name: "New York Rangers", City: strPtr("New York"), LogoURL: strPtr("https://assets.example/nyr.svg")},
	}
}

// SampleGameRow returns a game between the sample teams on date.
func SampleGameRow(id int, date string) remote.GameRow {
	return remote.GameRow{
		GameID:     id,
		Season:     20252026,
		GameType:   "2",
		GameDate:   date,
		HomeTeamID: 3,
		AwayTeamID: 1,
		Venue:      strPtr("Madison Square Garden"),
	}
}
