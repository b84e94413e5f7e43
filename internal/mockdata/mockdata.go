// Package mockdata serves a fixed offline dataset used when the test-data setting is on.
package mockdata

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nhl-edge-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
)

// LateGameOffset is how far after now the last mock game starts.
const LateGameOffset = 3 * time.Hour

type gameSeed struct {
	awayName, homeName     string
	awayAbbrev, homeAbbrev string
	startTimeText          string
	venue                  string
	homeWinProb            *float64
	awayWinProb            *float64
	offset                 time.Duration
}

type teamSeed struct {
	name, abbrev, city   string
	conference, division string
	rating, playoffOdds  float64
}

var gameSeeds = []gameSeed{
	{
		awayName: "New Jersey Devils", homeName: "New York Rangers",
		awayAbbrev: "NJD", homeAbbrev: "NYR",
		startTimeText: "7:00 PM", venue: "Madison Square Garden",
		homeWinProb: ptr(0.54), awayWinProb: ptr(0.46),
	},
	{
		awayName: "Toronto Maple Leafs", homeName: "Buffalo Sabres",
		awayAbbrev: "TOR", homeAbbrev: "BUF",
		startTimeText: "7:30 PM", venue: "KeyBank Center",
		homeWinProb: ptr(0.48), awayWinProb: ptr(0.52),
	},
	{
		awayName: "Colorado Avalanche", homeName: "Vegas Golden Knights",
		awayAbbrev: "COL", homeAbbrev: "VGK",
		startTimeText: "10:00 PM", venue: "T-Mobile Arena",
		offset: LateGameOffset,
	},
}

var teamSeeds = []teamSeed{
	{"Buffalo Sabres", "BUF", "Buffalo", "Eastern", "Atlantic", 0.2, 0.18},
	{"New York Rangers", "NYR", "New York", "Eastern", "Metropolitan", 1.1, 0.72},
	{"New Jersey Devils", "NJD", "New Jersey", "Eastern", "Metropolitan", 0.9, 0.64},
	{"Toronto Maple Leafs", "TOR", "Toronto", "Eastern", "Atlantic", 0.8, 0.61},
	{"Vegas Golden Knights", "VGK", "Las Vegas", "Western", "Pacific", 1.0, 0.69},
	{"Colorado Avalanche", "COL", "Denver", "Western", "Central", 1.2, 0.75},
}

// ids are generated once per process so repeated loads return the same identifiers.
var (
	idsOnce sync.Once
	gameIDs []string
	teamIDs []string
)

func loadIDs() {
	idsOnce.Do(func() {
		gameIDs = newIDs(len(gameSeeds))
		teamIDs = newIDs(len(teamSeeds))
	})
}

func newIDs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out
}

// Games returns the mock games dated relative to now.
func Games(now time.Time) []games.Game {
	loadIDs()
	out := make([]games.Game, 0, len(gameSeeds))
	for i, seed := range gameSeeds {
		out = append(out, games.Game{
			ID:            gameIDs[i],
			Date:          now.Add(seed.offset),
			AwayTeamName:  seed.awayName,
			HomeTeamName:  seed.homeName,
			AwayAbbrev:    seed.awayAbbrev,
			HomeAbbrev:    seed.homeAbbrev,
			StartTimeText: seed.startTimeText,
			Venue:         ptr(seed.venue),
			HomeWinProb:   clone(seed.homeWinProb),
			AwayWinProb:   clone(seed.awayWinProb),
		})
	}
	return out
}

// Teams returns the mock teams in their fixed order.
func Teams() []teams.Team {
	loadIDs()
	out := make([]teams.Team, 0, len(teamSeeds))
	for i, seed := range teamSeeds {
		out = append(out, teams.Team{
			ID:          teamIDs[i],
			Name:        seed.name,
			Abbrev:      seed.abbrev,
			City:        seed.city,
			Conference:  seed.conference,
			Division:    seed.division,
			Rating:      ptr(seed.rating),
			PlayoffOdds: ptr(seed.playoffOdds),
		})
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(*v)
}
