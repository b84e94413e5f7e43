// Package mapper turns table rows into display models.
package mapper

import (
	"strconv"
	"time"

	"github.com/preston-bernstein/nhl-edge-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
	"github.com/preston-bernstein/nhl-edge-service/internal/timeutil"
)

// DateSource names which row field produced a game's date.
type DateSource string

const (
	DateFromStartTime DateSource = "start_time"
	DateFromGameDate  DateSource = "game_date"
	DateFromNow       DateSource = "now"
)

// Options controls viewer-dependent parts of mapping.
type Options struct {
	// Location renders startTimeText. Defaults to time.Local.
	Location *time.Location
	// Now supplies the last-resort date. Defaults to time.Now.
	Now func() time.Time
}

// Resolution reports the fallbacks MapGame took so callers can decide whether to surface them.
type Resolution struct {
	Date            DateSource
	HomeTeamMissing bool
	AwayTeamMissing bool
}

// Degraded reports whether any fallback other than game_date was used.
func (r Resolution) Degraded() bool {
	return r.Date == DateFromNow || r.HomeTeamMissing || r.AwayTeamMissing
}

// MapGame joins a game row against the team index. Missing teams resolve to placeholders
// independently per side; it never fails.
func MapGame(row remote.GameRow, teamsByID map[int]remote.TeamRow, opts Options) (games.Game, Resolution) {
	var res Resolution
	g := games.Game{
		ID:    strconv.Itoa(row.GameID),
		Venue: cloneString(row.Venue),
	}

	if home, ok := teamsByID[row.HomeTeamID]; ok {
		g.HomeTeamName = home.Name
		g.HomeAbbrev = home.Abbrev
		g.HomeLogoURL = cloneString(home.LogoURL)
	} else {
		g.HomeTeamName = games.PlaceholderHomeName
		g.HomeAbbrev = games.PlaceholderHomeAbbrev
		res.HomeTeamMissing = true
	}

	if away, ok := teamsByID[row.AwayTeamID]; ok {
		g.AwayTeamName = away.Name
		g.AwayAbbrev = away.Abbrev
		g.AwayLogoURL = cloneString(away.LogoURL)
	} else {
		g.AwayTeamName = games.PlaceholderAwayName
		g.AwayAbbrev = games.PlaceholderAwayAbbrev
		res.AwayTeamMissing = true
	}

	g.Date, g.StartTimeText, res.Date = resolveDate(row, opts)
	return g, res
}

func resolveDate(row remote.GameRow, opts Options) (time.Time, string, DateSource) {
	if row.StartTimeUTC != nil {
		if ts, ok := timeutil.ParseISO(*row.StartTimeUTC); ok {
			return ts, timeutil.FormatStartTime(ts, opts.Location), DateFromStartTime
		}
	}
	if day, err := timeutil.ParseGameDate(row.GameDate); err == nil {
		return day, "", DateFromGameDate
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	return now(), "", DateFromNow
}

// MapTeam converts a team row. Conference, division and projections stay empty because the
// table does not carry them.
func MapTeam(row remote.TeamRow) teams.Team {
	city := ""
	if row.City != nil {
		city = *row.City
	}
	return teams.Team{
		ID:      strconv.Itoa(row.TeamID),
		Name:    row.Name,
		Abbrev:  row.Abbrev,
		City:    city,
		LogoURL: cloneString(row.LogoURL),
	}
}

// MapTeams converts rows in order.
func MapTeams(rows []remote.TeamRow) []teams.Team {
	out := make([]teams.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, MapTeam(row))
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
