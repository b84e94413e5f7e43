// Package aggregate derives screen lists from already-mapped games and teams.
package aggregate

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/nhl-edge-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-edge-service/internal/timeutil"
)

// DefaultFeaturedCount is the size of the featured teams list.
const DefaultFeaturedCount = 6

// Today keeps games on the same calendar day as now in loc, preserving order.
func Today(list []games.Game, now time.Time, loc *time.Location) []games.Game {
	out := make([]games.Game, 0, len(list))
	for _, g := range list {
		if timeutil.SameDay(g.Date, now, loc) {
			out = append(out, g)
		}
	}
	return out
}

// SortByDate returns a copy of list sorted ascending by date. Ties keep input order.
func SortByDate(list []games.Game) []games.Game {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b games.Game) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// SortByName returns a copy of list sorted by name using byte-wise string order.
func SortByName(list []teams.Team) []teams.Team {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b teams.Team) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Featured takes the first n teams by name. n <= 0 uses DefaultFeaturedCount.
func Featured(list []teams.Team, n int) []teams.Team {
	if n <= 0 {
		n = DefaultFeaturedCount
	}
	sorted := SortByName(list)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SearchTeams fuzzy-matches query against name, abbreviation and city and returns matches
// best first. An empty query returns list unchanged.
func SearchTeams(list []teams.Team, query string) []teams.Team {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}

	best := make(map[int]int, len(list))
	for _, field := range []func(teams.Team) string{
		func(t teams.Team) string { return t.Name },
		func(t teams.Team) string { return t.Abbrev },
		func(t teams.Team) string { return t.City },
	} {
		targets := make([]string, len(list))
		for i, t := range list {
			targets[i] = field(t)
		}
		for _, rank := range fuzzy.RankFindNormalizedFold(query, targets) {
			if d, ok := best[rank.OriginalIndex]; !ok || rank.Distance < d {
				best[rank.OriginalIndex] = rank.Distance
			}
		}
	}

	idx := make([]int, 0, len(best))
	for i := range best {
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		da, db := best[idx[a]], best[idx[b]]
		if da != db {
			return da < db
		}
		return idx[a] < idx[b]
	})

	out := make([]teams.Team, 0, len(idx))
	for _, i := range idx {
		out = append(out, list[i])
	}
	return out
}
