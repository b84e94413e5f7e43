package home

import (
	"github.com/preston-bernstein/nhl-edge-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
)

// Response is the payload returned by /home.
type Response struct {
	Source   string       `json:"source"`
	Date     string       `json:"date"`
	Today    []games.Game `json:"today"`
	Featured []teams.Team `json:"featured"`
}

// NewResponse builds a Response, never encoding null lists.
func NewResponse(source, date string, today []games.Game, featured []teams.Team) Response {
	if today == nil {
		today = []games.Game{}
	}
	if featured == nil {
		featured = []teams.Team{}
	}
	return Response{
		Source:   source,
		Date:     date,
		Today:    today,
		Featured: featured,
	}
}
