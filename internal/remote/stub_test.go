package remote

import (
	"context"
	"sync/atomic"
)

type stubClient struct {
	teams     []TeamRow
	games     []GameRow
	err       error
	calls     atomic.Int32
	lastLimit int
}

func (s *stubClient) QueryTeams(ctx context.Context) ([]TeamRow, error) {
	_ = ctx
	s.calls.Add(1)
	return s.teams, s.err
}

func (s *stubClient) QueryGames(ctx context.Context, limit int) ([]GameRow, error) {
	_ = ctx
	s.calls.Add(1)
	s.lastLimit = limit
	return s.games, s.err
}
