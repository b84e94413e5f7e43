package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
)

// StubTableClient serves fixed rows and counts queries.
type StubTableClient struct {
	Teams   []remote.TeamRow
	Games   []remote.GameRow
	TeamErr error
	GameErr error

	mu        sync.Mutex
	teamCalls int
	gameCalls int
	lastLimit int
}

func (s *StubTableClient) QueryTeams(ctx context.Context) ([]remote.TeamRow, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teamCalls++
	if s.TeamErr != nil {
		return nil, s.TeamErr
	}
	return s.Teams, nil
}

func (s *StubTableClient) QueryGames(ctx context.Context, limit int) ([]remote.GameRow, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameCalls++
	s.lastLimit = limit
	if s.GameErr != nil {
		return nil, s.GameErr
	}
	return s.Games, nil
}

// TeamCalls returns how many teams queries were made.
func (s *StubTableClient) TeamCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamCalls
}

// GameCalls returns how many games queries were made.
func (s *StubTableClient) GameCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameCalls
}

// LastLimit returns the limit passed to the latest games query.
func (s *StubTableClient) LastLimit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLimit
}
