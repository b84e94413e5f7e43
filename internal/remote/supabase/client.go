package supabase

import (
	"context"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"

	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
)

// Config controls how the client reaches the Supabase REST endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client reads the teams and games tables through PostgREST.
type Client struct {
	rest    *postgrest.Client
	timeout time.Duration
}

// NewClient constructs a Supabase table client. Without a base URL every query fails with
// remote.ErrSourceUnavailable.
func NewClient(cfg Config) *Client {
	c := &Client{timeout: resolveTimeout(cfg.Timeout)}
	if baseURL := normalizeBaseURL(cfg.BaseURL); baseURL != "" {
		c.rest = postgrest.NewClient(baseURL+restPath, defaultSchema, authHeaders(strings.TrimSpace(cfg.APIKey)))
	}
	return c
}

// QueryTeams returns every team row ordered by team_id ascending.
func (c *Client) QueryTeams(ctx context.Context) ([]remote.TeamRow, error) {
	var rows []remote.TeamRow
	err := c.execute(ctx, remote.TableTeams, func(rest *postgrest.Client) error {
		_, err := rest.From(remote.TableTeams).
			Select("*", "", false).
			Order("team_id", &postgrest.OrderOpts{Ascending: true}).
			ExecuteTo(&rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// QueryGames returns up to limit game rows ordered by game_date, then start_time_utc.
func (c *Client) QueryGames(ctx context.Context, limit int) ([]remote.GameRow, error) {
	var rows []remote.GameRow
	err := c.execute(ctx, remote.TableGames, func(rest *postgrest.Client) error {
		_, err := rest.From(remote.TableGames).
			Select("*", "", false).
			Order("game_date", &postgrest.OrderOpts{Ascending: true}).
			Order("start_time_utc", &postgrest.OrderOpts{Ascending: true}).
			Limit(resolveLimit(limit), "").
			ExecuteTo(&rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// execute runs query under the client timeout and ctx. postgrest-go requests carry no
// context, so a caller that gives up returns at once while the request drains in the
// background; query must not touch caller state after that.
func (c *Client) execute(ctx context.Context, table string, query func(*postgrest.Client) error) error {
	if c.rest == nil {
		return &remote.QueryError{Table: table, Err: remote.ErrSourceUnavailable}
	}
	if c.rest.ClientError != nil {
		return &remote.QueryError{Table: table, Err: c.rest.ClientError}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- query(c.rest) }()

	select {
	case <-ctx.Done():
		return &remote.QueryError{Table: table, Err: ctx.Err()}
	case err := <-done:
		if err != nil {
			return &remote.QueryError{Table: table, Err: err}
		}
		return nil
	}
}
