package supabase

import "time"

const (
	restPath           = "/rest/v1"
	defaultSchema      = "public"
	defaultHTTPTimeout = 10 * time.Second
	defaultGamesLimit  = 200
)
