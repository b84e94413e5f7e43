package supabase

import (
	"strings"
	"time"
)

// normalizeBaseURL strips whitespace, stray quotes and trailing slashes from a project URL
// copied out of a dashboard or .env file.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, `"'`)
	return strings.TrimRight(raw, "/")
}

// authHeaders carries the anon key both as the gateway key and as the bearer token.
func authHeaders(apiKey string) map[string]string {
	if apiKey == "" {
		return map[string]string{}
	}
	return map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	}
}

func resolveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultHTTPTimeout
	}
	return timeout
}

func resolveLimit(limit int) int {
	if limit <= 0 {
		return defaultGamesLimit
	}
	return limit
}
