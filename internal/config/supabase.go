package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// SupabaseConfig controls how we talk to the Supabase table store.
type SupabaseConfig struct {
	URL        string
	AnonKey    string
	Timeout    time.Duration
	RateLimit  float64 // requests per second
	GamesLimit int
}

func loadSupabase() SupabaseConfig {
	return SupabaseConfig{
		URL:        cleanSecret(envOrDefault(envSupabaseURL, "")),
		AnonKey:    cleanSecret(envOrDefault(envSupabaseKey, "")),
		Timeout:    durationEnvOrDefault(envSupabaseTimeout, defaultSupabaseTimeout),
		RateLimit:  floatEnvOrDefault(envSupabaseRate, defaultSupabaseRate),
		GamesLimit: intEnvOrDefault(envGamesLimit, defaultGamesLimit),
	}
}

// Configured reports whether a remote endpoint was supplied.
func (c SupabaseConfig) Configured() bool {
	return c.URL != ""
}

func (c SupabaseConfig) validate() error {
	if !c.Configured() {
		return nil
	}
	parsed, err := url.Parse(c.URL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("%s is not a valid URL: %q", envSupabaseURL, c.URL)
	}
	if c.AnonKey == "" {
		return errors.New("missing " + envSupabaseKey)
	}
	return nil
}

// cleanSecret trims whitespace and stray quotes left by copy-pasted .env values.
func cleanSecret(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"`)
}
