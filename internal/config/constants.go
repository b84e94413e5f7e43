package config

import "time"

const (
	envPort            = "PORT"
	envSupabaseURL     = "SUPABASE_URL"
	envSupabaseKey     = "SUPABASE_ANON_KEY"
	envSupabaseTimeout = "SUPABASE_TIMEOUT"
	envSupabaseRate    = "SUPABASE_RATE_LIMIT"
	envGamesLimit      = "GAMES_LIMIT"
	envFeaturedTeams   = "FEATURED_TEAMS"
	envDisplayTimezone = "DISPLAY_TIMEZONE"
	envSettingsDBPath  = "SETTINGS_DB_PATH"
	envUseTestData     = "USE_TEST_DATA_DEFAULT"
	envLogoTimeout     = "LOGO_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultSupabaseTimeout = 10 * Duration(time.Second)
	// Requests per second against the table store; the anon key shares a project-wide quota.
	defaultSupabaseRate = 5.0
	defaultGamesLimit   = 200
	defaultFeatured     = 6
	defaultSettingsPath = "data/settings.db"
	// The app ships with test data enabled until a backend is configured.
	defaultUseTestData = true
	defaultLogoTimeout = 5 * Duration(time.Second)
	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-edge-service"
)
