package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Supabase SupabaseConfig
	Display  DisplayConfig
	Settings SettingsConfig
	Logo     LogoConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; variables
// already set in the environment win.
func Load() Config {
	loadDotEnv(".env")

	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Supabase: loadSupabase(),
		Display:  loadDisplay(),
		Settings: loadSettings(),
		Logo:     loadLogo(),
		Metrics:  loadMetrics(),
	}
}

// Validate reports configuration that must stop the process at startup.
func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port must not be empty"))
	}
	if err := c.Supabase.validate(); err != nil {
		errs = append(errs, err)
	}
	if !c.Supabase.Configured() && !c.Settings.DefaultUseTestData {
		errs = append(errs, fmt.Errorf("%s is required when test data is disabled by default", envSupabaseURL))
	}
	return errors.Join(errs...)
}

func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}
