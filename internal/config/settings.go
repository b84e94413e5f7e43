package config

import "time"

// DisplayConfig controls how schedule data is presented.
type DisplayConfig struct {
	Timezone      string // IANA name; empty means the server's local zone
	FeaturedTeams int
}

// SettingsConfig controls the persisted user settings store.
type SettingsConfig struct {
	DBPath             string
	DefaultUseTestData bool
}

// LogoConfig controls remote team logo fetches.
type LogoConfig struct {
	Timeout time.Duration
}

func loadDisplay() DisplayConfig {
	return DisplayConfig{
		Timezone:      envOrDefault(envDisplayTimezone, ""),
		FeaturedTeams: intEnvOrDefault(envFeaturedTeams, defaultFeatured),
	}
}

func loadSettings() SettingsConfig {
	return SettingsConfig{
		DBPath:             envOrDefault(envSettingsDBPath, defaultSettingsPath),
		DefaultUseTestData: boolEnvOrDefault(envUseTestData, defaultUseTestData),
	}
}

func loadLogo() LogoConfig {
	return LogoConfig{
		Timeout: durationEnvOrDefault(envLogoTimeout, defaultLogoTimeout),
	}
}
