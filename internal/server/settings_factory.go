package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-edge-service/internal/config"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/settings"
)

// settingsComponents pairs the store with its release hook. close is nil for memory stores.
type settingsComponents struct {
	store settings.Store
	close func() error
}

var openSettings = func(path string, defaultUseTestData bool, logger *slog.Logger) (*settings.SQLStore, error) {
	return settings.Open(path, defaultUseTestData, logger)
}

func buildSettings(cfg config.Config, logger *slog.Logger) settingsComponents {
	store, err := openSettings(cfg.Settings.DBPath, cfg.Settings.DefaultUseTestData, logger)
	if err != nil {
		logging.Warn(logger, "settings db unavailable, falling back to memory", "err", err)
		return settingsComponents{store: settings.NewMemory(cfg.Settings.DefaultUseTestData)}
	}
	return settingsComponents{store: store, close: store.Close}
}
