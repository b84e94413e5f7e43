package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
)

const memoryPath = ":memory:"

// Setting is one persisted key/value pair.
type Setting struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// SQLStore keeps settings in a SQLite database so they survive restarts.
type SQLStore struct {
	db                 *gorm.DB
	defaultUseTestData bool
	logger             *slog.Logger
}

// Open opens (creating if needed) the database at path and migrates the settings table.
func Open(path string, defaultUseTestData bool, logger *slog.Logger) (*SQLStore, error) {
	if path == "" {
		path = memoryPath
	}
	if path != memoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create settings dir: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	// Every SQLite connection sees its own :memory: database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}

	logging.Info(logger, "settings store ready", "path", path)
	return &SQLStore{db: db, defaultUseTestData: defaultUseTestData, logger: logger}, nil
}

// UseTestData returns the persisted flag, or the configured default when never set.
func (s *SQLStore) UseTestData(ctx context.Context) (bool, error) {
	var row Setting
	err := s.db.WithContext(ctx).First(&row, "key = ?", KeyUseTestData).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.defaultUseTestData, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", KeyUseTestData, err)
	}

	value, err := strconv.ParseBool(row.Value)
	if err != nil {
		logging.Warn(s.logger, "ignoring malformed setting", "key", KeyUseTestData, "value", row.Value)
		return s.defaultUseTestData, nil
	}
	return value, nil
}

// SetUseTestData persists the flag.
func (s *SQLStore) SetUseTestData(ctx context.Context, value bool) error {
	row := Setting{Key: KeyUseTestData, Value: strconv.FormatBool(value)}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("write %s: %w", KeyUseTestData, err)
	}
	return nil
}

// Ping checks the database connection.
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
