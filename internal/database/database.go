package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"polishlang/internal/models"
)

// Config describes the settings database. Logger receives gorm's output;
// when nil it goes to the standard logger.
type Config struct {
	Path     string
	LogLevel logger.LogLevel
	Logger   wailslogger.Logger
}

// Init opens the settings database at cfg.Path, creating its directory,
// and brings the schema up to date.
func Init(cfg Config) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Warn
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(appLogWriter{log: cfg.Logger}, "", 0),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  cfg.LogLevel,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows one writer; more connections only produce "database is locked".
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&models.SettingsRecord{}); err != nil {
		return nil, fmt.Errorf("migrate settings schema: %w", err)
	}
	return db, nil
}

// appLogWriter forwards gorm log lines to the application logger.
type appLogWriter struct {
	log wailslogger.Logger
}

func (w appLogWriter) Write(p []byte) (int, error) {
	line := strings.TrimSpace(string(p))
	if line == "" {
		return len(p), nil
	}
	if w.log == nil {
		log.Print(line)
		return len(p), nil
	}
	if strings.Contains(line, "[error]") {
		w.log.Error("sqlite: " + line)
	} else {
		w.log.Debug("sqlite: " + line)
	}
	return len(p), nil
}
