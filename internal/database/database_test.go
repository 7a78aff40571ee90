package database

import (
	"path/filepath"
	"strings"
	"testing"

	"polishlang/internal/models"
	"polishlang/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestInit_RequiresPath(t *testing.T) {
	_, err := Init(Config{})
	assert.EqualError(t, err, "database path is required")
}

func TestInit_RoutesQueriesToAppLogger(t *testing.T) {
	appLog := &mocks.LoggerMock{}
	db, err := Init(Config{
		Path:     filepath.Join(t.TempDir(), "nested", "settings.db"),
		LogLevel: logger.Info,
		Logger:   appLog,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.True(t, db.Migrator().HasTable(&models.SettingsRecord{}))
	assert.True(t, appLog.Has("DEBUG", "sqlite:"))
	for _, line := range appLog.Lines {
		assert.False(t, strings.HasSuffix(line, "\n"))
	}
}

func TestAppLogWriter_ErrorLines(t *testing.T) {
	appLog := &mocks.LoggerMock{}
	w := appLogWriter{log: appLog}

	line := []byte("db.go:12\n[error] failed to connect\n")
	n, err := w.Write(line)
	require.NoError(t, err)
	assert.Equal(t, len(line), n)
	assert.True(t, appLog.Has("ERROR", "failed to connect"))

	_, _ = w.Write([]byte("  \n"))
	assert.Len(t, appLog.Lines, 1)
}
