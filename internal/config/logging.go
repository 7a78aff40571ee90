package config

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// ParseLogLevel maps a level name onto the Wails logger levels.
func ParseLogLevel(level string) (logger.LogLevel, error) {
	switch level {
	case "trace":
		return logger.TRACE, nil
	case "debug":
		return logger.DEBUG, nil
	case "", "info":
		return logger.INFO, nil
	case "warn", "warning":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	default:
		return logger.INFO, fmt.Errorf("%s_LOG_LEVEL must be one of trace, debug, info, warning, error; got %q", envPrefix, level)
	}
}

// DefaultLogLevel is debug for development builds and info otherwise.
func DefaultLogLevel() string {
	if IsDevelopment() {
		return "debug"
	}
	return "info"
}

// NewLogger returns the logger configured by c: a file logger when LogFile
// is set, otherwise the Wails default (stdout) logger.
func (c *Config) NewLogger() logger.Logger {
	if c.LogFile != "" {
		return logger.NewFileLogger(c.LogFile)
	}
	return logger.NewDefaultLogger()
}
