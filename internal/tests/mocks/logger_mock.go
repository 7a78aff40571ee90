package mocks

import (
	"strings"
	"sync"
)

// LoggerMock records log lines and satisfies the Wails logger.Logger interface.
type LoggerMock struct {
	mu    sync.Mutex
	Lines []string
}

func (l *LoggerMock) add(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, level+": "+message)
}

func (l *LoggerMock) Print(message string)   { l.add("PRINT", message) }
func (l *LoggerMock) Trace(message string)   { l.add("TRACE", message) }
func (l *LoggerMock) Debug(message string)   { l.add("DEBUG", message) }
func (l *LoggerMock) Info(message string)    { l.add("INFO", message) }
func (l *LoggerMock) Warning(message string) { l.add("WARN", message) }
func (l *LoggerMock) Error(message string)   { l.add("ERROR", message) }
func (l *LoggerMock) Fatal(message string)   { l.add("FATAL", message) }

// Has reports whether a line was logged at level containing substr.
func (l *LoggerMock) Has(level, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.Lines {
		if strings.HasPrefix(line, level+": ") && strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
