package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type simpleLogger struct {
	logger *log.Logger
}

var (
	loggerInstance *simpleLogger
	once           sync.Once
)

// New creates a new singleton instance of the simple logger.
func New() Logger {
	once.Do(func() {
		loggerInstance = &simpleLogger{
			logger: log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile),
		}
	})
	return loggerInstance
}

func (l *simpleLogger) Error(msg string, err error) {
	l.logger.Output(2, fmt.Sprintf("ERROR: %s - %v", msg, err))
}

func (l *simpleLogger) Warn(msg string) {
	l.logger.Output(2, fmt.Sprintf("WARN: %s", msg))
}

func (l *simpleLogger) Info(msg string) {
	l.logger.Output(2, fmt.Sprintf("INFO: %s", msg))
}

func (l *simpleLogger) Debug(msg string) {
	l.logger.Output(2, fmt.Sprintf("DEBUG: %s", msg))
}
