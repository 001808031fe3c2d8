// Package logs builds the per-component loggers used across the app.
package logs

import (
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "POMODORO_LOG_LEVEL"

// ComponentKey is the field every entry carries to name where it came from.
const ComponentKey = "component"

// componentHook stamps entries with a default component. An explicit
// WithField(ComponentKey, ...) on the entry wins.
type componentHook struct {
	component string
}

func (h componentHook) Levels() []log.Level { return log.AllLevels }

func (h componentHook) Fire(e *log.Entry) error {
	if _, ok := e.Data[ComponentKey]; !ok {
		e.Data[ComponentKey] = h.component
	}
	return nil
}

// NewLogger returns a text logger whose entries carry component=name. The
// level comes from POMODORO_LOG_LEVEL and defaults to info.
func NewLogger(component string) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.StampMilli,
	})
	logger.AddHook(componentHook{component: component})
	logger.SetLevel(LevelFromEnv())
	return logger
}

// LevelFromEnv parses POMODORO_LOG_LEVEL, falling back to info.
func LevelFromEnv() log.Level {
	raw := strings.TrimSpace(os.Getenv(LevelEnv))
	if raw == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
