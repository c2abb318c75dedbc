// Package logging wraps charmbracelet/log behind package-level functions so
// library code can report without threading a logger through every call.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// Init configures the shared logger. Safe to call more than once; the CLI
// calls it after reading config, tests leave the defaults alone.
func Init(prefix, level string) {
	logger = log.New(os.Stderr)
	logger.SetPrefix(prefix)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)

	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func Debug(format string, args ...any) { logger.Debugf(format, args...) }
func Info(format string, args ...any)  { logger.Infof(format, args...) }
func Warn(format string, args ...any)  { logger.Warnf(format, args...) }
func Error(format string, args ...any) { logger.Errorf(format, args...) }
func Fatal(format string, args ...any) { logger.Fatalf(format, args...) }
