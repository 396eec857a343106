// Package logger provides the process-wide structured logger.
//
// The TUI owns stdout, so logs go to a file under the data directory.
// Until Init is called (and always in tests) output is discarded.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// L is the shared logger instance.
var L = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init directs the logger at a JSON log file inside dir.
// level is a logrus level name ("debug", "info", ...); empty means info.
func Init(dir, level string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, "sitedesk.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	lvl := logrus.InfoLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	L.SetOutput(file)
	L.SetLevel(lvl)
	L.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	return nil
}
