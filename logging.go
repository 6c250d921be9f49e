package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLogPath is the headless listener's log file
const DefaultLogPath = "logs/quickkill.log"

// logTimeFormat renders timestamps like 2026-01-02 15:04:05
const logTimeFormat = "2006-01-02 15:04:05"

// newLineLogger writes one "<timestamp> - <LEVEL> - <message>" line per event
func newLineLogger(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: logTimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("- %s -", strings.ToUpper(fmt.Sprint(i)))
		},
	}
	return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// openLogFile opens path for appending, creating its directory. When the
// file cannot be opened the logger falls back to stderr and the returned
// error says why; the closer is always safe to call.
func openLogFile(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultLogPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLineLogger(os.Stderr), io.NopCloser(nil), fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLineLogger(os.Stderr), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	return newLineLogger(f), f, nil
}
