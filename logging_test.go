package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logLineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - (INFO|ERROR) - (.+)$`)

func TestLineLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newLineLogger(&buf)

	log.Info().Msgf("Killed: %s (PID %d)", "A.exe", 100)
	log.Error().Msg("Error loading config: boom")
	log.Debug().Msg("not written")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	m := logLineRe.FindStringSubmatch(lines[0])
	require.NotNil(t, m, "unexpected line %q", lines[0])
	assert.Equal(t, "INFO", m[1])
	assert.Equal(t, "Killed: A.exe (PID 100)", m[2])

	m = logLineRe.FindStringSubmatch(lines[1])
	require.NotNil(t, m, "unexpected line %q", lines[1])
	assert.Equal(t, "ERROR", m[1])
	assert.Equal(t, "Error loading config: boom", m[2])
}

func TestOpenLogFileAppends(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "quickkill.log")

	log, closer, err := openLogFile(p)
	require.NoError(t, err)
	log.Info().Msg("first")
	require.NoError(t, closer.Close())

	log, closer, err = openLogFile(p)
	require.NoError(t, err)
	log.Info().Msg("second")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " - INFO - first"))
	assert.True(t, strings.HasSuffix(lines[1], " - INFO - second"))
}

func TestOpenLogFileFallsBackToStderr(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "logs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	_, closer, err := openLogFile(filepath.Join(blocker, "quickkill.log"))
	assert.Error(t, err)
	assert.NoError(t, closer.Close())
}
