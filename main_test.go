package main

import (
	"bytes"
	"io"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&cliConfig{ConfigPath: DefaultConfigPath, LogPath: DefaultLogPath})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "quickkill dev\n", out.String())
}

func TestRootCmdFlags(t *testing.T) {
	cfg := &cliConfig{ConfigPath: DefaultConfigPath, LogPath: DefaultLogPath}
	cmd := newRootCmd(cfg)
	cmd.SetArgs([]string{"--config", "apps.yaml", "--log-file", "/tmp/qk.log", "version"})
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "apps.yaml", cfg.ConfigPath)
	assert.Equal(t, "/tmp/qk.log", cfg.LogPath)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd(&cliConfig{})
	cmd.SetArgs([]string{"select", "extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("QUICKKILL_TEST_VAR", "")
	assert.Equal(t, "def", envOr("QUICKKILL_TEST_VAR", "def"))

	t.Setenv("QUICKKILL_TEST_VAR", "set")
	assert.Equal(t, "set", envOr("QUICKKILL_TEST_VAR", "def"))
}

func TestListenerHotkeysFallsBackWithoutDisplay(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("DISPLAY only gates global hotkeys on Linux")
	}
	t.Setenv("DISPLAY", "")

	term := NewTerminalHotkeys(nil, io.Discard)
	assert.Same(t, term, listenerHotkeys(term, zerolog.Nop()))
}
