//go:build ((linux || darwin) && cgo) || windows

package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"
)

func TestGlobalKeysCoverDefaultBindings(t *testing.T) {
	for _, b := range []string{hotkeys.Kill.Keys()[0], "esc"} {
		c, err := parseCombo(b)
		require.NoError(t, err)
		_, ok := globalKeys[c.key]
		assert.True(t, ok, "no system key for %s", b)
	}
}

func TestNewSystemHotkey(t *testing.T) {
	c, err := parseCombo("ctrl+shift+q")
	require.NoError(t, err)
	hk, err := newSystemHotkey(c)
	require.NoError(t, err)
	assert.NotNil(t, hk)

	c, err = parseCombo("ctrl+pgup")
	require.NoError(t, err)
	_, err = newSystemHotkey(c)
	assert.ErrorIs(t, err, ErrHotkeyUnsupported)

	assert.Equal(t, hotkey.ModCtrl, globalModifiers["ctrl"])
	assert.Equal(t, hotkey.ModShift, globalModifiers["shift"])
}

func TestGlobalHotkeysRejectsBeforeGrab(t *testing.T) {
	g := &GlobalHotkeys{bindings: make(map[string]*globalBinding)}

	assert.ErrorIs(t, g.Register("", func() {}), ErrEmptyHotkey)
	assert.ErrorIs(t, g.Register("alt+q", func() {}), ErrHotkeyUnsupported)
	assert.ErrorIs(t, g.Register("ctrl+f13", func() {}), ErrHotkeyUnsupported)
	assert.ErrorIs(t, g.Unregister("ctrl+shift+q"), ErrHotkeyNotRegistered)
}

func TestNewGlobalHotkeysNeedsDisplay(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("DISPLAY only matters on Linux")
	}
	t.Setenv("DISPLAY", "")

	_, err := NewGlobalHotkeys()
	assert.ErrorIs(t, err, ErrGlobalHotkeysUnavailable)
}
