//go:build !(((linux || darwin) && cgo) || windows)

package main

import (
	"fmt"
	"runtime"
)

// GlobalHotkeys is unavailable in this build: the backend needs cgo on
// Linux and macOS and has no implementation on other systems.
type GlobalHotkeys struct{}

// NewGlobalHotkeys always fails on this build
func NewGlobalHotkeys() (*GlobalHotkeys, error) {
	return nil, fmt.Errorf("%w: not supported on %s without cgo", ErrGlobalHotkeysUnavailable, runtime.GOOS)
}

func (*GlobalHotkeys) Register(combo string, handler func()) error {
	return ErrGlobalHotkeysUnavailable
}

func (*GlobalHotkeys) Unregister(combo string) error {
	return fmt.Errorf("%w: %s", ErrHotkeyNotRegistered, cleanCombo(combo))
}
