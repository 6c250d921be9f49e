//go:build ((linux || darwin) && cgo) || windows

package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.design/x/hotkey"
)

// unregisterWait bounds Unregister. The X11 backend only returns from
// Unregister after the next event on the grabbed key.
const unregisterWait = 250 * time.Millisecond

var globalModifiers = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
}

var globalKeys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"esc":    hotkey.KeyEscape,
	"enter":  hotkey.KeyReturn,
	"tab":    hotkey.KeyTab,
	"space":  hotkey.KeySpace,
	"delete": hotkey.KeyDelete,
}

// GlobalHotkeys registers combinations with the operating system, so they
// fire whichever window has focus. The key is grabbed while registered.
type GlobalHotkeys struct {
	mu       sync.Mutex
	bindings map[string]*globalBinding
}

type globalBinding struct {
	hk   *hotkey.Hotkey
	done chan struct{}
}

// NewGlobalHotkeys fails when no desktop session can deliver global keys
func NewGlobalHotkeys() (*GlobalHotkeys, error) {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" {
		return nil, fmt.Errorf("%w: DISPLAY is not set", ErrGlobalHotkeysUnavailable)
	}
	return &GlobalHotkeys{bindings: make(map[string]*globalBinding)}, nil
}

// newSystemHotkey translates c into the backend's modifier and key codes
func newSystemHotkey(c combo) (*hotkey.Hotkey, error) {
	k, ok := globalKeys[c.key]
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrHotkeyUnsupported, c.key)
	}
	mods := make([]hotkey.Modifier, 0, len(c.mods))
	for _, m := range c.mods {
		mods = append(mods, globalModifiers[m])
	}
	return hotkey.New(mods, k), nil
}

// Register grabs combo system-wide and calls handler on every key down.
// Each call runs in its own goroutine.
func (g *GlobalHotkeys) Register(combo string, handler func()) error {
	c, err := parseCombo(combo)
	if err != nil {
		return err
	}
	hk, err := newSystemHotkey(c)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	name := c.String()
	if _, ok := g.bindings[name]; ok {
		return fmt.Errorf("%w: %s", ErrHotkeyRegistered, name)
	}
	if err := hk.Register(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrGlobalHotkeysUnavailable, name, err)
	}

	b := &globalBinding{hk: hk, done: make(chan struct{})}
	g.bindings[name] = b
	go b.dispatch(handler)
	return nil
}

func (b *globalBinding) dispatch(handler func()) {
	keydown := b.hk.Keydown()
	for {
		select {
		case <-b.done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			go handler()
		}
	}
}

// Unregister releases the grab on combo
func (g *GlobalHotkeys) Unregister(combo string) error {
	c, err := parseCombo(combo)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrHotkeyNotRegistered, cleanCombo(combo))
	}

	g.mu.Lock()
	name := c.String()
	b, ok := g.bindings[name]
	delete(g.bindings, name)
	g.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrHotkeyNotRegistered, name)
	}

	close(b.done)
	errc := make(chan error, 1)
	go func() { errc <- b.hk.Unregister() }()
	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("unregister %s: %w", name, err)
		}
	case <-time.After(unregisterWait):
	}
	return nil
}
