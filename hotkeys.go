package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

var (
	ErrHotkeyRegistered         = errors.New("hotkey already registered")
	ErrHotkeyNotRegistered      = errors.New("hotkey not registered")
	ErrEmptyHotkey              = errors.New("empty hotkey")
	ErrHotkeyUnsupported        = errors.New("hotkey not supported")
	ErrGlobalHotkeysUnavailable = errors.New("global hotkeys unavailable")
)

// Hotkeys is a key-combination subscription facility.
// Combos use bubbletea key names, e.g. "ctrl+shift+q" or "esc".
type Hotkeys interface {
	Register(combo string, handler func()) error
	Unregister(combo string) error
}

// comboModifiers are the modifiers a system-wide combo may carry, in
// canonical order.
var comboModifiers = []string{"ctrl", "shift"}

// combo is a parsed key combination: zero or more modifiers and one key
type combo struct {
	mods []string
	key  string
}

func (c combo) String() string {
	return strings.Join(append(slices.Clone(c.mods), c.key), "+")
}

// parseCombo splits "ctrl+shift+q" into its modifiers and key. Modifier
// order and case do not matter; the result is canonical.
func parseCombo(s string) (combo, error) {
	s = cleanCombo(s)
	if s == "" {
		return combo{}, ErrEmptyHotkey
	}

	parts := strings.Split(s, "+")
	c := combo{key: parts[len(parts)-1]}
	if c.key == "" {
		return combo{}, fmt.Errorf("%w: %q has no key", ErrHotkeyUnsupported, s)
	}
	for _, m := range parts[:len(parts)-1] {
		if !slices.Contains(comboModifiers, m) {
			return combo{}, fmt.Errorf("%w: modifier %q", ErrHotkeyUnsupported, m)
		}
		if slices.Contains(c.mods, m) {
			return combo{}, fmt.Errorf("%w: %q repeats %s", ErrHotkeyUnsupported, s, m)
		}
		c.mods = append(c.mods, m)
	}
	slices.SortFunc(c.mods, func(a, b string) int {
		return slices.Index(comboModifiers, a) - slices.Index(comboModifiers, b)
	})
	return c, nil
}

func cleanCombo(combo string) string {
	return strings.ToLower(strings.TrimSpace(combo))
}

// FallbackHotkeys registers each combo with primary and, when primary
// refuses it, with fallback. Combos named as local skip primary entirely.
type FallbackHotkeys struct {
	primary  Hotkeys
	fallback Hotkeys
	local    map[string]bool
	log      zerolog.Logger

	mu    sync.Mutex
	owner map[string]Hotkeys
}

// NewFallbackHotkeys routes combos between primary and fallback
func NewFallbackHotkeys(primary, fallback Hotkeys, log zerolog.Logger, local ...string) *FallbackHotkeys {
	f := &FallbackHotkeys{
		primary:  primary,
		fallback: fallback,
		local:    make(map[string]bool, len(local)),
		log:      log,
		owner:    make(map[string]Hotkeys),
	}
	for _, c := range local {
		f.local[cleanCombo(c)] = true
	}
	return f
}

// Register binds handler to combo on the first backend that accepts it
func (f *FallbackHotkeys) Register(combo string, handler func()) error {
	c := cleanCombo(combo)
	if c == "" {
		return ErrEmptyHotkey
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.owner[c]; ok {
		return fmt.Errorf("%w: %s", ErrHotkeyRegistered, c)
	}

	if !f.local[c] {
		err := f.primary.Register(c, handler)
		if err == nil {
			f.owner[c] = f.primary
			return nil
		}
		f.log.Warn().Msgf("Global hotkey %s unavailable, using the terminal: %v", c, err)
	}

	if err := f.fallback.Register(c, handler); err != nil {
		return err
	}
	f.owner[c] = f.fallback
	return nil
}

// Unregister removes combo from whichever backend holds it
func (f *FallbackHotkeys) Unregister(combo string) error {
	c := cleanCombo(combo)

	f.mu.Lock()
	defer f.mu.Unlock()
	owner, ok := f.owner[c]
	if !ok {
		return fmt.Errorf("%w: %s", ErrHotkeyNotRegistered, c)
	}
	delete(f.owner, c)
	return owner.Unregister(c)
}

// TerminalHotkeys delivers key presses read from a terminal to registered
// handlers. Each handler runs in its own goroutine so a slow handler does
// not hold up later key presses.
type TerminalHotkeys struct {
	mu       sync.RWMutex
	handlers map[string]func()
	in       io.Reader
	out      io.Writer
}

// NewTerminalHotkeys reads keys from in. out is only used for terminal setup.
func NewTerminalHotkeys(in io.Reader, out io.Writer) *TerminalHotkeys {
	return &TerminalHotkeys{
		handlers: make(map[string]func()),
		in:       in,
		out:      out,
	}
}

// normalizeCombo maps combo to the name bubbletea reports for it. Terminals
// send ctrl+shift+<letter> as ctrl+<letter>.
func normalizeCombo(combo string) string {
	c := cleanCombo(combo)
	if rest, ok := strings.CutPrefix(c, "ctrl+shift+"); ok && len(rest) == 1 {
		return "ctrl+" + rest
	}
	return c
}

// Register binds handler to combo
func (h *TerminalHotkeys) Register(combo string, handler func()) error {
	c := normalizeCombo(combo)
	if c == "" {
		return ErrEmptyHotkey
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.handlers[c]; ok {
		return fmt.Errorf("%w: %s", ErrHotkeyRegistered, c)
	}
	h.handlers[c] = handler
	return nil
}

// Unregister removes the handler bound to combo
func (h *TerminalHotkeys) Unregister(combo string) error {
	c := normalizeCombo(combo)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.handlers[c]; !ok {
		return fmt.Errorf("%w: %s", ErrHotkeyNotRegistered, c)
	}
	delete(h.handlers, c)
	return nil
}

func (h *TerminalHotkeys) handler(combo string) func() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.handlers[combo]
}

// Run reads key events until ctx is cancelled. It returns nil on
// cancellation and the terminal error otherwise.
func (h *TerminalHotkeys) Run(ctx context.Context) error {
	p := tea.NewProgram(hotkeyModel{hotkeys: h},
		tea.WithContext(ctx),
		tea.WithInput(h.in),
		tea.WithOutput(h.out),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// hotkeyModel is a renderer-less bubbletea model that only dispatches keys
type hotkeyModel struct {
	hotkeys *TerminalHotkeys
}

func (m hotkeyModel) Init() tea.Cmd { return nil }

func (m hotkeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	fn := m.hotkeys.handler(keyMsg.String())
	if fn == nil {
		return m, nil
	}
	return m, func() tea.Msg {
		fn()
		return nil
	}
}

func (m hotkeyModel) View() string { return "" }
