// Package main implements quickkill, a tool that terminates a saved set of
// applications by process name.
//
// quickkill has two front ends sharing one kill routine:
//   - Headless listener (the bare command): loads the selection once and
//     kills every matching process each time Ctrl+Shift+Q is pressed in any
//     window; Esc stops it
//   - Selector ("quickkill select"): a checklist of running apps where the
//     selection can be saved or killed directly
//
// The selector uses the Bubbletea framework with the Elm architecture pattern
// for state management.
//
// # Architecture
//
// The codebase is organized into the following components:
//
//   - process.go: Process enumeration (ProcessDirectory interface) and termination (ProcessKiller interface)
//   - selection.go: SelectionSet, the ordered set of target names
//   - store.go: Selection file persistence ({"apps": [...]} as JSON, YAML or TOML)
//   - killer.go: KillExecutor, one best-effort pass over the process table
//   - hotkeys.go: Hotkeys subscription interface, terminal implementation and fallback routing
//   - globalhotkeys.go: System-wide Hotkeys implementation
//   - listener.go: Headless listener lifecycle (Start, Wait, Stop)
//   - model.go: Selector TUI model with Init, Update, and View methods
//   - logging.go: Listener log file
//   - styles.go: Lipgloss styles for terminal rendering
//   - keys.go: Key bindings configuration
//   - messages.go: TUI message types for the Elm architecture
//   - helpers.go: Utility functions for string formatting
//
// The ProcessDirectory, ProcessKiller and Hotkeys interfaces allow for custom
// implementations and easier testing through dependency injection.
package main
