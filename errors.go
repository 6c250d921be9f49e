package main

import (
	"errors"
	"fmt"
)

// ErrSelectionMismatch is returned by Store.Save when the encoded file would
// not decode back to the selection being saved.
var ErrSelectionMismatch = errors.New("encoded selection does not load back")

// ConfigError reports a selection file that could not be read or decoded.
// Store.Load recovers from it by returning an empty SelectionSet.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ProcessAccessError reports a single process that could not be inspected
// or terminated. It never aborts the enclosing pass.
type ProcessAccessError struct {
	PID  int32
	Name string // empty when the name itself could not be read
	Op   string // "list", "name" or "kill"
	Err  error
}

func (e *ProcessAccessError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s (pid %d): %v", e.Op, e.Name, e.PID, e.Err)
	}
	return fmt.Sprintf("%s pid %d: %v", e.Op, e.PID, e.Err)
}

func (e *ProcessAccessError) Unwrap() error { return e.Err }
