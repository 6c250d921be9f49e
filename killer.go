package main

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// KillResult is the outcome of one kill pass
type KillResult struct {
	Killed []string // names with at least one accepted termination request
	Failed []string // names with at least one refused termination request
	Errors []error  // every *ProcessAccessError seen, matched or not
}

// Summary renders the result for display
func (r KillResult) Summary() string {
	msg := "No apps were killed."
	if len(r.Killed) > 0 {
		msg = "Killed apps: " + strings.Join(r.Killed, ", ")
	}
	if len(r.Failed) > 0 {
		msg += "\nFailed to kill: " + strings.Join(r.Failed, ", ")
	}
	return msg
}

// KillExecutor terminates every running process whose name is targeted.
// It holds no mutable state, so concurrent passes are safe.
type KillExecutor struct {
	dir    ProcessDirectory
	killer ProcessKiller
	log    zerolog.Logger
}

// NewKillExecutor wires a directory and killer together
func NewKillExecutor(dir ProcessDirectory, killer ProcessKiller, log zerolog.Logger) *KillExecutor {
	return &KillExecutor{dir: dir, killer: killer, log: log}
}

// Kill runs a single best-effort pass over the process table. A failure on
// one process never stops the pass and nothing is retried.
func (e *KillExecutor) Kill(ctx context.Context, targets SelectionSet) KillResult {
	var res KillResult
	killed := make(map[string]bool)
	failed := make(map[string]bool)

	for rec, err := range e.dir.Processes(ctx) {
		if err != nil {
			// The name is unknown, so the process cannot be matched.
			res.Errors = append(res.Errors, err)
			e.log.Debug().Msgf("Skipping process: %v", err)
			continue
		}

		if !targets.Contains(rec.Name) {
			continue
		}

		if err := e.killer.Kill(ctx, rec.PID); err != nil {
			failed[rec.Name] = true
			res.Errors = append(res.Errors, &ProcessAccessError{PID: rec.PID, Name: rec.Name, Op: "kill", Err: err})
			e.log.Error().Msgf("Error killing process %s : %v", rec.Name, err)
			continue
		}

		killed[rec.Name] = true
		e.log.Info().Msgf("Killed: %s (PID %d)", rec.Name, rec.PID)
	}

	res.Killed = sortedKeys(killed)
	res.Failed = sortedKeys(failed)
	return res
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
