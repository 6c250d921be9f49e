package main

import (
	"context"
	"iter"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// idleProcessName is the kernel placeholder Windows lists as a process.
// It is never offered for selection.
const idleProcessName = "system idle process"

// ProcessRecord is a running process as seen at enumeration time
type ProcessRecord struct {
	PID  int32
	Name string
}

// ProcessDirectory enumerates running processes.
//
// Each element is either a record or a *ProcessAccessError for a process
// that vanished or could not be inspected. Iteration always runs to the end
// of the snapshot; consumers decide what to do with the errors.
type ProcessDirectory interface {
	Processes(ctx context.Context) iter.Seq2[ProcessRecord, error]
}

// ProcessKiller requests termination of a single process. A nil error means
// the request was accepted, not that the process has exited.
type ProcessKiller interface {
	Kill(ctx context.Context, pid int32) error
}

// SystemProcesses reads the OS process table through gopsutil
type SystemProcesses struct{}

// Processes snapshots the process table and yields one entry per PID
func (SystemProcesses) Processes(ctx context.Context) iter.Seq2[ProcessRecord, error] {
	return func(yield func(ProcessRecord, error) bool) {
		procs, err := process.ProcessesWithContext(ctx)
		if err != nil {
			yield(ProcessRecord{}, &ProcessAccessError{Op: "list", Err: err})
			return
		}

		for _, p := range procs {
			name, err := p.NameWithContext(ctx)
			if err != nil {
				if !yield(ProcessRecord{PID: p.Pid}, &ProcessAccessError{PID: p.Pid, Op: "name", Err: err}) {
					return
				}
				continue
			}
			if !yield(ProcessRecord{PID: p.Pid, Name: name}, nil) {
				return
			}
		}
	}
}

// SystemKiller terminates processes through gopsutil (SIGKILL on unix,
// TerminateProcess on windows)
type SystemKiller struct{}

// Kill requests immediate termination of pid without waiting for exit
func (SystemKiller) Kill(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return err
	}
	return p.KillWithContext(ctx)
}

// RunningAppNames returns the distinct names of running processes, sorted
// alphabetically, without empty names or the idle placeholder. Processes
// that cannot be inspected are skipped.
func RunningAppNames(ctx context.Context, dir ProcessDirectory) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)

	for rec, err := range dir.Processes(ctx) {
		if err != nil || rec.Name == "" {
			continue
		}
		if strings.ToLower(rec.Name) == idleProcessName {
			continue
		}
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		names = append(names, rec.Name)
	}

	sort.Strings(names)
	return names
}
