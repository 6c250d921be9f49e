package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Killer runs a kill pass. *KillExecutor implements it.
type Killer interface {
	Kill(ctx context.Context, targets SelectionSet) KillResult
}

// SelectionLoader supplies the persisted selection. *Store implements it.
type SelectionLoader interface {
	Load() SelectionSet
}

// Listener is the headless front end. It loads the selection once, binds the
// kill hotkey to a pass over that fixed set, and blocks until a quit key.
type Listener struct {
	loader  SelectionLoader
	killer  Killer
	hotkeys Hotkeys
	keys    hotkeyMap
	log     zerolog.Logger

	targets    SelectionSet
	registered []string
	quit       chan struct{}
	quitOnce   sync.Once

	mu      sync.Mutex // guards stopped against passes.Add
	stopped bool
	passes  sync.WaitGroup
}

// NewListener creates a listener using the default hotkey bindings
func NewListener(loader SelectionLoader, killer Killer, hk Hotkeys, log zerolog.Logger) *Listener {
	return &Listener{
		loader:  loader,
		killer:  killer,
		hotkeys: hk,
		keys:    hotkeys,
		log:     log,
		quit:    make(chan struct{}),
	}
}

// Targets returns the selection loaded by Start
func (l *Listener) Targets() SelectionSet { return l.targets }

// Start loads the selection and registers the hotkeys. If any registration
// fails the ones already made are rolled back.
func (l *Listener) Start(ctx context.Context) error {
	l.targets = l.loader.Load()
	passCtx := context.WithoutCancel(ctx)

	for _, combo := range l.keys.Kill.Keys() {
		if err := l.register(combo, func() { l.runPass(passCtx) }); err != nil {
			return err
		}
	}
	for _, combo := range l.keys.Quit.Keys() {
		if err := l.register(combo, l.requestQuit); err != nil {
			return err
		}
	}
	return nil
}

func (l *Listener) register(combo string, fn func()) error {
	if err := l.hotkeys.Register(combo, fn); err != nil {
		_ = l.unregisterAll()
		return fmt.Errorf("register %s: %w", combo, err)
	}
	l.registered = append(l.registered, combo)
	return nil
}

// runPass is the kill handler. Passes may overlap; each only reads targets.
func (l *Listener) runPass(ctx context.Context) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.passes.Add(1)
	l.mu.Unlock()
	defer l.passes.Done()

	res := l.killer.Kill(ctx, l.targets)
	l.log.Debug().Msgf("Kill pass finished: %d killed, %d failed", len(res.Killed), len(res.Failed))
}

func (l *Listener) requestQuit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

// Wait blocks until a quit key is pressed (nil) or ctx ends (ctx.Err()).
func (l *Listener) Wait(ctx context.Context) error {
	select {
	case <-l.quit:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop unregisters every hotkey and waits for running passes to finish.
func (l *Listener) Stop() error {
	err := l.unregisterAll()

	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()

	l.passes.Wait()
	return err
}

func (l *Listener) unregisterAll() error {
	var errs []error
	for _, combo := range l.registered {
		if err := l.hotkeys.Unregister(combo); err != nil {
			errs = append(errs, err)
		}
	}
	l.registered = nil
	return errors.Join(errs...)
}

// Run starts the listener, waits for quit, then stops it
func (l *Listener) Run(ctx context.Context) error {
	if err := l.Start(ctx); err != nil {
		return err
	}
	waitErr := l.Wait(ctx)
	stopErr := l.Stop()
	if waitErr != nil {
		return waitErr
	}
	return stopErr
}
