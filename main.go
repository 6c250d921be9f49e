package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags
var version = "dev"

// cliConfig holds the paths shared by both modes
type cliConfig struct {
	ConfigPath string
	LogPath    string
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func main() {
	cfg := &cliConfig{
		ConfigPath: envOr("QUICKKILL_CONFIG", DefaultConfigPath),
		LogPath:    envOr("QUICKKILL_LOG_FILE", DefaultLogPath),
	}

	code := 0
	runOnMainThread(func() {
		if err := newRootCmd(cfg).Execute(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running quickkill: %v\n", err)
			code = 1
		}
	})
	os.Exit(code)
}

// newRootCmd builds the command tree: the bare command runs the hotkey
// listener, "select" opens the selector.
func newRootCmd(cfg *cliConfig) *cobra.Command {
	root := &cobra.Command{
		Use:   "quickkill",
		Short: "Kill a saved set of applications with one hotkey",
		Long: `quickkill terminates every running process whose name is in the saved
selection. Run it bare to listen for Ctrl+Shift+Q in any window (Esc
stops), or use "select" to pick the apps from a checklist of running
processes.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListener(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Selection file (.json, .yaml or .toml; env QUICKKILL_CONFIG)")
	root.PersistentFlags().StringVar(&cfg.LogPath, "log-file", cfg.LogPath, "Listener log file (env QUICKKILL_LOG_FILE)")

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Choose target apps from the running processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelector(cmd.Context(), cfg)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quickkill", version)
		},
	}

	root.AddCommand(selectCmd, versionCmd)
	return root
}

// runListener is headless mode. Failures go to the log file only.
func runListener(ctx context.Context, cfg *cliConfig) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, closer, err := openLogFile(cfg.LogPath)
	defer closer.Close()
	if err != nil {
		log.Error().Msgf("Logging to stderr: %v", err)
	}

	store := NewStore(cfg.ConfigPath, log)
	exec := NewKillExecutor(SystemProcesses{}, SystemKiller{}, log)
	term := NewTerminalHotkeys(os.Stdin, os.Stdout)
	listener := NewListener(store, exec, listenerHotkeys(term, log), log)

	fmt.Printf("QuickKill running. Press %s to close apps, %s to stop.\n",
		hotkeys.Kill.Help().Key, hotkeys.Quit.Help().Key)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	hkDone := make(chan error, 1)
	go func() {
		hkDone <- term.Run(runCtx)
		cancel()
	}()

	err = listener.Run(runCtx)
	cancel()
	hkErr := <-hkDone

	if hkErr != nil {
		return fmt.Errorf("read hotkeys: %w", hkErr)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// listenerHotkeys prefers system-wide hotkeys and falls back to keys read
// from term, per combo, when the desktop refuses one or has none at all.
func listenerHotkeys(term *TerminalHotkeys, log zerolog.Logger) Hotkeys {
	global, err := NewGlobalHotkeys()
	if err != nil {
		log.Warn().Msgf("Reading hotkeys from the terminal: %v", err)
		return term
	}
	return NewFallbackHotkeys(global, term, log, terminalOnlyKeys...)
}

// runSelector is interactive mode. The process list is captured once here.
func runSelector(ctx context.Context, cfg *cliConfig) error {
	store := NewStore(cfg.ConfigPath, zerolog.Nop())
	exec := NewKillExecutor(SystemProcesses{}, SystemKiller{}, zerolog.Nop())
	names := RunningAppNames(ctx, SystemProcesses{})

	p := tea.NewProgram(NewModel(names, store.Load(), store, exec), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run selector: %w", err)
	}
	return nil
}
