package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/petpal/internal/tui"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	backend    string
	dbPath     string
	redisURL   string
	logLevel   string
}

// NewRootCommand builds the petpal command tree. Running it without a
// subcommand starts the terminal UI.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "petpal",
		Short: "Keep track of your pets, their to-dos and appointments",
		Long: `petpal keeps a list of your pets, the to-dos that go with them and a
day-by-day agenda of appointments, and charts how many to-dos you finish
each day.

Run without arguments to open the terminal UI.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default <config dir>/petpal/config.toml)")
	f.StringVar(&opts.backend, "backend", "", "storage backend: sqlite, redis or memory")
	f.StringVar(&opts.dbPath, "db", "", "SQLite database path")
	f.StringVar(&opts.redisURL, "redis-url", "", "Redis URL, e.g. redis://localhost:6379/0")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newTrendCommand(opts),
		newExportCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	s.log.Info("starting ui", "backend", s.cfg.Backend)
	app := tui.NewApp(s.store)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
