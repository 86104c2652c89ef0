package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/binomen/internal/config"
	"github.com/abhisek/binomen/internal/logging"
	"github.com/abhisek/binomen/internal/settings"
	"github.com/abhisek/binomen/internal/store"
)

var (
	cfg      = &config.Config{}
	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "binomen",
	Short: "Quiz yourself on the scientific names of crops",
	Long:  "Binomen is a terminal quiz for learning the binomial names of crop plants.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BINOMEN_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and installs the file logger. A log file that
// cannot be opened is not fatal; logging is then discarded.
func setup() error {
	cfg = config.Load()

	path := cfg.LogPath
	if path == "" {
		p, err := logging.DefaultLogPath()
		if err == nil {
			path = p
		}
	}
	l, c, err := logging.Setup(path, cfg.LogLevel)
	if err != nil {
		l, c, _ = logging.Setup("", cfg.LogLevel)
	}
	logger, closeLog = l, c
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BINOMEN_DB (env or .env), then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadSettings builds a provider over st and loads the stored values.
func loadSettings(ctx context.Context, st *store.Store, l *slog.Logger) (*settings.Provider, *settings.Store) {
	repo := settings.NewStore(st.KV(), l)
	p := settings.NewProvider(repo, l)
	p.Load(ctx)
	return p, repo
}
