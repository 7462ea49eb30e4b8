package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/recent/internal/config"
	"github.com/raphi011/recent/internal/log"
	"github.com/raphi011/recent/internal/output"
	"github.com/raphi011/recent/internal/recent"
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// Persistent flag names, read back by subcommands through cmd.Flags().
const (
	flagDataDir = "data-dir"
	flagLock    = "lock"
)

// newRootCmd builds the command tree. Config is taken from the context
// passed to ExecuteContext; defaults are used when none is attached.
func newRootCmd() *cobra.Command {
	var verbose, quiet bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Keep a list of recently opened files",
		Long: `recent maintains the list of the ten most recently opened files.

The list is stored as JSON in the application data directory and survives
restarts. Adding a file moves it to the front; older files fall off the end.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if config.FromContext(ctx) == nil {
				cfg := config.Default()
				ctx = config.WithConfig(ctx, &cfg)
			}

			// Logger on stderr for diagnostics, printer on stdout for data
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), verbose, quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())

			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.PersistentFlags().String(flagDataDir, "", "Data directory holding recent_files.json (flag > RECENT_DATA_DIR > config)")
	cmd.PersistentFlags().Bool(flagLock, false, "Serialize adds through a lock file")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newLastCmd())
	cmd.AddCommand(newPickCmd())

	// Utility commands
	cmd.AddCommand(newPathCmd())
	cmd.AddCommand(newSchemaCmd())

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// openStore resolves the data directory from flags, environment and
// config, and opens the store there.
func openStore(cmd *cobra.Command) (*recent.Store, error) {
	cfg := config.FromContext(cmd.Context())

	dataDir, _ := cmd.Flags().GetString(flagDataDir)
	dir, err := cfg.ResolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}

	locked, _ := cmd.Flags().GetBool(flagLock)
	locked = locked || cfg.Lock

	var opts []recent.Option
	if locked {
		opts = append(opts, recent.WithLock())
	}

	store, err := recent.New(dir, opts...)
	if err != nil {
		return nil, err
	}
	log.FromContext(cmd.Context()).Debug("opened recent list", "path", store.Path(), "lock", locked)
	return store, nil
}

// Execute loads config and runs the root command.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'recent -h' for help")
		os.Exit(1)
	}
}
