package app

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agentstation/storecat/cmd/storecat/cmd/columns"
	"github.com/agentstation/storecat/cmd/storecat/cmd/inspect"
	"github.com/agentstation/storecat/cmd/storecat/cmd/reconcile"
	"github.com/agentstation/storecat/cmd/storecat/cmd/version"
	cmdconstants "github.com/agentstation/storecat/internal/cmd/constants"
	"github.com/agentstation/storecat/internal/cmd/globals"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/logging"
)

// Execute runs the storecat CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	var pipeline *globals.PipelineFlags

	rootCmd := &cobra.Command{
		Use:     "storecat",
		Short:   "Game store catalog reconciler",
		Version: a.version,
		Long: `storecat reconciles product documents captured from a game storefront,
a deals aggregator and a price tracker into one normalized table.

Each document is resolved field by field from whichever source answers
first, checked against the eligibility rules, and collapsed with its
duplicates. The result is written as CSV, JSON Lines or SQLite.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupCommand(cmd, pipeline)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: cmdconstants.GroupCore, Title: "Core Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: cmdconstants.GroupInfo, Title: "Information Commands:"})

	globals.AddFlags(rootCmd)
	pipeline = globals.AddPipelineFlags(rootCmd)

	rootCmd.SetVersionTemplate("storecat {{.Version}}\n")

	a.registerCommands(rootCmd)
	return rootCmd
}

// setupCommand is called before any command runs. It reloads an
// explicitly named config file, applies flag overrides, rebuilds the
// logger and tags the command context with a run identifier.
func (a *App) setupCommand(cmd *cobra.Command, pipeline *globals.PipelineFlags) error {
	flags := globals.Parse(cmd)
	if flags.Config != "" {
		config, err := LoadConfig(flags.Config)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(flags.Verbose, flags.Quiet, flags.NoColor, flags.Output, flags.LogLevel)
	err := pipeline.Apply(cmd, globals.Targets{
		ReleaseCutoff:    &a.config.ReleaseCutoff,
		SnapshotCutoff:   &a.config.SnapshotCutoff,
		MinPriceNewGen:   &a.config.MinPriceNewGen,
		MinPricePrevGen:  &a.config.MinPricePrevGen,
		MinPriceAddOn:    &a.config.MinPriceAddOn,
		PremiumPrice:     &a.config.PremiumPrice,
		BasePriceCeiling: &a.config.BasePriceCeiling,
		Workers:          &a.config.Workers,
		HeuristicsFile:   &a.config.HeuristicsFile,
	})
	if err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, a.logger)
	ctx = logging.WithRun(ctx, uuid.NewString())
	cmd.SetContext(ctx)
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(reconcile.NewCommand(a))
	rootCmd.AddCommand(inspect.NewCommand(a))
	rootCmd.AddCommand(columns.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}

// ExitCode returns the process exit status for err: 0 for nil, 2 for
// invalid flags or options, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errors.ErrInvalidInput):
		return 2
	default:
		return 1
	}
}

// ExitOnError is a helper that prints an error and exits with its ExitCode.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(ExitCode(err))
	}
}
