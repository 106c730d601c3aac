// Package globals provides the persistent flags shared by all storecat
// commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Config   string
	Output   string
	LogLevel string
	Quiet    bool
	Verbose  bool
	NoColor  bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVar(&flags.Config, "config", "",
		"config file (default is $HOME/.storecat.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Output, "format", "o", "",
		"Output format: table, json, yaml, wide")
	// --output and --fmt are aliases for --format
	cmd.PersistentFlags().StringVar(&flags.Output, "output", "", "")
	cmd.PersistentFlags().StringVar(&flags.Output, "fmt", "", "")
	_ = cmd.PersistentFlags().MarkHidden("output")
	_ = cmd.PersistentFlags().MarkHidden("fmt")

	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output (shortcut for --log-level=warn)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output (shortcut for --log-level=debug)")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error (overrides -v/-q)")

	return flags
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}
	pf := root.PersistentFlags()

	config, _ := pf.GetString("config")
	output, _ := pf.GetString("format")
	logLevel, _ := pf.GetString("log-level")
	quiet, _ := pf.GetBool("quiet")
	verbose, _ := pf.GetBool("verbose")
	noColor, _ := pf.GetBool("no-color")

	return &Flags{
		Config:   config,
		Output:   output,
		LogLevel: logLevel,
		Quiet:    quiet,
		Verbose:  verbose,
		NoColor:  noColor,
	}
}
