// Package cli provides the Cobra command structure for linepos.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/linepos/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions carries the persistent flag values shared by subcommands.
type rootOptions struct {
	debug      bool
	color      string
	format     string
	configPath string
	noContext  bool
}

// NewRootCommand creates the root linepos command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "linepos",
		Short: "Resolve byte offsets in text files to lines and columns",
		Long: `linepos turns absolute byte offsets into human-meaningful positions.

Given an offset produced by some other tool (a parser, a diff engine, a
linter), linepos reports which line it falls on and the byte column within
that line. Ranges that straddle line breaks are broken into one span per
line. Lines are delimited by single '\n' bytes; columns count bytes.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "",
		"output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&opts.noContext, "no-context", false,
		"suppress source line context in text output")

	// Add subcommands.
	rootCmd.AddCommand(newLocateCommand(opts))
	rootCmd.AddCommand(newSpanCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
