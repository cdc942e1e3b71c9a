// Package commands implements the powerspec command tree.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the powerspec command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "powerspec",
		Short: "Multi-resolution banded power spectra",
		Long: `powerspec analyses audio with one transform resolution per frequency band.

Each band is analysed with its own window length; the selected bins of all
bands are concatenated into one power spectrum per channel (ear), referenced
to 20 µPa by default.

Configuration is read from a YAML file:

  sample_rate: 32000
  frame_rate: 1000
  preset: ""            # or gm2002
  spectrum:
    window_lengths: [1024, 256]
    band_edges: [20, 4000, 16000]
    uniform_sampling: false
    normalisation: average_power   # none | energy | average_power
    reference_value: 2e-5
    backend: algofft               # see 'powerspec backends'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newAnalyzeCmd(),
		newBandsCmd(),
		newBackendsCmd(),
		newToneCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
