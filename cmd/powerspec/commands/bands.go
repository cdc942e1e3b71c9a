package commands

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signalbank"
	"github.com/cwbudde/algo-loudness/dsp/spectrum"
	"github.com/cwbudde/algo-loudness/dsp/transform"
)

func newBandsCmd() *cobra.Command {
	var (
		flags      spectrumFlags
		sampleRate float64
		frame      int
	)

	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Print the band and bin layout of a configuration",
		Long: `Derives transform sizes, bin ranges and normalisation factors without
processing audio. Bins at DC or Nyquist are reported and dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := flags.load(cmd)
			if err != nil {
				return err
			}
			fc.ProcessorConfig = core.ApplyProcessorOptions(
				core.WithSampleRate(fc.SampleRate),
				core.WithSampleRate(sampleRate),
				core.WithFrameRate(fc.FrameRate),
			)

			cfg, err := fc.spectrumConfig(fc.SampleRate)
			if err != nil {
				return err
			}
			if frame <= 0 {
				frame = cfg.WindowLengths[0]
			}

			layout, warnings, err := spectrum.Plan(cfg, signalbank.Shape{
				Ears:       1,
				Channels:   len(cfg.WindowLengths),
				Samples:    frame,
				SampleRate: fc.SampleRate,
				FrameRate:  fc.FrameRate,
			})
			if err != nil {
				return err
			}
			for _, w := range warnings {
				slog.Warn("band adjusted", "band", w.Band, "kind", w.Kind.String(),
					"low_bin", w.LowBin, "high_bin", w.HighBin)
			}

			return printLayout(cmd, layout)
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&sampleRate, "rate", 0, "sample rate in Hz (overrides config)")
	cmd.Flags().IntVar(&frame, "frame", 0, "input frame length in samples (default: largest window)")
	return cmd
}

func printLayout(cmd *cobra.Command, layout spectrum.Layout) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BAND\tEDGES (Hz)\tWINDOW\tFFT\tBINS\tINCLUDED (Hz)\tNORM")
	for _, b := range layout.Bands {
		included := "-"
		if b.Bins() > 0 {
			included = fmt.Sprintf("%.1f-%.1f",
				transform.BinFrequency(b.LowBin, b.TransformSize, layout.SampleRate),
				transform.BinFrequency(b.HighBin-1, b.TransformSize, layout.SampleRate))
		}
		fmt.Fprintf(w, "%d\t%g-%g\t%d\t%d\t[%d,%d) %d\t%s\t%.4g\n",
			b.Channel, b.LowHz, b.HighHz, b.WindowLength, b.TransformSize,
			b.LowBin, b.HighBin, b.Bins(), included, b.NormFactor)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "engines: %v\ntotal bins: %d\n", layout.TransformSizes, layout.BinCount())
	return nil
}
