package commands

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-loudness/internal/audiofile"
)

func newToneCmd() *cobra.Command {
	var (
		out        string
		freq       float64
		amplitude  float64
		sampleRate float64
		duration   float64
		channels   int
		bitDepth   int
	)

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Write a sine test tone as WAV",
		Long: `Writes a sine of the given frequency and peak amplitude (full scale = 1).
Useful as input for analyze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			if sampleRate <= 0 || duration <= 0 || channels <= 0 {
				return fmt.Errorf("rate, duration and channels must be > 0")
			}
			if freq < 0 || freq > sampleRate/2 {
				return fmt.Errorf("frequency %g Hz outside [0, %g]", freq, sampleRate/2)
			}

			n := int(math.Round(duration * sampleRate))
			signal := make([]float64, n)
			w := 2 * math.Pi * freq / sampleRate
			for i := range signal {
				signal[i] = amplitude * math.Sin(w*float64(i))
			}

			a := &audiofile.Audio{SampleRate: sampleRate, Channels: make([][]float64, channels)}
			for ch := range a.Channels {
				a.Channels[ch] = signal
			}
			if err := audiofile.Write(out, a, bitDepth); err != nil {
				return err
			}
			slog.Info("tone written", "path", out, "freq", freq, "samples", n, "channels", channels)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output WAV file")
	cmd.Flags().Float64Var(&freq, "freq", 1000, "frequency in Hz")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 0.5, "peak amplitude")
	cmd.Flags().Float64Var(&sampleRate, "rate", 32000, "sample rate in Hz")
	cmd.Flags().Float64Var(&duration, "duration", 1, "duration in seconds")
	cmd.Flags().IntVar(&channels, "channels", 1, "number of channels")
	cmd.Flags().IntVar(&bitDepth, "bits", 16, "bit depth")
	return cmd
}
