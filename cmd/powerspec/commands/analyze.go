package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signalbank"
	"github.com/cwbudde/algo-loudness/dsp/spectrum"
	"github.com/cwbudde/algo-loudness/dsp/stage"
	"github.com/cwbudde/algo-loudness/internal/audiofile"
	"github.com/cwbudde/algo-loudness/internal/framing"
	"github.com/cwbudde/algo-loudness/stats/frequency"
)

const (
	formatSummary = "summary"
	formatCSV     = "csv"

	dbFloor = -100.0
)

func newAnalyzeCmd() *cobra.Command {
	var (
		flags     spectrumFlags
		input     string
		frameRate float64
		format    string
		linear    bool
		parallel  bool
		resample  float64
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Power spectrum per frame of a WAV file",
		Long: `Frames the input at the configured frame rate and computes one banded
power spectrum per frame and WAV channel.

Formats:
  summary  one line per frame and channel: level, peak, centroid, flatness
  csv      full spectra, one row per frame and channel, one column per bin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			if format != formatSummary && format != formatCSV {
				return fmt.Errorf("unknown format %q", format)
			}
			fc, err := flags.load(cmd)
			if err != nil {
				return err
			}

			audio, err := audiofile.Read(input)
			if err != nil {
				return err
			}
			if resample > 0 {
				if audio, err = audiofile.Resample(audio, resample); err != nil {
					return err
				}
			}
			fc.ProcessorConfig = core.ApplyProcessorOptions(
				core.WithSampleRate(audio.SampleRate),
				core.WithFrameRate(fc.FrameRate),
				core.WithFrameRate(frameRate),
			)

			cfg, err := fc.spectrumConfig(fc.SampleRate)
			if err != nil {
				return err
			}

			slog.Info("analyzing", "input", input, "sample_rate", audio.SampleRate,
				"channels", len(audio.Channels), "samples", audio.Len(), "frame_rate", fc.FrameRate)

			job := analysis{
				out:      cmd.OutOrStdout(),
				format:   format,
				linear:   linear,
				parallel: parallel,
			}
			return job.run(fc.ProcessorConfig, cfg, audio.Channels)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "input WAV file")
	cmd.Flags().Float64Var(&frameRate, "frame-rate", 0, "frames per second (overrides config)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSummary, "output format: summary | csv")
	cmd.Flags().BoolVar(&linear, "linear", false, "write linear power instead of dB (csv)")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "process channels concurrently")
	cmd.Flags().Float64Var(&resample, "resample", 0, "resample the input to this rate in Hz first")
	return cmd
}

// analysis runs the framer and the spectrum stage over decoded PCM.
type analysis struct {
	out      io.Writer
	format   string
	linear   bool
	parallel bool
}

func (a analysis) run(pcfg core.ProcessorConfig, cfg spectrum.Config, pcm [][]float64) error {
	framer, err := framing.New(cfg.WindowLengths, len(pcm), pcfg)
	if err != nil {
		return err
	}

	ps := spectrum.NewFromConfig(cfg,
		spectrum.WithLogger(slog.Default()),
		spectrum.WithParallelEars(a.parallel),
	)
	chain := stage.NewChain(ps)
	if err := chain.Initialize(framer.Bank()); err != nil {
		return err
	}

	out := chain.Output()
	freqs := out.CentreFreqs()
	frameDur := float64(framer.Hop()) / pcfg.SampleRate

	var emit func(index int, spec *signalbank.Bank) error
	var flush func() error

	switch a.format {
	case formatCSV:
		w := csv.NewWriter(a.out)
		header := []string{"time_s", "channel"}
		for _, f := range freqs {
			header = append(header, strconv.FormatFloat(f, 'f', 2, 64))
		}
		if err := w.Write(header); err != nil {
			return err
		}
		record := make([]string, len(header))
		emit = func(index int, spec *signalbank.Bank) error {
			for ear := 0; ear < spec.Ears(); ear++ {
				record[0] = strconv.FormatFloat(float64(index)*frameDur, 'f', 4, 64)
				record[1] = strconv.Itoa(ear)
				for k, p := range spec.Row(ear) {
					if !a.linear {
						p = core.LinearPowerToDBFloor(p, dbFloor)
					}
					record[2+k] = strconv.FormatFloat(p, 'g', 6, 64)
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
			return nil
		}
		flush = func() error {
			w.Flush()
			return w.Error()
		}
	default:
		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "TIME (s)\tCH\tLEVEL (dB)\tPEAK (Hz)\tPEAK (dB)\tCENTROID (Hz)\tFLATNESS\t")
		emit = func(index int, spec *signalbank.Bank) error {
			for ear := 0; ear < spec.Ears(); ear++ {
				st := frequency.Calculate(freqs, spec.Row(ear))
				fmt.Fprintf(w, "%.4f\t%d\t%.2f\t%.1f\t%.2f\t%.1f\t%.3f\t\n",
					float64(index)*frameDur, ear,
					core.LinearPowerToDBFloor(st.TotalPower, dbFloor),
					st.PeakFreq,
					core.LinearPowerToDBFloor(st.PeakPower, dbFloor),
					st.Centroid, st.Flatness)
			}
			return nil
		}
		flush = w.Flush
	}

	frames := 0
	err = framer.Each(pcm, func(index int, frame *signalbank.Bank) error {
		if err := chain.Process(frame); err != nil {
			return fmt.Errorf("frame %d: %w", index, err)
		}
		frames++
		return emit(index, chain.Output())
	})
	if err != nil {
		return err
	}
	slog.Debug("analysis done", "frames", frames, "bins", len(freqs))
	return flush()
}
