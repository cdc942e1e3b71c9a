package audiofile

import (
	"errors"
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

// Resample converts a to sampleRate, one channel at a time. It returns a
// unchanged when the rates already match. The output may be slightly shorter
// than the exact rate ratio because the filter tail is not flushed.
func Resample(a *Audio, sampleRate float64) (*Audio, error) {
	if sampleRate <= 0 {
		return nil, errors.New("audiofile: resample rate must be > 0")
	}
	if core.NearlyEqual(a.SampleRate, sampleRate, 1e-9) {
		return a, nil
	}

	out := &Audio{SampleRate: sampleRate, Channels: make([][]float64, len(a.Channels))}
	for ch, x := range a.Channels {
		rs, err := resampling.New(&resampling.Config{
			InputRate:  a.SampleRate,
			OutputRate: sampleRate,
			Channels:   1,
			Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
		})
		if err != nil {
			return nil, fmt.Errorf("audiofile: create resampler: %w", err)
		}
		y, err := rs.Process(x)
		if err != nil {
			return nil, fmt.Errorf("audiofile: resample channel %d: %w", ch, err)
		}
		out.Channels[ch] = y
	}

	// Channels must stay equal length for framing.
	n := out.Len()
	for _, y := range out.Channels {
		n = min(n, len(y))
	}
	for ch := range out.Channels {
		out.Channels[ch] = out.Channels[ch][:n]
	}
	return out, nil
}
