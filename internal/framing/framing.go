// Package framing slices multichannel PCM into multi-resolution frames.
//
// Every frame is as long as the largest window. For each window length w,
// one bank channel receives the w samples centred in the frame, placed at
// the start of the channel. No tapering is applied.
package framing

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signalbank"
)

var errNoWindows = errors.New("framing: at least one window length is required")

// Framer produces one bank per hop from per-ear PCM.
type Framer struct {
	windows []int
	offsets []int
	hop     int
	bank    *signalbank.Bank
}

// New creates a framer for the given non-ascending window lengths.
func New(windows []int, ears int, cfg core.ProcessorConfig) (*Framer, error) {
	if len(windows) == 0 {
		return nil, errNoWindows
	}
	if core.AnyAscending(windows) {
		return nil, fmt.Errorf("framing: window lengths must be in descending order: %v", windows)
	}
	if windows[len(windows)-1] <= 0 {
		return nil, fmt.Errorf("framing: window lengths must be > 0: %v", windows)
	}

	frameLen := windows[0]
	bank, err := signalbank.New(signalbank.Shape{
		Ears:       ears,
		Channels:   len(windows),
		Samples:    frameLen,
		SampleRate: cfg.SampleRate,
		FrameRate:  cfg.FrameRate,
	})
	if err != nil {
		return nil, fmt.Errorf("framing: %w", err)
	}

	// The hop is rounded to whole samples; report the rate actually produced.
	hop := cfg.HopSize()
	bank.SetFrameRate(cfg.SampleRate / float64(hop))

	offsets := make([]int, len(windows))
	for i, w := range windows {
		offsets[i] = (frameLen - w) / 2
	}

	return &Framer{
		windows: append([]int(nil), windows...),
		offsets: offsets,
		hop:     hop,
		bank:    bank,
	}, nil
}

// Bank returns the frame bank, which is overwritten by every frame.
func (f *Framer) Bank() *signalbank.Bank { return f.bank }

// Hop returns the number of samples between frames.
func (f *Framer) Hop() int { return f.hop }

// FrameCount returns the number of complete frames in n samples.
func (f *Framer) FrameCount(n int) int {
	frameLen := f.bank.Samples()
	if n < frameLen {
		return 0
	}
	return (n-frameLen)/f.hop + 1
}

// Each fills the bank for every complete frame of pcm and calls fn with the
// frame index. pcm holds one slice per ear, all of equal length.
func (f *Framer) Each(pcm [][]float64, fn func(index int, frame *signalbank.Bank) error) error {
	if len(pcm) != f.bank.Ears() {
		return fmt.Errorf("framing: got %d ears, want %d", len(pcm), f.bank.Ears())
	}
	n := len(pcm[0])
	for ear, x := range pcm {
		if len(x) != n {
			return fmt.Errorf("framing: ear %d has %d samples, want %d", ear, len(x), n)
		}
	}

	count := f.FrameCount(n)
	for i := 0; i < count; i++ {
		f.fill(pcm, i*f.hop)
		if err := fn(i, f.bank); err != nil {
			return err
		}
	}
	return nil
}

func (f *Framer) fill(pcm [][]float64, start int) {
	for ear, x := range pcm {
		for ch, w := range f.windows {
			sig := f.bank.Signal(ear, ch)
			from := start + f.offsets[ch]
			copy(sig, x[from:from+w])
			for i := w; i < len(sig); i++ {
				sig[i] = 0
			}
		}
	}
}
