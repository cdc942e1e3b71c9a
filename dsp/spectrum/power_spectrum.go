package spectrum

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signalbank"
	"github.com/cwbudde/algo-loudness/dsp/stage"
	"github.com/cwbudde/algo-loudness/dsp/transform"
)

// PowerSpectrum is a stage that turns multi-resolution time frames into one
// banded power spectrum per ear.
//
// The input bank has one channel per window; channel i must hold at least
// WindowLengths[i] leading samples. The output bank has one sample per
// selected bin, with each channel's centre frequency set to the bin
// frequency.
//
// Initialize must complete before Process and must not run concurrently
// with it. Options changed through Configure take effect at the next
// Initialize.
type PowerSpectrum struct {
	opts options

	layout      Layout
	engines     []engineSet
	output      *signalbank.Bank
	initialized bool
}

// engineSet is one ear's worth of transform engines and scratch memory.
type engineSet struct {
	engines []transform.Engine
	re      []float64
	im      []float64
	power   []float64
}

// New creates a PowerSpectrum for the given window lengths and band edges.
func New(windowLengths []int, bandEdges []float64, opts ...Option) *PowerSpectrum {
	cfg := DefaultConfig()
	cfg.WindowLengths = windowLengths
	cfg.BandEdges = bandEdges
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig creates a PowerSpectrum from cfg. Options are applied on top
// of cfg.
func NewFromConfig(cfg Config, opts ...Option) *PowerSpectrum {
	o := options{
		cfg:    cfg.Clone(),
		name:   defaultName,
		logger: slog.Default(),
	}
	applyOptions(&o, opts)
	return &PowerSpectrum{opts: o}
}

// Configure applies options. The stage becomes uninitialized and must be
// initialized again before processing.
func (p *PowerSpectrum) Configure(opts ...Option) {
	applyOptions(&p.opts, opts)
	p.initialized = false
}

// Config returns a copy of the current configuration.
func (p *PowerSpectrum) Config() Config { return p.opts.cfg.Clone() }

// Name returns the stage name.
func (p *PowerSpectrum) Name() string { return p.opts.name }

// Initialize validates the configuration against the input shape, creates
// the transform engines, maps the bands and allocates the output bank. On
// failure the stage is left uninitialized and the error wraps
// ErrConfiguration.
func (p *PowerSpectrum) Initialize(input *signalbank.Bank) error {
	prev := p.engines
	p.initialized = false
	p.layout = Layout{}
	p.engines = nil
	p.output = nil

	if input == nil {
		return configErrorf(p.opts.name, "nil input bank")
	}

	layout, warnings, err := plan(p.opts.name, p.opts.cfg, input.Shape())
	if err != nil {
		return err
	}

	log := p.opts.logger.With("stage", p.opts.name)
	for _, w := range warnings {
		switch w.Kind {
		case WarnDCExcluded:
			log.Warn("DC found, excluding", "band", w.Band, "low_bin", w.LowBin)
		case WarnNyquistExcluded:
			log.Warn("bin is >= nyquist, excluding", "band", w.Band, "high_bin", w.HighBin)
		default:
			log.Warn("band has no bins after exclusion", "band", w.Band,
				"low_bin", w.LowBin, "high_bin", w.HighBin)
		}
	}

	factory, err := p.factory()
	if err != nil {
		return configErrorf(p.opts.name, "%v", err)
	}

	sets := 1
	if p.opts.parallel {
		sets = input.Ears()
	}
	engines := make([]engineSet, sets)
	for s := range engines {
		var scratch engineSet
		if s < len(prev) {
			scratch = prev[s]
		}
		set, err := newEngineSet(factory, layout, scratch)
		if err != nil {
			return configErrorf(p.opts.name, "%v", err)
		}
		engines[s] = set
	}

	nBins := layout.BinCount()
	for _, b := range layout.Bands {
		log.Debug("band mapped",
			"band", b.Channel,
			"transform_size", b.TransformSize,
			"norm_factor", b.NormFactor,
			"low_hz", transform.BinFrequency(b.LowBin, b.TransformSize, layout.SampleRate),
			"high_hz", transform.BinFrequency(b.HighBin-1, b.TransformSize, layout.SampleRate))
	}
	log.Debug("output spectrum", "bins", nBins, "engines", len(layout.TransformSizes))

	if nBins == 0 {
		return configErrorf(p.opts.name, "no bins selected in any band")
	}

	output, err := signalbank.New(signalbank.Shape{
		Ears:       input.Ears(),
		Channels:   nBins,
		Samples:    1,
		SampleRate: input.SampleRate(),
		FrameRate:  input.FrameRate(),
	})
	if err != nil {
		return configErrorf(p.opts.name, "%v", err)
	}
	for k, hz := range layout.CentreFreqs() {
		output.SetCentreFreq(k, hz)
	}

	p.layout = layout
	p.engines = engines
	p.output = output
	p.initialized = true
	return nil
}

func (p *PowerSpectrum) factory() (transform.Factory, error) {
	if p.opts.factory != nil {
		return p.opts.factory, nil
	}
	return transform.DefaultRegistry.Factory(p.opts.cfg.Backend)
}

// newEngineSet creates engines for layout. Scratch buffers of prev are
// reused when large enough.
func newEngineSet(factory transform.Factory, layout Layout, prev engineSet) (engineSet, error) {
	set := engineSet{engines: make([]transform.Engine, len(layout.TransformSizes))}
	for i, size := range layout.TransformSizes {
		e, err := factory(size)
		if err != nil {
			return engineSet{}, fmt.Errorf("engine %d (size %d): %w", i, size, err)
		}
		if e.Size() != size {
			return engineSet{}, fmt.Errorf("engine %d: backend returned size %d, want %d", i, e.Size(), size)
		}
		set.engines[i] = e
	}

	widest := 0
	for _, b := range layout.Bands {
		widest = max(widest, b.Bins())
	}
	set.re = core.EnsureLen(prev.re, widest)
	set.im = core.EnsureLen(prev.im, widest)
	set.power = core.EnsureLen(prev.power, widest)
	return set, nil
}

// Process computes the banded power spectrum of one frame into Output.
// The input must have the shape passed to Initialize.
func (p *PowerSpectrum) Process(input *signalbank.Bank) error {
	if !p.initialized {
		return stage.ErrNotInitialized
	}

	if !p.opts.parallel || input.Ears() == 1 {
		for ear := 0; ear < input.Ears(); ear++ {
			if err := p.processEar(input, ear, &p.engines[0]); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	for ear := 0; ear < input.Ears(); ear++ {
		set := &p.engines[ear]
		g.Go(func() error {
			return p.processEar(input, ear, set)
		})
	}
	return g.Wait()
}

func (p *PowerSpectrum) processEar(input *signalbank.Bank, ear int, set *engineSet) error {
	row := p.output.Row(ear)
	k := 0

	for ch, b := range p.layout.Bands {
		e := set.engines[p.layout.engineIndex(ch)]
		if err := e.Process(input.Signal(ear, ch)[:b.WindowLength]); err != nil {
			return fmt.Errorf("%s: ear %d channel %d: %w", p.opts.name, ear, ch, err)
		}

		n := b.Bins()
		if n == 0 {
			continue
		}

		re, im, power := set.re[:n], set.im[:n], set.power[:n]
		for i := range n {
			re[i] = e.Real(b.LowBin + i)
			im[i] = e.Imag(b.LowBin + i)
		}
		vecmath.Power(power, re, im)
		vecmath.ScaleBlock(row[k:k+n], power, b.NormFactor)
		k += n
	}
	return nil
}

// Reset clears the output spectrum. No other state is carried between
// frames.
func (p *PowerSpectrum) Reset() {
	if p.output != nil {
		p.output.Zero()
	}
}

// Output returns the spectrum bank, or nil before a successful Initialize.
func (p *PowerSpectrum) Output() *signalbank.Bank { return p.output }

// Initialized reports whether the last Initialize succeeded.
func (p *PowerSpectrum) Initialized() bool { return p.initialized }

// Layout returns a copy of the derived band layout.
func (p *PowerSpectrum) Layout() Layout {
	l := p.layout
	l.Bands = append([]Band(nil), p.layout.Bands...)
	l.TransformSizes = append([]int(nil), p.layout.TransformSizes...)
	return l
}

// Bands returns a copy of the derived per-band bin ranges.
func (p *PowerSpectrum) Bands() []Band {
	return append([]Band(nil), p.layout.Bands...)
}

// TransformSizes returns the size of every engine.
func (p *PowerSpectrum) TransformSizes() []int {
	return append([]int(nil), p.layout.TransformSizes...)
}

// EngineCount returns the number of distinct transform engines per ear.
func (p *PowerSpectrum) EngineCount() int {
	if len(p.engines) == 0 {
		return 0
	}
	return len(p.engines[0].engines)
}

// BinCount returns the output spectrum length, or 0 before Initialize.
func (p *PowerSpectrum) BinCount() int {
	if !p.initialized {
		return 0
	}
	return p.layout.BinCount()
}

var _ stage.Stage = (*PowerSpectrum)(nil)
