package spectrum

import (
	"log/slog"

	"github.com/cwbudde/algo-loudness/dsp/transform"
)

const defaultName = "PowerSpectrum"

// Config holds the user-facing settings of a PowerSpectrum.
type Config struct {
	// WindowLengths has one entry per input channel, in non-ascending order.
	WindowLengths []int `yaml:"window_lengths"`
	// BandEdges in Hz has len(WindowLengths)+1 entries; band i is
	// [BandEdges[i], BandEdges[i+1]).
	BandEdges []float64 `yaml:"band_edges"`
	// UniformSampling uses one transform, sized for the input frame, for all
	// channels.
	UniformSampling bool `yaml:"uniform_sampling"`
	// Normalisation selects the power scaling convention.
	Normalisation Normalisation `yaml:"normalisation"`
	// ReferenceValue is the amplitude mapped to 0 dB.
	ReferenceValue float64 `yaml:"reference_value"`
	// Backend names the transform backend in transform.DefaultRegistry.
	Backend string `yaml:"backend"`
}

// DefaultConfig returns a Config without windows or bands, using
// average-power normalisation referenced to 20 µPa.
func DefaultConfig() Config {
	return Config{
		Normalisation:  NormalisationAveragePower,
		ReferenceValue: DefaultReferenceValue,
		Backend:        transform.DefaultBackend,
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.WindowLengths = append([]int(nil), c.WindowLengths...)
	out.BandEdges = append([]float64(nil), c.BandEdges...)
	return out
}

type options struct {
	cfg      Config
	name     string
	logger   *slog.Logger
	factory  transform.Factory
	parallel bool
}

// Option configures a PowerSpectrum.
type Option func(*options)

// WithWindowLengths sets the per-channel window lengths. The slice is
// copied.
func WithWindowLengths(windowLengths []int) Option {
	return func(o *options) {
		o.cfg.WindowLengths = append([]int(nil), windowLengths...)
	}
}

// WithBandEdges sets the band edges in Hz. The slice is copied.
func WithBandEdges(bandEdges []float64) Option {
	return func(o *options) {
		o.cfg.BandEdges = append([]float64(nil), bandEdges...)
	}
}

// WithUniformSampling selects one shared transform for all channels.
func WithUniformSampling(uniform bool) Option {
	return func(o *options) {
		o.cfg.UniformSampling = uniform
	}
}

// WithNormalisation sets the power scaling convention.
func WithNormalisation(n Normalisation) Option {
	return func(o *options) {
		o.cfg.Normalisation = n
	}
}

// WithReferenceValue sets the reference amplitude. Non-positive values are
// ignored.
func WithReferenceValue(ref float64) Option {
	return func(o *options) {
		if ref > 0 {
			o.cfg.ReferenceValue = ref
		}
	}
}

// WithBackend selects a transform backend by name from
// transform.DefaultRegistry.
func WithBackend(name string) Option {
	return func(o *options) {
		o.cfg.Backend = name
		o.factory = nil
	}
}

// WithTransformFactory uses factory for all engines, overriding the backend
// name.
func WithTransformFactory(factory transform.Factory) Option {
	return func(o *options) {
		o.factory = factory
	}
}

// WithLogger sets the logger for warnings and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName sets the stage name used in logs and errors.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithParallelEars processes ears concurrently. Each ear then owns its own
// set of transform engines.
func WithParallelEars(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

func applyOptions(o *options, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}
