package core

// ProcessorConfig defines the stream settings shared by analysis stages.
type ProcessorConfig struct {
	// SampleRate of the time-domain input in Hz.
	SampleRate float64 `yaml:"sample_rate"`
	// FrameRate is the number of analysis frames per second.
	FrameRate float64 `yaml:"frame_rate"`
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the settings used by the loudness models:
// 32 kHz input analysed at a 1 ms hop.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 32000,
		FrameRate:  1000,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrameRate sets the analysis frame rate.
func WithFrameRate(frameRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if frameRate > 0 {
			cfg.FrameRate = frameRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// HopSize returns the number of samples between frame starts, at least 1.
func (c ProcessorConfig) HopSize() int {
	if c.FrameRate <= 0 || c.SampleRate <= 0 {
		return 1
	}
	hop := int(c.SampleRate/c.FrameRate + 0.5)
	if hop < 1 {
		return 1
	}
	return hop
}
