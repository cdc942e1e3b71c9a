package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/spectrum"
)

const presetGM2002 = "gm2002"

// fileConfig is the YAML configuration file layout.
type fileConfig struct {
	core.ProcessorConfig `yaml:",inline"`
	Preset               string          `yaml:"preset"`
	Spectrum             spectrum.Config `yaml:"spectrum"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Spectrum:        spectrum.DefaultConfig(),
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return fc, nil
}

// spectrumConfig resolves the preset, if any, at sampleRate.
func (fc fileConfig) spectrumConfig(sampleRate float64) (spectrum.Config, error) {
	cfg := fc.Spectrum.Clone()

	switch strings.ToLower(fc.Preset) {
	case "":
	case presetGM2002:
		preset := spectrum.GM2002Config(sampleRate)
		if len(cfg.WindowLengths) == 0 {
			cfg.WindowLengths = preset.WindowLengths
		}
		if len(cfg.BandEdges) == 0 {
			cfg.BandEdges = preset.BandEdges
		}
	default:
		return cfg, fmt.Errorf("unknown preset %q", fc.Preset)
	}

	if len(cfg.WindowLengths) == 0 {
		return cfg, fmt.Errorf("no window lengths configured, use --config or --preset")
	}
	return cfg, nil
}

// spectrumFlags are the configuration overrides shared by analyze and bands.
type spectrumFlags struct {
	config        string
	preset        string
	backend       string
	normalisation string
	uniform       bool
}

func (f *spectrumFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.preset, "preset", "", "configuration preset (gm2002)")
	cmd.Flags().StringVar(&f.backend, "backend", "", "transform backend")
	cmd.Flags().StringVar(&f.normalisation, "normalisation", "", "none | energy | average_power")
	cmd.Flags().BoolVar(&f.uniform, "uniform", false, "use one transform size for all bands")
}

// load reads the configuration file and applies flag overrides.
func (f *spectrumFlags) load(cmd *cobra.Command) (fileConfig, error) {
	fc, err := loadConfig(f.config)
	if err != nil {
		return fc, err
	}

	if f.preset != "" {
		fc.Preset = f.preset
	}
	if f.backend != "" {
		fc.Spectrum.Backend = f.backend
	}
	if f.normalisation != "" {
		n, err := spectrum.ParseNormalisation(f.normalisation)
		if err != nil {
			return fc, err
		}
		fc.Spectrum.Normalisation = n
	}
	if cmd.Flags().Changed("uniform") {
		fc.Spectrum.UniformSampling = f.uniform
	}
	return fc, nil
}
