package spectrum

import "github.com/cwbudde/algo-loudness/dsp/core"

// validate checks the channel, window and band relationships of cfg against
// an input with the given channel count and frame length.
func validate(name string, cfg Config, channels, frameSamples int) error {
	nWindows := len(cfg.WindowLengths)
	if channels != nWindows {
		return configErrorf(name, "number of channels (%d) does not match number of windows (%d)",
			channels, nWindows)
	}

	if len(cfg.BandEdges) != nWindows+1 {
		return configErrorf(name, "number of band edges (%d) must equal number of channels + 1 (%d)",
			len(cfg.BandEdges), nWindows+1)
	}

	if core.AnyAscending(cfg.WindowLengths) {
		return configErrorf(name, "window lengths must be in descending order: %v", cfg.WindowLengths)
	}

	for i, w := range cfg.WindowLengths {
		if w <= 0 {
			return configErrorf(name, "window length %d must be > 0: %d", i, w)
		}
	}

	if nWindows > 0 && frameSamples < cfg.WindowLengths[0] {
		return configErrorf(name, "input frame of %d samples is shorter than the largest window (%d)",
			frameSamples, cfg.WindowLengths[0])
	}

	if !cfg.Normalisation.Valid() {
		return configErrorf(name, "unknown normalisation %v", cfg.Normalisation)
	}

	if !(cfg.ReferenceValue > 0) {
		return configErrorf(name, "reference value must be > 0: %v", cfg.ReferenceValue)
	}

	return nil
}
