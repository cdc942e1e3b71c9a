package spectrum

import "math"

// GM2002 window durations in milliseconds and band edges in Hz, after
// Glasberg & Moore (2002), "A model of loudness applicable to time-varying
// sounds".
var (
	gm2002WindowsMs = []float64{64, 32, 16, 8, 4, 2}
	gm2002EdgesHz   = []float64{20, 80, 500, 1250, 2540, 4050, 15001}
)

// GM2002Config returns the six-resolution configuration of the
// Glasberg & Moore (2002) time-varying loudness model at sampleRate.
// Window lengths are rounded to whole samples.
func GM2002Config(sampleRate float64) Config {
	cfg := DefaultConfig()
	cfg.WindowLengths = make([]int, len(gm2002WindowsMs))
	for i, ms := range gm2002WindowsMs {
		cfg.WindowLengths[i] = int(math.Round(sampleRate * ms / 1000))
	}
	cfg.BandEdges = append([]float64(nil), gm2002EdgesHz...)
	return cfg
}
