package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signalbank"
	"github.com/cwbudde/algo-loudness/dsp/transform"
)

// Band is the derived bin selection of one channel.
type Band struct {
	Channel       int
	LowHz         float64
	HighHz        float64
	WindowLength  int
	TransformSize int
	// LowBin and HighBin bound the selected bins, [LowBin, HighBin).
	LowBin     int
	HighBin    int
	NormFactor float64
}

// Bins returns the number of selected bins.
func (b Band) Bins() int {
	if b.HighBin < b.LowBin {
		return 0
	}
	return b.HighBin - b.LowBin
}

// NyquistBin returns the index of the first excluded bin at the top of the
// transform, size/2 rounded up.
func (b Band) NyquistBin() int {
	return nyquistBin(b.TransformSize)
}

func nyquistBin(size int) int {
	return size/2 + size%2
}

// WarningKind classifies a non-fatal band adjustment.
type WarningKind int

const (
	// WarnDCExcluded means the band reached bin 0, which was dropped.
	WarnDCExcluded WarningKind = iota + 1
	// WarnNyquistExcluded means the band reached Nyquist and was truncated.
	WarnNyquistExcluded
	// WarnEmptyBand means exclusion left the band without bins.
	WarnEmptyBand
)

func (k WarningKind) String() string {
	switch k {
	case WarnDCExcluded:
		return "dc excluded"
	case WarnNyquistExcluded:
		return "nyquist excluded"
	case WarnEmptyBand:
		return "empty band"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning records a bin range adjustment made while mapping bands.
type Warning struct {
	Band    int
	Kind    WarningKind
	LowBin  int
	HighBin int
}

func (w Warning) String() string {
	return fmt.Sprintf("band %d: %s, bins [%d, %d)", w.Band, w.Kind, w.LowBin, w.HighBin)
}

// Layout is everything derived from a configuration and an input shape.
type Layout struct {
	Bands []Band
	// TransformSizes has one entry per engine: a single shared size in
	// uniform mode, otherwise one per channel.
	TransformSizes []int
	SampleRate     float64
	Uniform        bool
}

// BinCount returns the length of the output spectrum.
func (l Layout) BinCount() int {
	n := 0
	for _, b := range l.Bands {
		n += b.Bins()
	}
	return n
}

// CentreFreqs returns the frequency in Hz of every output bin, in output order.
func (l Layout) CentreFreqs() []float64 {
	out := make([]float64, 0, l.BinCount())
	for _, b := range l.Bands {
		for bin := b.LowBin; bin < b.HighBin; bin++ {
			out = append(out, transform.BinFrequency(bin, b.TransformSize, l.SampleRate))
		}
	}
	return out
}

// engineIndex returns the engine used by channel.
func (l Layout) engineIndex(channel int) int {
	if l.Uniform {
		return 0
	}
	return channel
}

// Plan validates cfg against an input shape and derives transform sizes,
// bin ranges and normalisation factors. It has no side effects; warnings are
// returned for the caller to report.
func Plan(cfg Config, shape signalbank.Shape) (Layout, []Warning, error) {
	return plan(defaultName, cfg, shape)
}

func plan(name string, cfg Config, shape signalbank.Shape) (Layout, []Warning, error) {
	if err := shape.Validate(); err != nil {
		return Layout{}, nil, configErrorf(name, "%v", err)
	}
	if err := validate(name, cfg, shape.Channels, shape.Samples); err != nil {
		return Layout{}, nil, err
	}

	sizes := TransformSizes(cfg.WindowLengths, shape.Samples, cfg.UniformSampling)
	perChannel := sizes
	if cfg.UniformSampling {
		perChannel = make([]int, len(cfg.WindowLengths))
		for i := range perChannel {
			perChannel[i] = sizes[0]
		}
	}

	bands, warnings, err := mapBands(name, cfg, perChannel, shape.SampleRate)
	if err != nil {
		return Layout{}, nil, err
	}

	return Layout{
		Bands:          bands,
		TransformSizes: sizes,
		SampleRate:     shape.SampleRate,
		Uniform:        cfg.UniformSampling,
	}, warnings, nil
}

// TransformSizes returns the engine sizes for the given windows. In uniform
// mode it is a single size covering the whole input frame, otherwise one
// size per window.
func TransformSizes(windowLengths []int, frameSamples int, uniform bool) []int {
	if uniform {
		return []int{core.NextPowerOfTwo(frameSamples)}
	}
	sizes := make([]int, len(windowLengths))
	for i, w := range windowLengths {
		sizes[i] = core.NextPowerOfTwo(w)
	}
	return sizes
}

// MapBands converts band edges into bin ranges for transforms of the given
// per-channel sizes.
func MapBands(cfg Config, sizes []int, sampleRate float64) ([]Band, []Warning, error) {
	if len(sizes) != len(cfg.WindowLengths) || len(cfg.BandEdges) != len(sizes)+1 {
		return nil, nil, configErrorf(defaultName, "mismatched sizes (%d), windows (%d) and band edges (%d)",
			len(sizes), len(cfg.WindowLengths), len(cfg.BandEdges))
	}
	return mapBands(defaultName, cfg, sizes, sampleRate)
}

func mapBands(name string, cfg Config, sizes []int, sampleRate float64) ([]Band, []Warning, error) {
	var warnings []Warning
	bands := make([]Band, len(sizes))

	for i, size := range sizes {
		b := Band{
			Channel:       i,
			LowHz:         cfg.BandEdges[i],
			HighHz:        cfg.BandEdges[i+1],
			WindowLength:  cfg.WindowLengths[i],
			TransformSize: size,
		}

		// Bins satisfy f_k in [f_lo, f_hi); these are not the nearest bins.
		b.LowBin = int(math.Ceil(b.LowHz * float64(size) / sampleRate))
		b.HighBin = int(math.Ceil(b.HighHz * float64(size) / sampleRate))
		if b.HighBin <= 0 {
			return nil, nil, configErrorf(name, "no components found in band %d [%g, %g) Hz",
				i, b.LowHz, b.HighHz)
		}

		if b.LowBin <= 0 {
			b.LowBin = 1
			warnings = append(warnings, Warning{Band: i, Kind: WarnDCExcluded, LowBin: b.LowBin, HighBin: b.HighBin})
		}

		nyq := nyquistBin(size)
		if b.HighBin-1 >= nyq {
			b.HighBin = nyq
			warnings = append(warnings, Warning{Band: i, Kind: WarnNyquistExcluded, LowBin: b.LowBin, HighBin: b.HighBin})
		}

		if b.HighBin <= b.LowBin {
			b.HighBin = b.LowBin
			warnings = append(warnings, Warning{Band: i, Kind: WarnEmptyBand, LowBin: b.LowBin, HighBin: b.HighBin})
		}

		b.NormFactor = cfg.Normalisation.Factor(size, b.WindowLength, cfg.ReferenceValue)
		bands[i] = b
	}

	return bands, warnings, nil
}
