package transform

// Engine is a fixed-size real-input forward transform.
type Engine interface {
	// Size returns the transform length.
	Size() int
	// Process transforms samples, zero-padded to Size(). len(samples) must not
	// exceed Size().
	Process(samples []float64) error
	// Real returns the real part of a bin in [0, Size()/2].
	Real(bin int) float64
	// Imag returns the imaginary part of a bin in [0, Size()/2].
	Imag(bin int) float64
}

// Factory builds an engine of the given size.
type Factory func(size int) (Engine, error)

// BinCount returns the number of non-negative frequency bins of a transform
// of the given size.
func BinCount(size int) int {
	if size <= 0 {
		return 0
	}
	return size/2 + 1
}

// BinFrequency returns the frequency in Hz of bin for a transform of size
// at sampleRate.
func BinFrequency(bin, size int, sampleRate float64) float64 {
	if size <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(size)
}
