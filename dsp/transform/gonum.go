package transform

import "gonum.org/v1/gonum/dsp/fourier"

// Gonum is an [Engine] backed by gonum's real FFT. It only stores the
// non-negative frequency half of the spectrum.
type Gonum struct {
	fft    *fourier.FFT
	in     []float64
	coeffs []complex128
}

// NewGonum creates a gonum engine of the given size.
func NewGonum(size int) (*Gonum, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	return &Gonum{
		fft:    fourier.NewFFT(size),
		in:     make([]float64, size),
		coeffs: make([]complex128, BinCount(size)),
	}, nil
}

// Size returns the transform length.
func (e *Gonum) Size() int { return len(e.in) }

// Process transforms samples, zero-padded to Size().
func (e *Gonum) Process(samples []float64) error {
	if err := validateInput(len(samples), len(e.in)); err != nil {
		return err
	}

	n := copy(e.in, samples)
	for i := n; i < len(e.in); i++ {
		e.in[i] = 0
	}

	e.coeffs = e.fft.Coefficients(e.coeffs, e.in)
	return nil
}

// Real returns the real part of bin.
func (e *Gonum) Real(bin int) float64 { return real(e.coeffs[bin]) }

// Imag returns the imaginary part of bin.
func (e *Gonum) Imag(bin int) float64 { return imag(e.coeffs[bin]) }

func newGonumEngine(size int) (Engine, error) {
	e, err := NewGonum(size)
	if err != nil {
		return nil, err
	}
	return e, nil
}
