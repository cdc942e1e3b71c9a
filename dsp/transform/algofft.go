package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// AlgoFFT is an [Engine] backed by an algo-fft complex128 plan.
type AlgoFFT struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewAlgoFFT creates an algo-fft engine of the given size.
func NewAlgoFFT(size int) (*AlgoFFT, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("transform: algofft plan %d: %w", size, err)
	}

	return &AlgoFFT{
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
	}, nil
}

// Size returns the transform length.
func (e *AlgoFFT) Size() int { return len(e.in) }

// Process transforms samples, zero-padded to Size().
func (e *AlgoFFT) Process(samples []float64) error {
	if err := validateInput(len(samples), len(e.in)); err != nil {
		return err
	}

	for i, s := range samples {
		e.in[i] = complex(s, 0)
	}
	for i := len(samples); i < len(e.in); i++ {
		e.in[i] = 0
	}

	if err := e.plan.Forward(e.out, e.in); err != nil {
		return fmt.Errorf("transform: algofft forward: %w", err)
	}
	return nil
}

// Real returns the real part of bin.
func (e *AlgoFFT) Real(bin int) float64 { return real(e.out[bin]) }

// Imag returns the imaginary part of bin.
func (e *AlgoFFT) Imag(bin int) float64 { return imag(e.out[bin]) }

func newAlgoFFTEngine(size int) (Engine, error) {
	e, err := NewAlgoFFT(size)
	if err != nil {
		return nil, err
	}
	return e, nil
}
