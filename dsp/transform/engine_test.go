package transform

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-loudness/internal/testutil"
)

// naiveDFT returns the non-negative frequency bins of x zero-padded to size.
func naiveDFT(x []float64, size int) []complex128 {
	out := make([]complex128, BinCount(size))
	for k := range out {
		var sum complex128
		for n, v := range x {
			angle := -2 * math.Pi * float64(k*n) / float64(size)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func backends() map[string]Factory {
	return map[string]Factory{
		BackendAlgoFFT: newAlgoFFTEngine,
		BackendGonum:   newGonumEngine,
	}
}

func TestEnginesMatchNaiveDFT(t *testing.T) {
	t.Parallel()

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range []struct {
				size, n int
			}{
				{size: 16, n: 16},
				{size: 64, n: 40},
				{size: 256, n: 1},
			} {
				e, err := factory(tc.size)
				if err != nil {
					t.Fatalf("factory(%d): %v", tc.size, err)
				}
				if e.Size() != tc.size {
					t.Fatalf("Size() = %d, want %d", e.Size(), tc.size)
				}

				x := testutil.DeterministicNoise(int64(tc.size), 1, tc.n)
				if err := e.Process(x); err != nil {
					t.Fatalf("Process: %v", err)
				}

				want := naiveDFT(x, tc.size)
				for k, w := range want {
					if math.Abs(e.Real(k)-real(w)) > 1e-9 || math.Abs(e.Imag(k)-imag(w)) > 1e-9 {
						t.Fatalf("size=%d bin %d: got (%g,%g), want (%g,%g)",
							tc.size, k, e.Real(k), e.Imag(k), real(w), imag(w))
					}
				}
			}
		})
	}
}

func TestEnginesZeroPadBetweenCalls(t *testing.T) {
	t.Parallel()

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e, err := factory(32)
			if err != nil {
				t.Fatalf("factory: %v", err)
			}

			if err := e.Process(testutil.Ones(32)); err != nil {
				t.Fatalf("Process: %v", err)
			}

			// A shorter second frame must not see the tail of the first one.
			if err := e.Process(testutil.Impulse(4, 0)); err != nil {
				t.Fatalf("Process: %v", err)
			}

			for k := 0; k < BinCount(32); k++ {
				if math.Abs(e.Real(k)-1) > 1e-12 || math.Abs(e.Imag(k)) > 1e-12 {
					t.Fatalf("bin %d = (%g,%g), want (1,0)", k, e.Real(k), e.Imag(k))
				}
			}
		})
	}
}

func TestEnginesRejectLongInput(t *testing.T) {
	t.Parallel()

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e, err := factory(8)
			if err != nil {
				t.Fatalf("factory: %v", err)
			}
			if err := e.Process(make([]float64, 9)); !errors.Is(err, ErrInputTooLong) {
				t.Fatalf("Process(9) error = %v, want ErrInputTooLong", err)
			}
		})
	}
}

func TestEnginesRejectInvalidSize(t *testing.T) {
	t.Parallel()

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := factory(0); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("factory(0) error = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestPureToneBinMagnitude(t *testing.T) {
	t.Parallel()

	const (
		size       = 1024
		sampleRate = 32000.0
		bin        = 40
	)
	freq := BinFrequency(bin, size, sampleRate)
	x := testutil.DeterministicSine(freq, sampleRate, 1, size)

	e, err := NewAlgoFFT(size)
	if err != nil {
		t.Fatalf("NewAlgoFFT: %v", err)
	}
	if err := e.Process(x); err != nil {
		t.Fatalf("Process: %v", err)
	}

	mag := math.Hypot(e.Real(bin), e.Imag(bin))
	if math.Abs(mag-size/2) > 1e-6 {
		t.Fatalf("|X[%d]| = %v, want %v", bin, mag, size/2)
	}
}

func TestBinHelpers(t *testing.T) {
	t.Parallel()

	if got := BinCount(1024); got != 513 {
		t.Fatalf("BinCount(1024) = %d, want 513", got)
	}
	if got := BinCount(0); got != 0 {
		t.Fatalf("BinCount(0) = %d, want 0", got)
	}
	if got := BinFrequency(8, 256, 32000); got != 1000 {
		t.Fatalf("BinFrequency(8,256,32000) = %v, want 1000", got)
	}
}
