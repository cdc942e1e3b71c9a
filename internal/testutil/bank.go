package testutil

import (
	"testing"

	"github.com/cwbudde/algo-loudness/dsp/signalbank"
)

// NewBank allocates a bank or fails t.
func NewBank(t testing.TB, shape signalbank.Shape) *signalbank.Bank {
	t.Helper()
	b, err := signalbank.New(shape)
	if err != nil {
		t.Fatalf("signalbank.New(%+v): %v", shape, err)
	}
	return b
}

// FillBank copies gen(ear, channel) into every channel of b. Generated
// slices shorter than the bank leave the remaining samples at zero.
func FillBank(b *signalbank.Bank, gen func(ear, channel int) []float64) {
	for ear := 0; ear < b.Ears(); ear++ {
		for ch := 0; ch < b.Channels(); ch++ {
			sig := b.Signal(ear, ch)
			n := copy(sig, gen(ear, ch))
			for i := n; i < len(sig); i++ {
				sig[i] = 0
			}
		}
	}
}
