package spectrum

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/cwbudde/algo-loudness/dsp/signalbank"
	"github.com/cwbudde/algo-loudness/dsp/transform"
	"github.com/cwbudde/algo-loudness/internal/testutil"
)

const testSampleRate = 32000.0

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// lockedBuffer lets parallel subtests share a log sink safely.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func frameShape(ears, channels, samples int) signalbank.Shape {
	return signalbank.Shape{
		Ears:       ears,
		Channels:   channels,
		Samples:    samples,
		SampleRate: testSampleRate,
		FrameRate:  1000,
	}
}

// countingFactory records the size of every engine it creates.
type countingFactory struct {
	mu    sync.Mutex
	sizes []int
}

func (c *countingFactory) New(size int) (transform.Engine, error) {
	c.mu.Lock()
	c.sizes = append(c.sizes, size)
	c.mu.Unlock()
	return transform.NewAlgoFFT(size)
}

func noiseBank(t *testing.T, shape signalbank.Shape) *signalbank.Bank {
	t.Helper()
	b := testutil.NewBank(t, shape)
	testutil.FillBank(b, func(ear, ch int) []float64 {
		return testutil.DeterministicNoise(int64(100*ear+ch+1), 0.5, shape.Samples)
	})
	return b
}

func mustInitialize(t *testing.T, ps *PowerSpectrum, input *signalbank.Bank) {
	t.Helper()
	if err := ps.Initialize(input); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
}

func mustProcess(t *testing.T, ps *PowerSpectrum, input *signalbank.Bank) {
	t.Helper()
	if err := ps.Process(input); err != nil {
		t.Fatalf("Process: %v", err)
	}
}
