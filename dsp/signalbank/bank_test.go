package signalbank

import (
	"errors"
	"testing"
)

func TestNewValidatesShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape Shape
	}{
		{name: "no ears", shape: Shape{Ears: 0, Channels: 1, Samples: 1, SampleRate: 32000}},
		{name: "no channels", shape: Shape{Ears: 1, Channels: 0, Samples: 1, SampleRate: 32000}},
		{name: "no samples", shape: Shape{Ears: 1, Channels: 1, Samples: 0, SampleRate: 32000}},
		{name: "zero sample rate", shape: Shape{Ears: 1, Channels: 1, Samples: 1}},
		{name: "negative frame rate", shape: Shape{Ears: 1, Channels: 1, Samples: 1, SampleRate: 32000, FrameRate: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.shape)
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("New(%+v) error = %v, want ErrInvalidShape", tt.shape, err)
			}
		})
	}
}

func TestSignalAndRowLayout(t *testing.T) {
	t.Parallel()

	b, err := New(Shape{Ears: 2, Channels: 3, Samples: 4, SampleRate: 32000, FrameRate: 1000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for ear := 0; ear < b.Ears(); ear++ {
		for ch := 0; ch < b.Channels(); ch++ {
			sig := b.Signal(ear, ch)
			if len(sig) != 4 {
				t.Fatalf("Signal(%d,%d) len=%d, want 4", ear, ch, len(sig))
			}
			for i := range sig {
				sig[i] = float64(100*ear + 10*ch + i)
			}
		}
	}

	row := b.Row(1)
	if len(row) != 12 {
		t.Fatalf("Row len=%d, want 12", len(row))
	}
	if row[0] != 100 || row[4] != 110 || row[11] != 123 {
		t.Fatalf("unexpected row layout: %v", row)
	}

	sig := b.Signal(0, 2)
	if cap(sig) != len(sig) {
		t.Fatalf("Signal must not expose neighbouring channels: cap=%d len=%d", cap(sig), len(sig))
	}
}

func TestCentreFreqs(t *testing.T) {
	t.Parallel()

	b, err := New(Shape{Ears: 1, Channels: 2, Samples: 1, SampleRate: 32000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b.SetCentreFreq(0, 31.25)
	b.SetCentreFreq(1, 62.5)

	freqs := b.CentreFreqs()
	if freqs[0] != 31.25 || freqs[1] != 62.5 {
		t.Fatalf("CentreFreqs() = %v", freqs)
	}

	freqs[0] = 0
	if b.CentreFreq(0) != 31.25 {
		t.Fatal("CentreFreqs must return a copy")
	}
}

func TestZero(t *testing.T) {
	t.Parallel()

	a, _ := New(Shape{Ears: 1, Channels: 2, Samples: 2, SampleRate: 16000})
	copy(a.Row(0), []float64{1, 2, 3, 4})
	a.SetCentreFreq(1, 500)

	a.Zero()
	for _, v := range a.Row(0) {
		if v != 0 {
			t.Fatalf("Zero left %v", a.Row(0))
		}
	}
	if a.CentreFreq(1) != 500 {
		t.Fatalf("Zero cleared centre frequency: %v", a.CentreFreq(1))
	}
}

func TestSetFrameRate(t *testing.T) {
	t.Parallel()

	b, _ := New(Shape{Ears: 1, Channels: 1, Samples: 1, SampleRate: 16000})
	b.SetFrameRate(125)
	b.SetFrameRate(-3)
	if b.FrameRate() != 125 {
		t.Fatalf("FrameRate() = %v, want 125", b.FrameRate())
	}
}
