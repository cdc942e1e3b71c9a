package framing

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signalbank"
)

func ramp(n int, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + float64(i)
	}
	return out
}

func TestNewRejectsInvalidWindows(t *testing.T) {
	t.Parallel()

	cfg := core.DefaultProcessorConfig()
	for _, windows := range [][]int{nil, {4, 8}, {8, 0}} {
		if _, err := New(windows, 1, cfg); err == nil {
			t.Fatalf("New(%v) succeeded", windows)
		}
	}
	if _, err := New([]int{8}, 0, cfg); !errors.Is(err, signalbank.ErrInvalidShape) {
		t.Fatalf("New with zero ears error = %v", err)
	}
}

func TestEachCentresWindows(t *testing.T) {
	t.Parallel()

	cfg := core.ProcessorConfig{SampleRate: 8000, FrameRate: 2000} // hop 4
	f, err := New([]int{8, 4, 2}, 2, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.Hop() != 4 {
		t.Fatalf("Hop() = %d, want 4", f.Hop())
	}

	pcm := [][]float64{ramp(20, 0), ramp(20, 100)}
	if got := f.FrameCount(20); got != 4 {
		t.Fatalf("FrameCount(20) = %d, want 4", got)
	}

	var starts []float64
	err = f.Each(pcm, func(index int, frame *signalbank.Bank) error {
		long := frame.Signal(0, 0)
		mid := frame.Signal(0, 1)
		short := frame.Signal(1, 2)

		starts = append(starts, long[0])
		base := float64(index * 4)
		if long[7] != base+7 {
			t.Fatalf("frame %d long window = %v", index, long)
		}
		if mid[0] != base+2 || mid[3] != base+5 || mid[4] != 0 {
			t.Fatalf("frame %d mid window = %v", index, mid)
		}
		if short[0] != 100+base+3 || short[1] != 100+base+4 || short[2] != 0 {
			t.Fatalf("frame %d short window = %v", index, short)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	if len(starts) != 4 || starts[3] != 12 {
		t.Fatalf("frame starts = %v", starts)
	}
}

func TestEachErrors(t *testing.T) {
	t.Parallel()

	f, err := New([]int{4}, 2, core.ProcessorConfig{SampleRate: 8000, FrameRate: 4000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	noop := func(int, *signalbank.Bank) error { return nil }
	if err := f.Each([][]float64{ramp(8, 0)}, noop); err == nil {
		t.Fatal("expected ear count error")
	}
	if err := f.Each([][]float64{ramp(8, 0), ramp(7, 0)}, noop); err == nil {
		t.Fatal("expected length mismatch error")
	}

	stop := errors.New("stop")
	calls := 0
	err = f.Each([][]float64{ramp(8, 0), ramp(8, 0)}, func(int, *signalbank.Bank) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("Each error = %v after %d calls", err, calls)
	}

	if got := f.FrameCount(3); got != 0 {
		t.Fatalf("FrameCount(3) = %d, want 0", got)
	}
}

func TestBankReportsEffectiveFrameRate(t *testing.T) {
	t.Parallel()

	// 44100/1000 rounds to a 44-sample hop.
	f, err := New([]int{64}, 1, core.ApplyProcessorOptions(core.WithSampleRate(44100), core.WithFrameRate(1000)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.Hop() != 44 {
		t.Fatalf("Hop() = %d, want 44", f.Hop())
	}
	if got, want := f.Bank().FrameRate(), 44100.0/44; got != want {
		t.Fatalf("FrameRate() = %v, want %v", got, want)
	}
}
