package core

import (
	"math"
	"testing"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {255, 256}, {256, 256}, {257, 512}, {1000, 1024},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAnyAscending(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   bool
	}{
		{name: "empty", values: nil, want: false},
		{name: "single", values: []int{512}, want: false},
		{name: "descending", values: []int{1024, 512, 256}, want: false},
		{name: "equal neighbours", values: []int{512, 512, 256}, want: false},
		{name: "ascending pair", values: []int{512, 1024}, want: true},
		{name: "late rise", values: []int{1024, 256, 512}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyAscending(tt.values); got != tt.want {
				t.Fatalf("AnyAscending(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if got := LinearPowerToDB(100); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", got)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative")
	}
	if got := LinearPowerToDBFloor(0, -100); got != -100 {
		t.Fatalf("LinearPowerToDBFloor(0) = %v, want -100", got)
	}
	if got := LinearPowerToDBFloor(10, -100); !NearlyEqual(got, 10, 1e-12) {
		t.Fatalf("LinearPowerToDBFloor(10) = %v, want 10", got)
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 2, 8)
	if got := EnsureLen(buf, 6); len(got) != 6 || cap(got) != 8 {
		t.Fatalf("EnsureLen reuse: len=%d cap=%d", len(got), cap(got))
	}
	if got := EnsureLen(buf, 16); len(got) != 16 {
		t.Fatalf("EnsureLen grow: len=%d", len(got))
	}
	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("EnsureLen zero: len=%d", len(got))
	}
}
