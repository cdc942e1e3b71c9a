// Package transform defines the real-input discrete Fourier transform engine
// used by spectral stages and provides interchangeable backends.
//
// An [Engine] has a fixed size chosen at construction. Each call to
// [Engine.Process] transforms up to Size() leading samples, zero-padding the
// remainder, and exposes the non-negative frequency bins 0..Size()/2 through
// [Engine.Real] and [Engine.Imag]. Engines keep no state between calls other
// than their size and scratch memory, and are not safe for concurrent use.
//
// Backends are looked up by name in a [Registry]:
//
//	"algofft"  github.com/MeKo-Christian/algo-fft complex plans (default)
//	"gonum"    gonum.org/v1/gonum/dsp/fourier real FFT
package transform
