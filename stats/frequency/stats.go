// Package frequency computes summary statistics of power spectra whose bins
// need not be uniformly spaced, such as multi-resolution banded spectra.
//
// Every function takes the bin frequencies in Hz and the linear power of
// each bin. Inputs of different lengths, or empty inputs, yield zero values.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

const defaultRolloffPercent = 0.85

// Stats holds statistics of one power spectrum.
type Stats struct {
	BinCount     int
	TotalPower   float64 // sum of bin powers
	TotalPowerDB float64
	PeakBin      int
	PeakFreq     float64 // Hz
	PeakPower    float64
	PeakPowerDB  float64
	Centroid     float64 // power-weighted mean frequency (Hz)
	Spread       float64 // power-weighted standard deviation around the centroid (Hz)
	Flatness     float64 // geometric over arithmetic mean of power, 0..1
	Rolloff      float64 // frequency below which 85% of the power lies (Hz)
}

func valid(freqHz, power []float64) bool {
	return len(freqHz) > 0 && len(freqHz) == len(power)
}

// Calculate computes all statistics of a spectrum.
func Calculate(freqHz, power []float64) Stats {
	if !valid(freqHz, power) {
		return Stats{}
	}

	total := floats.Sum(power)
	peak := floats.MaxIdx(power)
	cent := centroid(freqHz, power, total)

	return Stats{
		BinCount:     len(power),
		TotalPower:   total,
		TotalPowerDB: core.LinearPowerToDB(total),
		PeakBin:      peak,
		PeakFreq:     freqHz[peak],
		PeakPower:    power[peak],
		PeakPowerDB:  core.LinearPowerToDB(power[peak]),
		Centroid:     cent,
		Spread:       spread(freqHz, power, cent, total),
		Flatness:     flatness(power),
		Rolloff:      rolloff(freqHz, power, defaultRolloffPercent, total),
	}
}

// Centroid returns the power-weighted mean frequency in Hz.
func Centroid(freqHz, power []float64) float64 {
	if !valid(freqHz, power) {
		return 0
	}
	return centroid(freqHz, power, floats.Sum(power))
}

func centroid(freqHz, power []float64, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return floats.Dot(freqHz, power) / total
}

func spread(freqHz, power []float64, cent, total float64) float64 {
	if total <= 0 {
		return 0
	}
	sum := 0.0
	for i, f := range freqHz {
		d := f - cent
		sum += d * d * power[i]
	}
	return math.Sqrt(sum / total)
}

// Flatness returns the spectral flatness (Wiener entropy) of power. A
// spectrum containing a zero bin has flatness 0.
func Flatness(power []float64) float64 {
	if len(power) == 0 {
		return 0
	}
	return flatness(power)
}

func flatness(power []float64) float64 {
	logSum := 0.0
	sum := 0.0
	for _, p := range power {
		if p <= 0 {
			return 0
		}
		logSum += math.Log(p)
		sum += p
	}
	n := float64(len(power))
	return math.Exp(logSum/n) / (sum / n)
}

// Rolloff returns the frequency of the first bin at which the cumulative
// power reaches percent (0..1) of the total.
func Rolloff(freqHz, power []float64, percent float64) float64 {
	if !valid(freqHz, power) {
		return 0
	}
	return rolloff(freqHz, power, percent, floats.Sum(power))
}

func rolloff(freqHz, power []float64, percent, total float64) float64 {
	if total <= 0 {
		return 0
	}
	threshold := percent * total
	cum := 0.0
	for i, p := range power {
		cum += p
		if cum >= threshold {
			return freqHz[i]
		}
	}
	return freqHz[len(freqHz)-1]
}
