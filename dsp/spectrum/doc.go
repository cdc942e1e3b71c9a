// Package spectrum computes multi-resolution banded power spectra.
//
// The package does not implement the Fourier transform itself; it drives
// engines from package transform. Each input channel holds one analysis
// window of a different length, ordered from longest to shortest. Channel i
// is transformed at its own resolution and contributes the bins that fall in
// the frequency band [edges[i], edges[i+1]). The selected bins of all bands
// are converted to power and concatenated into one spectrum per ear:
//
//	lowBin  = ceil(edges[i]   * size / fs)
//	highBin = ceil(edges[i+1] * size / fs)   (exclusive)
//
// Bin 0 (DC) and bins at or above Nyquist are always dropped, with a logged
// warning. Powers are scaled so that they are referenced to a physical unit,
// by default average power relative to 20 µPa:
//
//	NormalisationNone:         P = |X|^2 / ref^2
//	NormalisationEnergy:       P = 2 |X|^2 / (N ref^2)
//	NormalisationAveragePower: P = 2 |X|^2 / (N W ref^2)
//
// where N is the transform size and W the window length.
//
// Basic usage:
//
//	ps := spectrum.New([]int{1024, 256}, []float64{20, 4000, 16000})
//	if err := ps.Initialize(frame); err != nil {
//	    return err
//	}
//	for each frame {
//	    _ = ps.Process(frame)
//	    row := ps.Output().Row(0) // power per bin, ear 0
//	}
package spectrum
