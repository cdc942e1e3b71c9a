// Command powerspec computes multi-resolution banded power spectra of WAV
// files.
//
// Usage:
//
//	powerspec [flags] <command> [args]
//
// Commands:
//
//	analyze   - Power spectrum per frame of a WAV file
//	bands     - Print the band and bin layout of a configuration
//	backends  - List transform backends
//	tone      - Write a sine test tone as WAV
//
// Examples:
//
//	powerspec bands --preset gm2002 --rate 32000
//	powerspec tone --freq 1000 --amplitude 0.1 --out tone.wav
//	powerspec analyze --config spectrum.yaml --input tone.wav --format csv
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-loudness/cmd/powerspec/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
