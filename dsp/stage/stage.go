// Package stage defines the lifecycle shared by frame-based analysis stages
// and a Chain that runs stages in sequence.
//
// A stage is initialized once from the shape of its input bank, then
// processes one frame per call. Initialize may be called again to
// reconfigure for a new input shape; Reset clears any state carried between
// frames without touching the configuration.
package stage

import (
	"errors"

	"github.com/cwbudde/algo-loudness/dsp/signalbank"
)

// ErrNotInitialized is returned by Process before a successful Initialize.
var ErrNotInitialized = errors.New("stage: not initialized")

// Stage is one frame-based processing step.
type Stage interface {
	// Name identifies the stage in logs and errors.
	Name() string
	// Initialize derives all per-configuration state from the input shape and
	// allocates the output bank.
	Initialize(input *signalbank.Bank) error
	// Process consumes one input frame and overwrites Output.
	Process(input *signalbank.Bank) error
	// Reset clears state carried between frames.
	Reset()
	// Output returns the bank written by Process, or nil before Initialize.
	Output() *signalbank.Bank
	// Initialized reports whether Initialize last succeeded.
	Initialized() bool
}
