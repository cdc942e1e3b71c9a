package stage

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-loudness/dsp/signalbank"
)

// Chain runs stages in order, feeding each stage's output to the next.
type Chain struct {
	stages      []Stage
	initialized bool
}

// NewChain creates a chain of the given stages. Nil stages are skipped.
func NewChain(stages ...Stage) *Chain {
	c := &Chain{}
	for _, s := range stages {
		if s != nil {
			c.stages = append(c.stages, s)
		}
	}
	return c
}

// Name returns the names of all stages joined by arrows.
func (c *Chain) Name() string {
	name := ""
	for i, s := range c.stages {
		if i > 0 {
			name += " -> "
		}
		name += s.Name()
	}
	return name
}

// Stages returns the stages in processing order.
func (c *Chain) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)
	return out
}

// Initialize initializes the first stage with input and every following
// stage with its predecessor's output. It stops at the first failure.
func (c *Chain) Initialize(input *signalbank.Bank) error {
	c.initialized = false
	if len(c.stages) == 0 {
		return errors.New("stage: empty chain")
	}

	in := input
	for _, s := range c.stages {
		if err := s.Initialize(in); err != nil {
			return fmt.Errorf("stage %q: %w", s.Name(), err)
		}
		in = s.Output()
	}

	c.initialized = true
	return nil
}

// Process runs one frame through every stage.
func (c *Chain) Process(input *signalbank.Bank) error {
	if !c.initialized {
		return ErrNotInitialized
	}

	in := input
	for _, s := range c.stages {
		if err := s.Process(in); err != nil {
			return fmt.Errorf("stage %q: %w", s.Name(), err)
		}
		in = s.Output()
	}
	return nil
}

// Reset resets every stage.
func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}

// Output returns the last stage's output.
func (c *Chain) Output() *signalbank.Bank {
	if len(c.stages) == 0 {
		return nil
	}
	return c.stages[len(c.stages)-1].Output()
}

// Initialized reports whether the last Initialize succeeded.
func (c *Chain) Initialized() bool { return c.initialized }

var _ Stage = (*Chain)(nil)
