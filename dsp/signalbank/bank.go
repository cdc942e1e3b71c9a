package signalbank

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned when a Shape has non-positive dimensions.
var ErrInvalidShape = errors.New("signalbank: invalid shape")

// Shape describes the dimensions and timing of a Bank.
type Shape struct {
	Ears       int
	Channels   int
	Samples    int
	SampleRate float64
	FrameRate  float64
}

// Validate reports whether all dimensions and the sample rate are positive.
// FrameRate may be zero for banks that are not part of a stream.
func (s Shape) Validate() error {
	switch {
	case s.Ears <= 0:
		return fmt.Errorf("%w: ears must be > 0: %d", ErrInvalidShape, s.Ears)
	case s.Channels <= 0:
		return fmt.Errorf("%w: channels must be > 0: %d", ErrInvalidShape, s.Channels)
	case s.Samples <= 0:
		return fmt.Errorf("%w: samples must be > 0: %d", ErrInvalidShape, s.Samples)
	case !(s.SampleRate > 0):
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidShape, s.SampleRate)
	case s.FrameRate < 0:
		return fmt.Errorf("%w: frame rate must be >= 0: %v", ErrInvalidShape, s.FrameRate)
	}
	return nil
}

// Bank holds one frame of samples for every (ear, channel) pair.
type Bank struct {
	shape       Shape
	data        []float64
	centreFreqs []float64
}

// New allocates a zero-filled Bank with the given shape.
func New(shape Shape) (*Bank, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Bank{
		shape:       shape,
		data:        make([]float64, shape.Ears*shape.Channels*shape.Samples),
		centreFreqs: make([]float64, shape.Channels),
	}, nil
}

// Shape returns the bank dimensions.
func (b *Bank) Shape() Shape { return b.shape }

// Ears returns the number of ears.
func (b *Bank) Ears() int { return b.shape.Ears }

// Channels returns the number of channels per ear.
func (b *Bank) Channels() int { return b.shape.Channels }

// Samples returns the number of samples per channel.
func (b *Bank) Samples() int { return b.shape.Samples }

// SampleRate returns the sample rate in Hz.
func (b *Bank) SampleRate() float64 { return b.shape.SampleRate }

// FrameRate returns the frame rate in frames per second.
func (b *Bank) FrameRate() float64 { return b.shape.FrameRate }

// SetFrameRate updates the frame rate.
func (b *Bank) SetFrameRate(frameRate float64) {
	if frameRate >= 0 {
		b.shape.FrameRate = frameRate
	}
}

// Signal returns the samples of one channel. The slice aliases the bank.
func (b *Bank) Signal(ear, channel int) []float64 {
	n := b.shape.Samples
	start := (ear*b.shape.Channels + channel) * n
	return b.data[start : start+n : start+n]
}

// Row returns all channels of one ear as a single contiguous slice of length
// Channels*Samples. The slice aliases the bank.
func (b *Bank) Row(ear int) []float64 {
	n := b.shape.Channels * b.shape.Samples
	start := ear * n
	return b.data[start : start+n : start+n]
}

// CentreFreq returns the centre frequency of a channel in Hz.
func (b *Bank) CentreFreq(channel int) float64 {
	return b.centreFreqs[channel]
}

// SetCentreFreq sets the centre frequency of a channel in Hz.
func (b *Bank) SetCentreFreq(channel int, hz float64) {
	b.centreFreqs[channel] = hz
}

// CentreFreqs returns a copy of all channel centre frequencies.
func (b *Bank) CentreFreqs() []float64 {
	out := make([]float64, len(b.centreFreqs))
	copy(out, b.centreFreqs)
	return out
}

// Zero sets all samples to 0. Centre frequencies are kept.
func (b *Bank) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}
