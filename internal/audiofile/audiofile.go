// Package audiofile reads and writes integer PCM WAV files as per-channel
// float64 samples in [-1, 1).
package audiofile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

var errInvalidWAV = errors.New("audiofile: invalid WAV file")

// Audio is decoded PCM, one slice per channel.
type Audio struct {
	SampleRate float64
	Channels   [][]float64
}

// Len returns the number of samples per channel.
func (a *Audio) Len() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Read decodes a WAV file.
func Read(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", errInvalidWAV, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audiofile: decode %s: %w", path, err)
	}

	bitDepth := int(dec.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}
	return deinterleave(buf, bitDepth)
}

func deinterleave(buf *audio.IntBuffer, bitDepth int) (*Audio, error) {
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing format", errInvalidWAV)
	}
	if bitDepth <= 0 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: unsupported bit depth %d", errInvalidWAV, bitDepth)
	}

	nch := buf.Format.NumChannels
	n := len(buf.Data) / nch
	scale := 1 / math.Ldexp(1, bitDepth-1)

	out := &Audio{
		SampleRate: float64(buf.Format.SampleRate),
		Channels:   make([][]float64, nch),
	}
	for ch := range out.Channels {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(buf.Data[i*nch+ch]) * scale
		}
		out.Channels[ch] = x
	}
	return out, nil
}

// Write encodes a as an integer PCM WAV file of the given bit depth.
// Samples are clipped to the representable range.
func Write(path string, a *Audio, bitDepth int) error {
	if len(a.Channels) == 0 || a.SampleRate <= 0 {
		return errors.New("audiofile: nothing to write")
	}
	if bitDepth != 8 && bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return fmt.Errorf("audiofile: unsupported bit depth %d", bitDepth)
	}

	nch := len(a.Channels)
	n := a.Len()
	full := math.Ldexp(1, bitDepth-1)
	data := make([]int, n*nch)
	for ch, x := range a.Channels {
		if len(x) != n {
			return fmt.Errorf("audiofile: channel %d has %d samples, want %d", ch, len(x), n)
		}
		for i, v := range x {
			data[i*nch+ch] = int(math.Max(-full, math.Min(full-1, math.Round(v*full))))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: create %s: %w", path, err)
	}

	sampleRate := int(math.Round(a.SampleRate))
	enc := wav.NewEncoder(f, sampleRate, bitDepth, nch, pcmFormat)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{SampleRate: sampleRate, NumChannels: nch},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		f.Close()
		return fmt.Errorf("audiofile: encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: finalize %s: %w", path, err)
	}
	return f.Close()
}
