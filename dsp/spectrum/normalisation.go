package spectrum

import (
	"fmt"
	"strings"
)

// DefaultReferenceValue is the reference sound pressure in pascals (20 µPa).
const DefaultReferenceValue = 2e-5

// Normalisation selects how squared transform magnitudes are scaled.
type Normalisation int

const (
	// NormalisationNone divides by the squared reference only.
	NormalisationNone Normalisation = iota
	// NormalisationEnergy yields one-sided energy per bin.
	NormalisationEnergy
	// NormalisationAveragePower yields one-sided average power per bin over
	// the window length.
	NormalisationAveragePower
)

var normalisationNames = map[Normalisation]string{
	NormalisationNone:         "none",
	NormalisationEnergy:       "energy",
	NormalisationAveragePower: "average_power",
}

// String returns the lower-case configuration name.
func (n Normalisation) String() string {
	if s, ok := normalisationNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Normalisation(%d)", int(n))
}

// Valid reports whether n is a known mode.
func (n Normalisation) Valid() bool {
	_, ok := normalisationNames[n]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (n Normalisation) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("spectrum: unknown normalisation %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively; "-" and "_" are interchangeable.
func (n *Normalisation) UnmarshalText(text []byte) error {
	v, err := ParseNormalisation(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// ParseNormalisation parses a mode name such as "average_power".
func ParseNormalisation(s string) (Normalisation, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for mode, name := range normalisationNames {
		if key == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("spectrum: unknown normalisation %q", s)
}

// Factor returns the scalar applied to re²+im² for a transform of size
// points over a window of windowLength samples, referenced to reference.
func (n Normalisation) Factor(size, windowLength int, reference float64) float64 {
	refSquared := reference * reference
	switch n {
	case NormalisationNone:
		return 1 / refSquared
	case NormalisationAveragePower:
		return 2 / (float64(size) * float64(windowLength) * refSquared)
	default:
		return 2 / (float64(size) * refSquared)
	}
}
