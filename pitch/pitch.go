// Package pitch contains pitch-class arithmetic and note-name spelling helpers.
package pitch

import (
	"encoding/json"
	"fmt"
	"strings"
)

type (
	// Class is one of the 12 octave-equivalent pitches, 0 = C.
	Class int

	// Bias steers letter choice for pitches that have both a sharp and a flat spelling.
	Bias int
)

const (
	Neutral Bias = iota
	Sharp
	Flat
)

// Semitones in an octave.
const Octave = 12

var (
	// Fallback labels for pitch classes without a scale-anchored spelling.
	SharpNames = [Octave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	FlatNames  = [Octave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// Wrap returns n modulo m in the range [0, m).
func Wrap(n, m int) int {
	return ((n % m) + m) % m
}

// New wraps any integer into a pitch class.
func New(n int) Class {
	return Class(Wrap(n, Octave))
}

// Add transposes the pitch class by semitones.
func (c Class) Add(semitones int) Class {
	return New(int(c) + semitones)
}

// Interval returns the ascending distance in semitones from root to c.
func (c Class) Interval(root Class) int {
	return Wrap(int(c)-int(root), Octave)
}

// IsAmbiguous reports whether the pitch class is a black key, spelled either
// from the letter below (sharp) or above (flat).
func (c Class) IsAmbiguous() bool {
	return SharpNames[New(int(c))] != FlatNames[New(int(c))]
}

// Label returns the fallback label for c. Neutral uses flats.
func (c Class) Label(b Bias) string {
	if b == Sharp {
		return SharpNames[New(int(c))]
	}
	return FlatNames[New(int(c))]
}

func (c Class) String() string {
	return c.Label(Neutral)
}

func (b Bias) String() string {
	switch b {
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	}
	return "neutral"
}

// Toggle flips sharp and flat. Neutral toggles to sharp, since neutral spells flat.
func (b Bias) Toggle() Bias {
	if b == Sharp {
		return Flat
	}
	return Sharp
}

// ParseBias accepts "sharp", "flat", "neutral" or an empty string.
func ParseBias(s string) (Bias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharp", "#":
		return Sharp, nil
	case "flat", "b":
		return Flat, nil
	case "neutral", "":
		return Neutral, nil
	}
	return Neutral, fmt.Errorf("unknown bias: %q", s)
}

func (b Bias) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Bias) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseBias(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
