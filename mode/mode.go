// Package mode defines the seven diatonic mode patterns.
package mode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rapidmidiex/rmxharmony/pitch"
)

var (
	ErrUnknownMode    = errors.New("unknown mode")
	ErrInvalidPattern = errors.New("invalid mode pattern")
)

// Degrees in a diatonic mode.
const Degrees = 7

// Pattern is a named list of ascending semitone offsets from the tonic.
type Pattern struct {
	Name    string `json:"name"`
	Offsets []int  `json:"offsets"`
}

// Modes are ordered so that rotating a scale by one degree advances the index by one.
var Modes = []Pattern{
	{Name: "Ionian", Offsets: []int{0, 2, 4, 5, 7, 9, 11}},
	{Name: "Dorian", Offsets: []int{0, 2, 3, 5, 7, 9, 10}},
	{Name: "Phrygian", Offsets: []int{0, 1, 3, 5, 7, 8, 10}},
	{Name: "Lydian", Offsets: []int{0, 2, 4, 6, 7, 9, 11}},
	{Name: "Mixolydian", Offsets: []int{0, 2, 4, 5, 7, 9, 10}},
	{Name: "Aeolian", Offsets: []int{0, 2, 3, 5, 7, 8, 10}},
	{Name: "Locrian", Offsets: []int{0, 1, 3, 5, 6, 8, 10}},
}

const (
	Ionian = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

var aliases = map[string]int{
	"major": Ionian,
	"minor": Aeolian,
}

// At returns the pattern for any index, wrapped into the list.
func At(index int) Pattern {
	return Modes[Index(index)]
}

// Index wraps index into the mode list.
func Index(index int) int {
	return pitch.Wrap(index, len(Modes))
}

// ByName looks a mode up case-insensitively. "Ionian (Major)", "major" and
// "minor" are accepted.
func ByName(name string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(key, '('); i > 0 {
		key = strings.TrimSpace(key[:i])
	}
	if i, ok := aliases[key]; ok {
		return i, nil
	}
	for i, m := range Modes {
		if strings.ToLower(m.Name) == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Validate checks the pattern invariants: seven offsets, starting at 0,
// strictly increasing, all below an octave.
func (p Pattern) Validate() error {
	if len(p.Offsets) != Degrees {
		return fmt.Errorf("%w: %s has %d offsets", ErrInvalidPattern, p.Name, len(p.Offsets))
	}
	if p.Offsets[0] != 0 {
		return fmt.Errorf("%w: %s does not start at 0", ErrInvalidPattern, p.Name)
	}
	for i := 1; i < len(p.Offsets); i++ {
		if p.Offsets[i] <= p.Offsets[i-1] {
			return fmt.Errorf("%w: %s is not ascending at %d", ErrInvalidPattern, p.Name, i)
		}
	}
	if p.Offsets[len(p.Offsets)-1] >= pitch.Octave {
		return fmt.Errorf("%w: %s exceeds an octave", ErrInvalidPattern, p.Name)
	}
	return nil
}

func (p Pattern) String() string {
	return p.Name
}
