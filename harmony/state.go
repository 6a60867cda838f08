// Package harmony holds the harmony state and the transitions between states.
// Every transition takes a State and returns a new one; the input is never modified.
package harmony

import (
	"fmt"
	"math/rand"

	"github.com/rapidmidiex/rmxharmony/chord"
	"github.com/rapidmidiex/rmxharmony/mode"
	"github.com/rapidmidiex/rmxharmony/pitch"
	"github.com/rapidmidiex/rmxharmony/roman"
	"github.com/rapidmidiex/rmxharmony/scale"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// State is one tonic and mode together with the user's spelling preferences,
// extension ladder and row overrides. Display, Analysis and Romans are derived
// and rebuilt by every transition.
type State struct {
	Tonic     pitch.Class `json:"tonic"`
	ModeIndex int         `json:"modeIndex"`

	Preferences scale.Preferences `json:"preferences"`
	Ladder      chord.Ladder      `json:"-"`
	// Per-row maximum degree. The ladder still caps it.
	RowMaxDegree map[int]int `json:"rowMaxDegree,omitempty"`

	// Derived from the fields above.
	Display  scale.Display  `json:"display"`
	Analysis chord.Analysis `json:"analysis"`
	Romans   []string       `json:"romans"`
}

// New returns C Ionian with triads only.
func New() State {
	return recompute(State{
		Tonic:        0,
		ModeIndex:    mode.Ionian,
		Preferences:  scale.Preferences{},
		RowMaxDegree: map[int]int{},
	}, pitch.Neutral)
}

// clone copies the mutable maps so the result can be changed without touching s.
func (s State) clone() State {
	s.Preferences = maps.Clone(s.Preferences)
	if s.Preferences == nil {
		s.Preferences = scale.Preferences{}
	}
	s.RowMaxDegree = maps.Clone(s.RowMaxDegree)
	if s.RowMaxDegree == nil {
		s.RowMaxDegree = map[int]int{}
	}
	return s
}

// recompute rebuilds the derived fields. A forced bias only breaks a
// spelling tie and is not stored.
func recompute(s State, forced pitch.Bias) State {
	s.Tonic = pitch.New(int(s.Tonic))
	s.ModeIndex = mode.Index(s.ModeIndex)
	s.Display = scale.ComputeDisplay(s.Tonic, s.ModeIndex, forced, s.Preferences)
	s.Analysis = chord.Analyze(s.Display.Spelled, s.Display.PitchClasses)
	s.Romans = roman.Compute(s.Display.PitchClasses)
	return s
}

func (s State) Mode() mode.Pattern {
	return mode.At(s.ModeIndex)
}

// Title is the tonic label and mode name, ie: "Gb Ionian".
func (s State) Title() string {
	return s.Display.TonicLabel + " " + s.Mode().Name
}

// Rotate reinterprets the same pitch collection starting steps degrees
// later: C Ionian rotated by 1 is D Dorian.
func Rotate(s State, steps int) State {
	pcs := s.Display.PitchClasses
	if len(pcs) == 0 {
		pcs = scale.Build(pitch.New(int(s.Tonic)), s.Mode())
	}
	steps = pitch.Wrap(steps, len(pcs))
	if steps == 0 {
		return s
	}

	rotated := append(slices.Clone(pcs[steps:]), pcs[:steps]...)
	next := s.clone()
	next.Tonic = rotated[0]
	next.ModeIndex = mode.Index(s.ModeIndex + steps)
	return recompute(next, pitch.Neutral)
}

// Transpose moves the tonic by semitones and keeps the mode.
func Transpose(s State, semitones int) State {
	if pitch.Wrap(semitones, pitch.Octave) == 0 {
		return s
	}
	next := s.clone()
	next.Tonic = s.Tonic.Add(semitones)
	return recompute(next, pitch.Neutral)
}

// SelectTonic sets the tonic from a note label. An explicit accidental in the
// label ("F#", "Gb") is stored as the preference for that pitch class.
func SelectTonic(s State, label string) (State, error) {
	name, err := pitch.ParseName(label)
	if err != nil {
		return s, fmt.Errorf("select tonic: %w", err)
	}
	next := s.clone()
	next.Tonic = name.Class()
	if next.Tonic.IsAmbiguous() && name.Bias() != pitch.Neutral {
		next.Preferences[next.Tonic] = name.Bias()
		return recompute(next, name.Bias()), nil
	}
	return recompute(next, pitch.Neutral), nil
}

// SelectMode keeps the tonic and switches to the mode at index.
func SelectMode(s State, index int) State {
	next := s.clone()
	next.ModeIndex = mode.Index(index)
	return recompute(next, pitch.Neutral)
}

// SelectModeByName is SelectMode with a mode name.
func SelectModeByName(s State, name string) (State, error) {
	idx, err := mode.ByName(name)
	if err != nil {
		return s, fmt.Errorf("select mode: %w", err)
	}
	return SelectMode(s, idx), nil
}

// SetEnharmonicPreference records an explicit user choice for pc. It always
// overwrites the stored value and recomputes with the choice forcing ties.
func SetEnharmonicPreference(s State, pc pitch.Class, b pitch.Bias) State {
	next := s.clone()
	pc = pitch.New(int(pc))
	next.Preferences[pc] = b
	forced := pitch.Neutral
	if pc == next.Tonic {
		forced = b
	}
	return recompute(next, forced)
}

// ToggleTonicSpelling flips the preference for the current tonic.
func ToggleTonicSpelling(s State) State {
	if !s.Tonic.IsAmbiguous() {
		return s
	}
	current := s.Preferences.Lookup(s.Tonic)
	if current == pitch.Neutral {
		current = s.Display.PreferenceUsed
	}
	return SetEnharmonicPreference(s, s.Tonic, current.Toggle())
}

// SetExtension turns a ladder level on or off, cascading to the other levels.
func SetExtension(s State, level int, on bool) State {
	next := s.clone()
	next.Ladder = s.Ladder.Set(level, on)
	return next
}

// ToggleExtension flips a ladder level.
func ToggleExtension(s State, level int) State {
	return SetExtension(s, level, !s.Ladder.Enabled(level))
}

// SetRowMaxDegree sets the degree for one row, limited to what the ladder allows.
func SetRowMaxDegree(s State, row, degree int) State {
	next := s.clone()
	next.RowMaxDegree[row] = s.Ladder.Gate(degree)
	return next
}

// ClearRowMaxDegree drops a row override.
func ClearRowMaxDegree(s State, row int) State {
	next := s.clone()
	delete(next.RowMaxDegree, row)
	return next
}

// Randomize picks a random tonic and mode.
func Randomize(s State, rnd *rand.Rand) State {
	next := s.clone()
	next.Tonic = pitch.Class(rnd.Intn(pitch.Octave))
	next.ModeIndex = rnd.Intn(len(mode.Modes))
	return recompute(next, pitch.Neutral)
}

// MaxDegree is the effective degree for a row: its override gated by the
// ladder, or the ladder's own maximum.
func (s State) MaxDegree(row int) int {
	if d, ok := s.RowMaxDegree[row]; ok {
		return s.Ladder.Gate(d)
	}
	return s.Ladder.MaxDegree()
}

// Row returns the chord row for scale degree i.
func (s State) Row(i int) (chord.Row, bool) {
	if i < 0 || i >= len(s.Analysis.Degrees) {
		return chord.Row{}, false
	}
	return s.Analysis.Degrees[i].Row, true
}

// ChordName names row i at its effective degree.
func (s State) ChordName(i int) string {
	r, ok := s.Row(i)
	if !ok {
		return ""
	}
	return chord.ChordNameForRow(r, s.MaxDegree(i))
}

// ChordNotes lists row i's notes at its effective degree.
func (s State) ChordNotes(i int) string {
	r, ok := s.Row(i)
	if !ok {
		return ""
	}
	return chord.ChordNotesStringForRow(r, s.MaxDegree(i))
}
