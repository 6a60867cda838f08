package harmony_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/rapidmidiex/rmxharmony/harmony"
	"github.com/rapidmidiex/rmxharmony/mode"
	"github.com/rapidmidiex/rmxharmony/pitch"
	"github.com/rapidmidiex/rmxharmony/scale"
	"github.com/stretchr/testify/require"
)

func TestNewIsCIonian(t *testing.T) {
	s := harmony.New()
	require.Equal(t, "C Ionian", s.Title())
	require.Equal(t, []pitch.Class{0, 2, 4, 5, 7, 9, 11}, s.Display.PitchClasses)
	require.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, s.Display.Spelled)
	require.Equal(t, []string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}, s.Romans)

	triads := s.Analysis.Categories.Triads
	require.Equal(t, "C", triads[0].Name)
	require.Equal(t, "C - E - G", triads[0].NotesString())
	require.Equal(t, "Dm", triads[1].Name)
	require.Equal(t, "D - F - A", triads[1].NotesString())

	sevenths := s.Analysis.Categories.Sevenths
	require.Equal(t, "Cmaj7", sevenths[0].Name)
	require.Equal(t, "G7", sevenths[4].Name)
	require.Equal(t, "G - B - D - F", sevenths[4].NotesString())
}

func TestRotate(t *testing.T) {
	s := harmony.New()

	require.Equal(t, s, harmony.Rotate(s, 7))
	require.Equal(t, s, harmony.Rotate(s, 0))
	require.Equal(t, s, harmony.Rotate(s, -14))

	d := harmony.Rotate(s, 1)
	require.Equal(t, "D Dorian", d.Title())
	require.Equal(t, []string{"D", "E", "F", "G", "A", "B", "C"}, d.Display.Spelled)
	require.ElementsMatch(t, s.Display.PitchClasses, d.Display.PitchClasses)

	b := harmony.Rotate(s, -1)
	require.Equal(t, "B Locrian", b.Title())
	require.Equal(t, d, harmony.Rotate(s, 8))

	back := harmony.Rotate(d, 6)
	require.Equal(t, s.Tonic, back.Tonic)
	require.Equal(t, s.ModeIndex, back.ModeIndex)
	require.Equal(t, s.Display.Spelled, back.Display.Spelled)
}

func TestRotateKeepsCollectionOnBlackKeys(t *testing.T) {
	s := harmony.Transpose(harmony.New(), 1)
	require.Equal(t, "Db Ionian", s.Title())

	r := harmony.Rotate(s, 1)
	require.Equal(t, "Eb Dorian", r.Title())
	require.ElementsMatch(t, s.Display.PitchClasses, r.Display.PitchClasses)
}

func TestTranspose(t *testing.T) {
	s := harmony.New()
	require.Equal(t, s, harmony.Transpose(s, 12))
	require.Equal(t, s, harmony.Transpose(s, -24))

	d := harmony.Transpose(s, 2)
	require.Equal(t, "D Ionian", d.Title())
	require.Equal(t, []string{"D", "E", "F#", "G", "A", "B", "C#"}, d.Display.Spelled)

	b := harmony.Transpose(s, -1)
	require.Equal(t, pitch.Class(11), b.Tonic)
	require.Equal(t, []string{"B", "C#", "D#", "E", "F#", "G#", "A#"}, b.Display.Spelled)

	dorian := harmony.Transpose(harmony.Rotate(s, 1), 3)
	require.Equal(t, "F Dorian", dorian.Title())
	require.Equal(t, mode.Dorian, dorian.ModeIndex)
}

func TestTogglePreference(t *testing.T) {
	gb := harmony.Transpose(harmony.New(), 6)
	require.Equal(t, "Gb", gb.Display.TonicLabel)
	require.Equal(t, pitch.Flat, gb.Preferences[6])

	fs := harmony.ToggleTonicSpelling(gb)
	require.Equal(t, "F#", fs.Display.TonicLabel)
	require.Equal(t, pitch.Sharp, fs.Preferences[6])
	require.Equal(t, pitch.Flat, gb.Preferences[6], "previous state is unchanged")

	// Rotating away and back keeps the stored preference.
	round := harmony.Rotate(harmony.Rotate(fs, 3), 4)
	require.Equal(t, "F#", round.Display.TonicLabel)

	require.Equal(t, "Gb", harmony.ToggleTonicSpelling(fs).Display.TonicLabel)

	c := harmony.New()
	require.Equal(t, c, harmony.ToggleTonicSpelling(c))
}

func TestRotateBareState(t *testing.T) {
	s := harmony.State{Tonic: 0, ModeIndex: mode.Ionian}
	got := harmony.Rotate(s, 1)
	require.Equal(t, "D Dorian", got.Title())
	require.Equal(t, harmony.Rotate(harmony.New(), 1).Display, got.Display)
}

func TestSelectedSpellingSurvivesScoreDecisions(t *testing.T) {
	fs, err := harmony.SelectTonic(harmony.New(), "F#")
	require.NoError(t, err)
	require.Equal(t, pitch.Sharp, fs.Preferences[6])

	lydian := harmony.SelectMode(fs, mode.Lydian)
	require.Equal(t, "Gb Lydian", lydian.Title())
	require.Equal(t, pitch.Sharp, lydian.Preferences[6])

	ionian := harmony.SelectMode(lydian, mode.Ionian)
	require.Equal(t, "F# Ionian", ionian.Title())
}

func TestSetEnharmonicPreferenceDoesNotAlias(t *testing.T) {
	s := harmony.New()
	next := harmony.SetEnharmonicPreference(s, 6, pitch.Sharp)
	require.Equal(t, pitch.Sharp, next.Preferences[6])
	_, ok := s.Preferences[6]
	require.False(t, ok)

	fs := harmony.Transpose(next, 6)
	require.Equal(t, "F#", fs.Display.TonicLabel)
}

func TestSelectTonic(t *testing.T) {
	s, err := harmony.SelectTonic(harmony.New(), "F#")
	require.NoError(t, err)
	require.Equal(t, "F# Ionian", s.Title())

	s, err = harmony.SelectTonic(s, "e")
	require.NoError(t, err)
	require.Equal(t, "E Ionian", s.Title())

	_, err = harmony.SelectTonic(s, "H")
	require.ErrorIs(t, err, pitch.ErrInvalidName)

	m, err := harmony.SelectModeByName(s, "minor")
	require.NoError(t, err)
	require.Equal(t, "E Aeolian", m.Title())
	require.Equal(t, []string{"E", "F#", "G", "A", "B", "C", "D"}, m.Display.Spelled)

	_, err = harmony.SelectModeByName(s, "bebop")
	require.ErrorIs(t, err, mode.ErrUnknownMode)
}

func TestExtensions(t *testing.T) {
	s := harmony.New()
	require.Equal(t, "G", s.ChordName(4))

	s9 := harmony.SetExtension(s, 9, true)
	require.True(t, s9.Ladder.Enabled(7))
	require.Equal(t, "G9", s9.ChordName(4))
	require.Equal(t, "G - B - D - F - A", s9.ChordNotes(4))
	require.Equal(t, "G", s.ChordName(4), "previous state is unchanged")

	off := harmony.ToggleExtension(s9, 7)
	require.Equal(t, 5, off.Ladder.MaxDegree())

	// Row overrides cannot reach past the ladder.
	gated := harmony.SetRowMaxDegree(s, 0, 13)
	require.Equal(t, 5, gated.MaxDegree(0))
	require.Equal(t, "C", gated.ChordName(0))
	require.Equal(t, "C - E - G", gated.ChordNotes(0))
	require.Empty(t, s.RowMaxDegree)

	s13 := harmony.SetExtension(s, 13, true)
	row := harmony.SetRowMaxDegree(s13, 0, 9)
	require.Equal(t, "Cmaj9", row.ChordName(0))
	require.Equal(t, "Dm13", row.ChordName(1))

	// Lowering the ladder also limits existing overrides.
	lowered := harmony.SetExtension(row, 7, false)
	require.Equal(t, "C", lowered.ChordName(0))
	require.Equal(t, 9, lowered.RowMaxDegree[0])

	triad := harmony.SetRowMaxDegree(row, 0, 3)
	require.Equal(t, 5, triad.MaxDegree(0))

	cleared := harmony.ClearRowMaxDegree(row, 0)
	require.Equal(t, "Cmaj13", cleared.ChordName(0))

	require.Equal(t, "", s.ChordName(7))
}

func TestRandomize(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s := harmony.New()
	for i := 0; i < 50; i++ {
		s = harmony.Randomize(s, rnd)
		require.NoError(t, scale.Check(s.Display.Names))
		require.Len(t, s.Romans, mode.Degrees)
	}
}

func TestControllerSerialisesTransitions(t *testing.T) {
	c := harmony.NewController(harmony.New(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 14; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RotateDegrees(1)
		}()
	}
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.TransposeSemitoneBy(1)
		}()
	}
	wg.Wait()

	got := c.State()
	require.Equal(t, pitch.Class(0), got.Tonic)
	require.Equal(t, mode.Ionian, got.ModeIndex)
	require.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, got.Display.Spelled)

	got = c.SetEnharmonicPreference(6, pitch.Sharp)
	require.Equal(t, pitch.Sharp, got.Preferences[6])
}
