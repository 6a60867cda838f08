package scale_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/rapidmidiex/rmxharmony/mode"
	"github.com/rapidmidiex/rmxharmony/pitch"
	"github.com/rapidmidiex/rmxharmony/scale"
	"github.com/stretchr/testify/require"
)

func TestBuildAllTonicsAndModes(t *testing.T) {
	for pc := pitch.Class(0); pc < pitch.Octave; pc++ {
		for _, m := range mode.Modes {
			got := scale.Build(pc, m)
			require.Len(t, got, mode.Degrees)

			seen := make(map[pitch.Class]bool)
			for i, offset := range m.Offsets {
				require.Equal(t, pitch.New(int(pc)+offset), got[i])
				seen[got[i]] = true
			}
			require.Len(t, seen, mode.Degrees, "%v %s has duplicates", pc, m.Name)
		}
	}
}

func TestSpellUsesEveryLetterInOrder(t *testing.T) {
	for pc := pitch.Class(0); pc < pitch.Octave; pc++ {
		for mi := range mode.Modes {
			for _, forced := range []pitch.Bias{pitch.Neutral, pitch.Sharp, pitch.Flat} {
				d := scale.ComputeDisplay(pc, mi, forced, nil)
				require.NoError(t, scale.Check(d.Names))

				first := d.Names[0].Letter
				for i, n := range d.Names {
					require.Equal(t, first.Next(i), n.Letter)
					require.Equal(t, d.PitchClasses[i], n.Class())
				}
			}
		}
	}
}

func TestCIonian(t *testing.T) {
	data, err := scale.BuildData("C", "Ionian (Major)")
	require.NoError(t, err)
	require.Equal(t, []pitch.Class{0, 2, 4, 5, 7, 9, 11}, data.PitchClasses)
	require.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, data.Spelled)
}

func TestBuildDataKeepsTonicLetter(t *testing.T) {
	sharp, err := scale.BuildData("C#", "major")
	require.NoError(t, err)
	require.Equal(t, []string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}, sharp.Spelled)

	flat, err := scale.BuildData("Db", "major")
	require.NoError(t, err)
	require.Equal(t, []string{"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"}, flat.Spelled)
	require.Equal(t, sharp.PitchClasses, flat.PitchClasses)

	lydian, err := scale.BuildData("G#", "lydian")
	require.NoError(t, err)
	require.Equal(t, []string{"G#", "A#", "B#", "C##", "D#", "E#", "F##"}, lydian.Spelled)

	_, err = scale.BuildData("H", "major")
	require.ErrorIs(t, err, pitch.ErrInvalidName)
	_, err = scale.BuildData("C", "bebop")
	require.ErrorIs(t, err, mode.ErrUnknownMode)
}

func TestAccidentalScore(t *testing.T) {
	names := []pitch.Name{
		{Letter: pitch.C},
		{Letter: pitch.D, Accidental: 1},
		{Letter: pitch.E, Accidental: -1},
		{Letter: pitch.F, Accidental: 2},
		{Letter: pitch.G, Accidental: -2},
	}
	require.Equal(t, 8, scale.AccidentalScore(names))
}

func TestResolveIsMinimal(t *testing.T) {
	for _, pc := range []pitch.Class{1, 3, 6, 8, 10} {
		for mi := range mode.Modes {
			for _, stored := range []pitch.Bias{pitch.Neutral, pitch.Sharp, pitch.Flat} {
				prefs := scale.Preferences{}
				if stored != pitch.Neutral {
					prefs[pc] = stored
				}
				res := scale.Resolve(pc, mi, pitch.Neutral, prefs)

				pcs := scale.Build(pc, mode.At(mi))
				chosen := scale.AccidentalScore(scale.Spell(res.Tonic.Letter, res.Preference, pcs))
				otherTonic, _ := pitch.ParseName(pc.Label(res.Preference.Toggle()))
				other := scale.AccidentalScore(scale.Spell(otherTonic.Letter, res.Preference.Toggle(), pcs))

				require.LessOrEqual(t, chosen, other)
				if chosen == other {
					want := stored
					if want == pitch.Neutral {
						want = pitch.Flat
					}
					require.True(t, res.Tied)
					require.Equal(t, want, res.Preference)
				} else {
					require.False(t, res.Tied)
				}
			}
		}
	}
}

func TestResolveFSharpIonian(t *testing.T) {
	// F# major and Gb major both carry six accidentals.
	d := scale.ComputeDisplay(6, mode.Ionian, pitch.Neutral, nil)
	require.Equal(t, "Gb", d.TonicLabel)
	require.Equal(t, []string{"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"}, d.Spelled)

	prefs := scale.Preferences{6: pitch.Sharp}
	d = scale.ComputeDisplay(6, mode.Ionian, pitch.Neutral, prefs)
	require.Equal(t, "F#", d.TonicLabel)
	require.Equal(t, []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}, d.Spelled)
	require.Equal(t, pitch.Sharp, d.PreferenceUsed)

	d = scale.ComputeDisplay(6, mode.Ionian, pitch.Flat, prefs)
	require.Equal(t, "Gb", d.TonicLabel)
	require.Equal(t, pitch.Sharp, prefs[6], "forced resolution must not persist")

	// The tie-break default is stored when nothing is.
	empty := scale.Preferences{}
	scale.ComputeDisplay(6, mode.Ionian, pitch.Neutral, empty)
	require.Equal(t, pitch.Flat, empty[6])

	// A spelling won on score is never stored.
	scored := scale.Preferences{}
	d = scale.ComputeDisplay(6, mode.Lydian, pitch.Neutral, scored)
	require.Equal(t, "Gb", d.TonicLabel)
	require.Empty(t, scored)
}

func TestResolveScoreWins(t *testing.T) {
	prefs := scale.Preferences{1: pitch.Sharp, 8: pitch.Flat}

	d := scale.ComputeDisplay(1, mode.Ionian, pitch.Sharp, prefs)
	require.Equal(t, "Db", d.TonicLabel)

	d = scale.ComputeDisplay(8, mode.Aeolian, pitch.Neutral, prefs)
	require.Equal(t, "G#", d.TonicLabel)
	require.Equal(t, pitch.Flat, prefs[8], "a score decision keeps the stored preference")

	d = scale.ComputeDisplay(8, mode.Ionian, pitch.Neutral, prefs)
	require.Equal(t, "Ab", d.TonicLabel)

	d = scale.ComputeDisplay(10, mode.Ionian, pitch.Neutral, prefs)
	require.Equal(t, []string{"Bb", "C", "D", "Eb", "F", "G", "A"}, d.Spelled)
}

func TestNonAmbiguousBypassesResolver(t *testing.T) {
	prefs := scale.Preferences{}
	d := scale.ComputeDisplay(4, mode.Phrygian, pitch.Neutral, prefs)
	require.Equal(t, "E", d.TonicLabel)
	require.Equal(t, []string{"E", "F", "G", "A", "B", "C", "D"}, d.Spelled)
	require.Equal(t, pitch.Neutral, d.PreferenceUsed)
	require.Empty(t, prefs)
	require.Equal(t, 4, d.KeyIdx)
}

func TestSpellWarnsOnMalformedInput(t *testing.T) {
	var buf bytes.Buffer
	scale.SetLogger(log.New(&buf, "", 0))
	defer scale.SetLogger(log.Default())

	names := scale.Spell(pitch.C, pitch.Neutral, []pitch.Class{0, 2, 4})
	require.Len(t, names, 3)
	require.Contains(t, buf.String(), "WARN")
}

func TestSpellFallsBackToSignedDifference(t *testing.T) {
	// F# on a C letter is out of reach of a double accidental.
	names := scale.Spell(pitch.C, pitch.Neutral, []pitch.Class{6})
	require.Equal(t, 6, names[0].Accidental)

	names = scale.Spell(pitch.C, pitch.Neutral, []pitch.Class{7})
	require.Equal(t, -5, names[0].Accidental)
}
