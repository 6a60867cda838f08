package scale

import (
	"github.com/rapidmidiex/rmxharmony/mode"
	"github.com/rapidmidiex/rmxharmony/pitch"
)

type (
	// Preferences holds the remembered spelling choice per ambiguous pitch class.
	Preferences map[pitch.Class]pitch.Bias

	// Resolution is the outcome of choosing a tonic spelling.
	Resolution struct {
		Tonic      pitch.Name
		Preference pitch.Bias
		// Tied is set when both spellings scored the same.
		Tied bool
	}

	// Display is a fully spelled scale ready for rendering.
	Display struct {
		TonicLabel     string        `json:"tonicLabel"`
		PitchClasses   []pitch.Class `json:"pitchClasses"`
		Spelled        []string      `json:"spelled"`
		Names          []pitch.Name  `json:"-"`
		KeyIdx         int           `json:"keyIdx"`
		ModeIndex      int           `json:"modeIndex"`
		PreferenceUsed pitch.Bias    `json:"preferenceUsed"`
	}
)

// Lookup returns the stored preference for pc, or Neutral.
func (p Preferences) Lookup(pc pitch.Class) pitch.Bias {
	if p == nil {
		return pitch.Neutral
	}
	return p[pc]
}

// tonicName spells pc on a single letter: the letter below for sharps,
// above for flats and neutral.
func tonicName(pc pitch.Class, b pitch.Bias) pitch.Name {
	n, _ := pitch.ParseName(pc.Label(b))
	return n
}

// Resolve chooses between the sharp and flat tonic spellings of pc by
// comparing the accidental score of the whole scale. Ties go to forced, then
// the stored preference, then flat. Pass pitch.Neutral for no forced choice.
func Resolve(pc pitch.Class, modeIndex int, forced pitch.Bias, prefs Preferences) Resolution {
	if !pc.IsAmbiguous() {
		return Resolution{Tonic: tonicName(pc, pitch.Neutral), Preference: pitch.Neutral}
	}

	pcs := Build(pc, mode.At(modeIndex))
	sharp := tonicName(pc, pitch.Sharp)
	flat := tonicName(pc, pitch.Flat)
	sharpScore := AccidentalScore(Spell(sharp.Letter, pitch.Sharp, pcs))
	flatScore := AccidentalScore(Spell(flat.Letter, pitch.Flat, pcs))

	switch {
	case sharpScore < flatScore:
		return Resolution{Tonic: sharp, Preference: pitch.Sharp}
	case flatScore < sharpScore:
		return Resolution{Tonic: flat, Preference: pitch.Flat}
	}

	pref := forced
	if pref == pitch.Neutral {
		pref = prefs.Lookup(pc)
	}
	if pref == pitch.Sharp {
		return Resolution{Tonic: sharp, Preference: pitch.Sharp, Tied: true}
	}
	return Resolution{Tonic: flat, Preference: pitch.Flat, Tied: true}
}

// ComputeDisplay resolves the tonic spelling of pc in the given mode and
// spells the scale. When an ambiguous pc is decided by the tie-break and not
// forced, the preference used is stored back into prefs. A spelling decided by
// score leaves prefs alone. prefs may be nil.
func ComputeDisplay(pc pitch.Class, modeIndex int, forced pitch.Bias, prefs Preferences) Display {
	pc = pitch.New(int(pc))
	modeIndex = mode.Index(modeIndex)

	res := Resolve(pc, modeIndex, forced, prefs)
	if res.Tied && forced == pitch.Neutral && prefs != nil {
		prefs[pc] = res.Preference
	}

	pcs := Build(pc, mode.At(modeIndex))
	names := Spell(res.Tonic.Letter, res.Tonic.Bias(), pcs)
	return Display{
		TonicLabel:     res.Tonic.String(),
		PitchClasses:   pcs,
		Spelled:        Strings(names),
		Names:          names,
		KeyIdx:         int(pc),
		ModeIndex:      modeIndex,
		PreferenceUsed: res.Preference,
	}
}
