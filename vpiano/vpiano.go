package vpiano

import "github.com/rapidmidiex/rmxharmony/pitch"

type (
	Note struct {
		// MIDI note number, based on C4=60
		MIDI int
		// Name of the note, ex: "C", "F#"
		Name string
		// Denotes if note is sharp/flat ie. "black" key.
		IsAccidental bool
		// Denotes if the note belongs to the current scale.
		InScale bool
		// Scale degree (0-6) when InScale.
		Degree int
	}

	Notes []Note

	Octave int
)

const (
	Cneg2 Octave = iota - 2
	Cneg1
	C0
	C1
	C2
	C3
	C4
	C5
	C6
	C7
)

// MIDI number for C0
const midiC0 = 12

// MIDI returns the note number of pc in the given octave.
func (o Octave) MIDI(pc pitch.Class) int {
	return midiC0 + pitch.Octave*int(o) + int(pc)
}

// MakeOctaveNotes lays out the 12 keys of an octave. Keys that belong to the
// scale are labelled with the scale's spelling, the rest with the fallback
// table for bias.
func MakeOctaveNotes(octave Octave, pcs []pitch.Class, spelled []string, bias pitch.Bias) Notes {
	degrees := make(map[pitch.Class]int, len(pcs))
	for i, pc := range pcs {
		degrees[pc] = i
	}

	notes := make(Notes, 0, pitch.Octave)
	for i := 0; i < pitch.Octave; i++ {
		pc := pitch.Class(i)
		note := Note{
			MIDI:         octave.MIDI(pc),
			Name:         pc.Label(bias),
			IsAccidental: pc.IsAmbiguous(),
		}
		if d, ok := degrees[pc]; ok {
			note.InScale = true
			note.Degree = d
			if d < len(spelled) {
				note.Name = spelled[d]
			}
		}
		notes = append(notes, note)
	}
	return notes
}

// InScale returns only the keys that belong to the scale.
func (notes Notes) InScale() Notes {
	out := make(Notes, 0, len(notes))
	for _, n := range notes {
		if n.InScale {
			out = append(out, n)
		}
	}
	return out
}

func InRange(midiNum int) bool {
	return midiNum > 20 && midiNum < 128
}
