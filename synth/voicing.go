package synth

import (
	"github.com/rapidmidiex/rmxharmony/pitch"
	"github.com/rapidmidiex/rmxharmony/vpiano"
	"gitlab.com/gomidi/midi/v2"
)

const maxMIDI = 127

// Voice stacks the chord tones upwards from the root in the given octave,
// each tone strictly above the previous one. Keys above 127 are dropped.
func Voice(pcs []pitch.Class, octave vpiano.Octave) []uint8 {
	keys := make([]uint8, 0, len(pcs))
	prev := 0
	for i, pc := range pcs {
		key := octave.MIDI(pc)
		if i > 0 {
			step := pc.Interval(pcs[i-1])
			if step == 0 {
				step = pitch.Octave
			}
			key = prev + step
		}
		prev = key
		if key < 0 || key > maxMIDI {
			continue
		}
		keys = append(keys, uint8(key))
	}
	return keys
}

// ChordMessages returns the note-on and note-off messages for keys on channel 0.
func ChordMessages(keys []uint8, velocity uint8) (on, off []midi.Message) {
	for _, k := range keys {
		on = append(on, midi.NoteOn(0, k, velocity))
		off = append(off, midi.NoteOff(0, k))
	}
	return on, off
}
