// Package scale builds diatonic scales from a tonic and a mode and spells
// them with one letter per degree.
package scale

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/rapidmidiex/rmxharmony/mode"
	"github.com/rapidmidiex/rmxharmony/pitch"
)

// Flat bias penalises sharps, sharp bias penalises flats, when choosing an accidental.
const biasPenalty = 0.3

var logger = log.Default()

// SetLogger replaces the logger used for invariant warnings. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// Build returns the pitch classes of the mode starting on tonic.
func Build(tonic pitch.Class, p mode.Pattern) []pitch.Class {
	pcs := make([]pitch.Class, len(p.Offsets))
	for i, offset := range p.Offsets {
		pcs[i] = tonic.Add(offset)
	}
	return pcs
}

// Spell assigns consecutive letters to pcs starting at the tonic's letter and
// picks the accidental that reaches each pitch class.
func Spell(tonic pitch.Letter, bias pitch.Bias, pcs []pitch.Class) []pitch.Name {
	names := make([]pitch.Name, len(pcs))
	for i, pc := range pcs {
		letter := tonic.Next(i)
		names[i] = pitch.Name{Letter: letter, Accidental: accidentalFor(letter, pc, bias)}
	}
	if err := Check(names); err != nil {
		logger.Printf("WARN spell %v: %v", names, err)
	}
	return names
}

// accidentalFor finds the offset in [-2, 2] that moves letter onto pc.
func accidentalFor(letter pitch.Letter, pc pitch.Class, bias pitch.Bias) int {
	natural := letter.Natural()
	best, bestCost := 0, math.Inf(1)
	for o := -2; o <= 2; o++ {
		if natural.Add(o) != pc {
			continue
		}
		cost := math.Abs(float64(o))
		switch {
		case bias == pitch.Flat && o > 0:
			cost += biasPenalty
		case bias == pitch.Sharp && o < 0:
			cost += biasPenalty
		}
		if cost < bestCost {
			best, bestCost = o, cost
		}
	}
	if !math.IsInf(bestCost, 1) {
		return best
	}

	// Signed difference in (-6, 6].
	diff := pc.Interval(natural)
	if diff > pitch.Octave/2 {
		diff -= pitch.Octave
	}
	return diff
}

// Check verifies a spelled scale has seven notes on seven distinct letters.
func Check(names []pitch.Name) error {
	if len(names) != mode.Degrees {
		return fmt.Errorf("expected %d notes, got %d", mode.Degrees, len(names))
	}
	seen := make(map[pitch.Letter]bool, len(names))
	for _, n := range names {
		seen[n.Letter] = true
	}
	if len(seen) != mode.Degrees {
		return fmt.Errorf("expected %d distinct letters, got %d", mode.Degrees, len(seen))
	}
	return nil
}

// AccidentalScore sums a cost per note: 0 for natural, 1 for a single
// accidental, 3 for a double.
func AccidentalScore(names []pitch.Name) int {
	score := 0
	for _, n := range names {
		switch a := n.Accidental; {
		case a == 0:
		case a == 1 || a == -1:
			score++
		default:
			score += 3
		}
	}
	return score
}

// Strings renders spelled names.
func Strings(names []pitch.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}
