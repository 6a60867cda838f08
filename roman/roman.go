// Package roman labels scale degrees with roman numerals cased by triad quality.
package roman

import (
	"strings"

	"github.com/rapidmidiex/rmxharmony/chord"
	"github.com/rapidmidiex/rmxharmony/mode"
	"github.com/rapidmidiex/rmxharmony/pitch"
)

// DiminishedMark follows a diminished numeral.
const DiminishedMark = "°"

var numerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Defaults returns the uncased numerals.
func Defaults() []string {
	return append([]string(nil), numerals...)
}

// Compute returns one numeral per degree: lower case for minor, lower case
// with "°" for diminished, upper case otherwise. Scales that are not seven
// notes long get the default numerals.
func Compute(pcs []pitch.Class) []string {
	if len(pcs) != mode.Degrees {
		return Defaults()
	}

	out := make([]string, len(pcs))
	for i := range pcs {
		root := pcs[i]
		third := pcs[(i+2)%len(pcs)].Interval(root)
		fifth := pcs[(i+4)%len(pcs)].Interval(root)
		out[i] = Numeral(i, chord.TriadQuality(third, fifth))
	}
	return out
}

// Numeral returns the numeral for a zero-based degree and its triad quality.
func Numeral(degree int, q chord.Quality) string {
	n := numerals[pitch.Wrap(degree, len(numerals))]
	switch q {
	case chord.Minor:
		return strings.ToLower(n)
	case chord.Diminished:
		return strings.ToLower(n) + DiminishedMark
	}
	return n
}
