package chord

import (
	"strconv"
	"strings"

	"github.com/rapidmidiex/rmxharmony/pitch"
)

type (
	// Tone is one chord tone of a row: its chord degree (1, 3, ... 13), spelling,
	// and interval above the root.
	Tone struct {
		Degree     int         `json:"degree"`
		Name       string      `json:"name"`
		PitchClass pitch.Class `json:"pitchClass"`
		Interval   int         `json:"interval"`
	}

	// Row is the chord stacked in thirds on one scale degree, up to the thirteenth.
	Row struct {
		Index int    `json:"index"`
		Tones []Tone `json:"tones"`
	}
)

// Chord degrees in stacking order, with the scale steps above the root that supply them.
var (
	Degrees     = []int{1, 3, 5, 7, 9, 11, 13}
	degreeSteps = map[int]int{1: 0, 3: 2, 5: 4, 7: 6, 9: 1, 11: 3, 13: 5}
)

// NewRow builds the row rooted on scale degree i.
func NewRow(spelled []string, pcs []pitch.Class, i int) Row {
	n := len(pcs)
	row := Row{Index: i, Tones: make([]Tone, 0, len(Degrees))}
	if n == 0 {
		return row
	}
	root := pcs[pitch.Wrap(i, n)]
	for _, d := range Degrees {
		j := pitch.Wrap(i+degreeSteps[d], n)
		name := ""
		if j < len(spelled) {
			name = spelled[j]
		}
		row.Tones = append(row.Tones, Tone{
			Degree:     d,
			Name:       name,
			PitchClass: pcs[j],
			Interval:   pcs[j].Interval(root),
		})
	}
	return row
}

// Tone returns the tone for a chord degree.
func (r Row) Tone(degree int) (Tone, bool) {
	for _, t := range r.Tones {
		if t.Degree == degree {
			return t, true
		}
	}
	return Tone{}, false
}

func (r Row) interval(degree int) int {
	t, _ := r.Tone(degree)
	return t.Interval
}

func (r Row) name(degree int) string {
	t, _ := r.Tone(degree)
	return t.Name
}

// Root is the spelled root of the row.
func (r Row) Root() string {
	return r.name(1)
}

func (r Row) Quality() Quality {
	return TriadQuality(r.interval(3), r.interval(5))
}

func (r Row) Seventh() Seventh {
	return SeventhQuality(r.Quality(), r.interval(7))
}

// Alterations lists the extensions up to maxDegree that differ from their
// natural interval, ie: "b9", "#11".
func (r Row) Alterations(maxDegree int) []string {
	maxDegree = ResolveMaxDegree(maxDegree)
	var alts []string
	if maxDegree >= 9 {
		switch r.interval(9) {
		case 1:
			alts = append(alts, "b9")
		case 3:
			alts = append(alts, "#9")
		}
	}
	if maxDegree >= 11 {
		switch i := r.interval(11); {
		case i == 6:
			alts = append(alts, "#11")
		case i != 5:
			alts = append(alts, "b11")
		}
	}
	if maxDegree >= 13 {
		switch r.interval(13) {
		case 8:
			alts = append(alts, "b13")
		case 10:
			alts = append(alts, "#13")
		}
	}
	return alts
}

// Notes returns the spelled chord tones up to maxDegree.
func (r Row) Notes(maxDegree int) []string {
	maxDegree = ResolveMaxDegree(maxDegree)
	var notes []string
	for _, t := range r.Tones {
		if t.Degree <= maxDegree {
			notes = append(notes, t.Name)
		}
	}
	return notes
}

// PitchClasses returns the chord tones up to maxDegree.
func (r Row) PitchClasses(maxDegree int) []pitch.Class {
	maxDegree = ResolveMaxDegree(maxDegree)
	var pcs []pitch.Class
	for _, t := range r.Tones {
		if t.Degree <= maxDegree {
			pcs = append(pcs, t.PitchClass)
		}
	}
	return pcs
}

// ChordNameForRow names the row's chord stacked up to maxDegree. Past the
// seventh the seventh symbol is condensed around the highest extension and
// altered extensions follow in parentheses, ie: "Cmaj13(#11)".
func ChordNameForRow(r Row, maxDegree int) string {
	maxDegree = ResolveMaxDegree(maxDegree)
	root := r.Root()
	switch maxDegree {
	case 5:
		return root + r.Quality().Suffix()
	case 7:
		return root + r.Seventh().Label()
	}

	lbl := seventhLabels[r.Seventh()]
	name := root + lbl.prefix + strconv.Itoa(maxDegree) + lbl.tail
	if alts := r.Alterations(maxDegree); len(alts) > 0 {
		name += "(" + strings.Join(alts, ",") + ")"
	}
	return name
}

// ChordNotesStringForRow joins the row's notes up to maxDegree with " - ".
func ChordNotesStringForRow(r Row, maxDegree int) string {
	return strings.Join(r.Notes(maxDegree), NoteSeparator)
}

// ResolveMaxDegree maps a requested degree onto 5, 7, 9, 11 or 13. A request
// for 3 means the triad, so it resolves to 5.
func ResolveMaxDegree(d int) int {
	switch {
	case d <= 5:
		return 5
	case d >= 13:
		return 13
	case d%2 == 0:
		return d - 1
	}
	return d
}
