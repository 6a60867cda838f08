package chord

import (
	"io"
	"log"
	"strings"

	"github.com/rapidmidiex/rmxharmony/pitch"
)

// NoteSeparator joins note names in chord listings.
const NoteSeparator = " - "

var logger = log.Default()

// SetLogger replaces the logger used for invariant warnings. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

type (
	// Entry is one named chord with its notes. Valid is false when the
	// intervals matched no known quality; the name then ends in "?".
	Entry struct {
		Name  string   `json:"name"`
		Notes []string `json:"notes"`
		Valid bool     `json:"valid"`
	}

	Categories struct {
		Triads    []Entry `json:"triads"`
		Sevenths  []Entry `json:"sevenths"`
		Ninths    []Entry `json:"ninths"`
		Suspended []Entry `json:"suspended"`
	}

	// Degree summarises the chord built on one scale degree.
	Degree struct {
		Index      int         `json:"index"`
		Root       string      `json:"root"`
		PitchClass pitch.Class `json:"pitchClass"`
		Quality    Quality     `json:"quality"`
		Seventh    Seventh     `json:"seventh"`
		Row        Row         `json:"row"`
	}

	Analysis struct {
		Categories Categories `json:"categories"`
		Degrees    []Degree   `json:"degrees"`
	}
)

// NotesString joins the entry's notes, ie: "C - E - G".
func (e Entry) NotesString() string {
	return strings.Join(e.Notes, NoteSeparator)
}

func (e Entry) String() string {
	return e.Name + "   " + e.NotesString()
}

// Analyze builds the triad, seventh, ninth and suspended chords on every
// degree of a spelled scale.
func Analyze(spelled []string, pcs []pitch.Class) Analysis {
	if len(spelled) != len(pcs) {
		logger.Printf("WARN analyze: %d names for %d pitch classes", len(spelled), len(pcs))
		if len(spelled) < len(pcs) {
			pcs = pcs[:len(spelled)]
		}
	}

	var a Analysis
	for i := range pcs {
		r := NewRow(spelled, pcs, i)
		q := r.Quality()
		s := r.Seventh()
		root := r.Root()

		a.Categories.Triads = append(a.Categories.Triads, Entry{
			Name:  root + q.Suffix(),
			Notes: r.Notes(5),
			Valid: q.Valid(),
		})
		a.Categories.Sevenths = append(a.Categories.Sevenths, Entry{
			Name:  root + s.Label(),
			Notes: r.Notes(7),
			Valid: s.Valid(),
		})
		a.Categories.Ninths = append(a.Categories.Ninths, ninth(r, s))
		a.Categories.Suspended = append(a.Categories.Suspended, suspended(r)...)

		a.Degrees = append(a.Degrees, Degree{
			Index:      i,
			Root:       root,
			PitchClass: pcs[i],
			Quality:    q,
			Seventh:    s,
			Row:        r,
		})
	}
	return a
}

func ninth(r Row, s Seventh) Entry {
	e := Entry{
		Name:  r.Root() + s.NinthLabel(),
		Notes: []string{r.name(1), r.name(3), r.name(5), r.name(7), r.name(9)},
		Valid: s.Valid() && r.interval(9) == 2,
	}
	if s.Valid() && !e.Valid {
		e.Name += "?"
	}
	return e
}

// suspended returns the sus2 and sus4 chords: the second or fourth replaces the third.
func suspended(r Row) []Entry {
	sus := func(suffix string, degree, want int) Entry {
		e := Entry{
			Name:  r.Root() + suffix,
			Notes: []string{r.name(1), r.name(degree), r.name(5)},
			Valid: r.interval(degree) == want,
		}
		if !e.Valid {
			e.Name += "?"
		}
		return e
	}
	return []Entry{
		sus("sus2", 9, 2),
		sus("sus4", 11, 5),
	}
}
