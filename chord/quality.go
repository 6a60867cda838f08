// Package chord derives diatonic chord qualities and names from scale pitch classes.
package chord

type (
	// Quality is a triad quality, taken from the third and fifth above the root.
	Quality int

	// Seventh is a seventh-chord quality: a triad quality plus the seventh above the root.
	Seventh int

	seventhLabel struct {
		// Full symbol, ie: "m7b5".
		label string
		// Symbol with the ninth in place of the seventh.
		ninth string
		// Condensed symbol around an extension numeral, ie: "m" + "11" + "b5".
		prefix string
		tail   string
	}
)

const (
	Unknown Quality = iota
	Major
	Minor
	Diminished
	Augmented
)

const (
	SeventhUnknown Seventh = iota
	Maj7
	Dom7
	Min7
	MinMaj7
	HalfDim7
	Dim7
	Aug7
	AugMaj7
)

var triads = map[[2]int]Quality{
	{4, 7}: Major,
	{3, 7}: Minor,
	{3, 6}: Diminished,
	{4, 8}: Augmented,
}

var sevenths = map[Quality]map[int]Seventh{
	Major:      {11: Maj7, 10: Dom7},
	Minor:      {10: Min7, 11: MinMaj7},
	Diminished: {10: HalfDim7, 9: Dim7},
	Augmented:  {10: Aug7, 11: AugMaj7},
}

var seventhLabels = map[Seventh]seventhLabel{
	SeventhUnknown: {label: "?7", ninth: "?9", prefix: "?"},
	Maj7:           {label: "maj7", ninth: "maj9", prefix: "maj"},
	Dom7:           {label: "7", ninth: "9"},
	Min7:           {label: "m7", ninth: "m9", prefix: "m"},
	MinMaj7:        {label: "m(maj7)", ninth: "m(maj9)", prefix: "m(maj", tail: ")"},
	HalfDim7:       {label: "m7b5", ninth: "m9b5", prefix: "m", tail: "b5"},
	Dim7:           {label: "dim7", ninth: "dim9", prefix: "dim"},
	Aug7:           {label: "7#5", ninth: "9#5", tail: "#5"},
	AugMaj7:        {label: "maj7#5", ninth: "maj9#5", prefix: "maj", tail: "#5"},
}

// TriadQuality classifies a triad by its third and fifth in semitones above the root.
func TriadQuality(third, fifth int) Quality {
	return triads[[2]int{third, fifth}]
}

// SeventhQuality classifies a seventh chord from its triad and the seventh above the root.
func SeventhQuality(q Quality, seventh int) Seventh {
	return sevenths[q][seventh]
}

// Suffix is the triad symbol appended to the root name.
func (q Quality) Suffix() string {
	switch q {
	case Major:
		return ""
	case Minor:
		return "m"
	case Diminished:
		return "dim"
	case Augmented:
		return "aug"
	}
	return "?"
}

func (q Quality) Valid() bool {
	return q != Unknown
}

func (q Quality) String() string {
	switch q {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case Augmented:
		return "augmented"
	}
	return "unknown"
}

// Label is the seventh-chord symbol appended to the root name.
func (s Seventh) Label() string {
	return seventhLabels[s].label
}

// NinthLabel is the symbol with the ninth stacked on this seventh.
func (s Seventh) NinthLabel() string {
	return seventhLabels[s].ninth
}

func (s Seventh) Valid() bool {
	return s != SeventhUnknown
}

func (s Seventh) String() string {
	return s.Label()
}
