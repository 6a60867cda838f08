package pitch

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidName is returned when a note name cannot be tokenized.
var ErrInvalidName = errors.New("invalid note name")

type (
	// Letter is a musical letter name in C-D-E-F-G-A-B order.
	Letter int

	// Name is a spelled note: a letter plus a signed accidental count
	// (positive sharps, negative flats).
	Name struct {
		Letter     Letter
		Accidental int
	}
)

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// Letters in an octave.
const NumLetters = 7

var (
	letterRunes = [NumLetters]rune{'C', 'D', 'E', 'F', 'G', 'A', 'B'}
	naturals    = [NumLetters]Class{0, 2, 4, 5, 7, 9, 11}
)

// maxAccidentals is the number of accidental characters a name may carry.
const maxAccidentals = 2

// Next returns the letter steps positions later in the cycle.
func (l Letter) Next(steps int) Letter {
	return Letter(Wrap(int(l)+steps, NumLetters))
}

// Natural returns the pitch class of the unaltered letter.
func (l Letter) Natural() Class {
	return naturals[Wrap(int(l), NumLetters)]
}

func (l Letter) String() string {
	return string(letterRunes[Wrap(int(l), NumLetters)])
}

// Class returns the pitch class the spelled name denotes.
func (n Name) Class() Class {
	return n.Letter.Natural().Add(n.Accidental)
}

// Symbol renders the accidental as "#"/"b" repeated, or "" for natural.
func (n Name) Symbol() string {
	switch {
	case n.Accidental > 0:
		return strings.Repeat("#", n.Accidental)
	case n.Accidental < 0:
		return strings.Repeat("b", -n.Accidental)
	}
	return ""
}

// Bias returns the spelling direction the accidental implies.
func (n Name) Bias() Bias {
	switch {
	case n.Accidental > 0:
		return Sharp
	case n.Accidental < 0:
		return Flat
	}
	return Neutral
}

func (n Name) String() string {
	return n.Letter.String() + n.Symbol()
}

// ParseName tokenizes a letter (A-G, any case) followed by up to two
// accidentals from {#, ♯, b, ♭, x}. "x" is a double sharp.
func ParseName(text string) (Name, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Name{}, fmt.Errorf("%w: empty", ErrInvalidName)
	}

	r, size := utf8.DecodeRuneInString(s)
	letter, ok := parseLetter(r)
	if !ok {
		return Name{}, fmt.Errorf("%w: %q: bad letter", ErrInvalidName, text)
	}

	n := Name{Letter: letter}
	count := 0
	for _, r := range s[size:] {
		step, ok := accidentalStep(r)
		if !ok {
			return Name{}, fmt.Errorf("%w: %q: bad accidental %q", ErrInvalidName, text, r)
		}
		count++
		if count > maxAccidentals {
			return Name{}, fmt.Errorf("%w: %q: too many accidentals", ErrInvalidName, text)
		}
		n.Accidental += step
	}
	return n, nil
}

// NoteNameToPc parses text and returns its pitch class. ok is false when the
// text is not a note name.
func NoteNameToPc(text string) (Class, bool) {
	n, err := ParseName(text)
	if err != nil {
		return 0, false
	}
	return n.Class(), true
}

func parseLetter(r rune) (Letter, bool) {
	switch r {
	case 'C', 'c':
		return C, true
	case 'D', 'd':
		return D, true
	case 'E', 'e':
		return E, true
	case 'F', 'f':
		return F, true
	case 'G', 'g':
		return G, true
	case 'A', 'a':
		return A, true
	case 'B', 'b':
		return B, true
	}
	return 0, false
}

func accidentalStep(r rune) (int, bool) {
	switch r {
	case '#', '♯':
		return 1, true
	case 'b', '♭':
		return -1, true
	case 'x':
		return 2, true
	}
	return 0, false
}
