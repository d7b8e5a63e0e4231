package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/motifdex/model"
)

var ErrInvalidNote = errors.New("invalid note")

var solfege = [...]string{"Do", "Re", "Mi", "Fa", "Sol", "La", "Si"}

// semitones above the tonic for each major scale degree
var degreeOffsets = [...]int{0, 2, 4, 5, 7, 9, 11}

// pitch class above the tonic -> spelled note, black keys as sharps
var pitchClasses = [...]model.Note{
	{Degree: 1}, {Degree: 1, Accidental: model.Sharp},
	{Degree: 2}, {Degree: 2, Accidental: model.Sharp},
	{Degree: 3},
	{Degree: 4}, {Degree: 4, Accidental: model.Sharp},
	{Degree: 5}, {Degree: 5, Accidental: model.Sharp},
	{Degree: 6}, {Degree: 6, Accidental: model.Sharp},
	{Degree: 7},
}

// Parse turns a token such as "5", "4#" or "7b" into a Note. The unicode
// signs ♯ and ♭ are accepted as well.
func Parse(token string) (model.Note, error) {
	t := strings.TrimSpace(token)
	var n model.Note

	switch {
	case strings.HasSuffix(t, "#"), strings.HasSuffix(t, "♯"):
		n.Accidental = model.Sharp
		t = strings.TrimSuffix(strings.TrimSuffix(t, "#"), "♯")
	case strings.HasSuffix(t, "b"), strings.HasSuffix(t, "♭"):
		n.Accidental = model.Flat
		t = strings.TrimSuffix(strings.TrimSuffix(t, "b"), "♭")
	}

	if len(t) != 1 || t[0] < '1' || t[0] > '7' {
		return model.Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, token)
	}
	n.Degree = t[0] - '0'
	return n, nil
}

func ParseSequence(tokens []string) (model.Notes, error) {
	res := make(model.Notes, 0, len(tokens))
	for i, token := range tokens {
		n, err := Parse(token)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		res = append(res, n)
	}
	return res, nil
}

func Tokens(notes model.Notes) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.String()
	}
	return res
}

// Name returns the solfège name, e.g. "Sol#" or "Sib".
func Name(n model.Note) string {
	if n.Degree < 1 || int(n.Degree) > len(solfege) {
		return n.String()
	}
	return solfege[n.Degree-1] + n.Accidental.Suffix()
}

func HasAlteration(n model.Note) bool {
	return n.Accidental != model.Natural
}

// MidiKey places the note in the octave starting at tonic.
func MidiKey(n model.Note, tonic uint8) uint8 {
	key := int(tonic) + degreeOffsets[(int(n.Degree)+6)%7]
	switch n.Accidental {
	case model.Sharp:
		key++
	case model.Flat:
		key--
	}
	if key < 0 {
		return 0
	}
	if key > 127 {
		return 127
	}
	return uint8(key)
}

// FromMidiKey spells a MIDI key relative to tonic. The octave is dropped
// since degree tokens carry none.
func FromMidiKey(key, tonic uint8) model.Note {
	pc := (int(key) - int(tonic)) % 12
	if pc < 0 {
		pc += 12
	}
	return pitchClasses[pc]
}
