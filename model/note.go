package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Accidental uint8

const (
	Natural Accidental = iota
	Sharp
	Flat
)

func (a Accidental) Suffix() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	}
	return ""
}

// Note is one extracted note event: a scale degree 1-7 plus an optional
// alteration. Two notes are the same pattern element iff they are ==, so
// "4#" and "5b" never match each other.
type Note struct {
	Degree     uint8
	Accidental Accidental
}

func (n Note) String() string {
	return strconv.Itoa(int(n.Degree)) + n.Accidental.Suffix()
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON only accepts the compact token form. Full validation with
// the unicode spellings lives in the note package.
func (n *Note) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if len(s) == 0 || len(s) > 2 || s[0] < '1' || s[0] > '7' {
		return fmt.Errorf("invalid note token %q", s)
	}
	res := Note{Degree: s[0] - '0'}
	if len(s) == 2 {
		switch s[1] {
		case '#':
			res.Accidental = Sharp
		case 'b':
			res.Accidental = Flat
		default:
			return fmt.Errorf("invalid note token %q", s)
		}
	}
	*n = res
	return nil
}

type Notes = []Note
