// Package report renders analyses for people.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/motifdex/highlight"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
	"github.com/jsphweid/motifdex/pattern"
)

type Options struct {
	// Color highlights each note with the colour of its first pattern.
	Color bool
}

func Text(w io.Writer, a model.Analysis, opts Options) error {
	ew := &errWriter{w: w}
	ex := a.Extraction

	ew.printf("analysis %s\n", a.ID)
	if ex.Clef != "" {
		ew.printf("clef: %s\n", ex.Clef)
	}
	if ex.Measures > 0 {
		ew.printf("measures: %d\n", ex.Measures)
	}
	ew.printf("notes: %d\n", len(ex.Notes))
	ew.printf("alterations: %d\n", alterations(ex.Notes))

	if len(a.Matches) == 0 {
		ew.printf("\nno patterns found\n")
	} else {
		ew.printf("\npatterns:\n")
		for i, m := range a.Matches {
			ew.printf("  #%d  %s  (%s)  count=%d length=%d at=%s\n",
				i, pattern.Key(m.Pattern), names(m.Pattern), m.Count, m.Length, positions(m.Occurrences))
		}
	}

	if len(a.Annotations) > 0 {
		ew.printf("\nsequence:\n")
	}
	for i, ann := range a.Annotations {
		figure := "-"
		if i < len(ex.Figures) && ex.Figures[i] != "" {
			figure = ex.Figures[i]
		}
		token := fmt.Sprintf("%-3s", ann.Symbol.String())
		if opts.Color {
			token = colorize(token, highlight.ColorFor(highlight.Primary(ann)))
		}
		ew.printf("  %3d  %s %-5s %-12s %v\n", i+1, token, note.Name(ann.Symbol), figure, ann.Patterns)
	}
	return ew.err
}

func JSON(w io.Writer, a model.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

func names(p []model.Note) string {
	res := make([]string, len(p))
	for i, n := range p {
		res[i] = note.Name(n)
	}
	return strings.Join(res, " ")
}

func alterations(notes model.Notes) int {
	var res int
	for _, n := range notes {
		if note.HasAlteration(n) {
			res++
		}
	}
	return res
}

// positions prints 0-based starts as the 1-based positions people count in.
func positions(starts []int) string {
	res := make([]string, len(starts))
	for i, n := range starts {
		res[i] = fmt.Sprint(n + 1)
	}
	return strings.Join(res, ",")
}

func colorize(s string, c highlight.Color) string {
	if c.ANSI == 0 {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c.ANSI, s)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
