package pattern

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/util"
)

// MaxLength is the longest pattern considered for a sequence of n symbols.
func MaxLength(n int) int {
	return util.Min(n/2, constants.MaxPatternLength)
}

// Mine finds every contiguous window of 2..MaxLength(len(seq)) symbols that
// occurs at least twice, overlaps included. Each distinct pattern appears
// once, recorded at its first discovery (shorter lengths first, then earlier
// starts). The result is ranked by count then length, both descending, and
// keeps discovery order between equal ranks.
func Mine[S comparable](seq []S) []model.PatternMatch[S] {
	res := []model.PatternMatch[S]{}
	n := len(seq)
	if n < constants.MinSequenceLength {
		return res
	}

	maxLen := MaxLength(n)
	for length := constants.MinPatternLength; length <= maxLen; length++ {
		for start := 0; start <= n-length; start++ {
			candidate := seq[start : start+length]
			occurrences := findOccurrences(seq, candidate)
			if len(occurrences) < 2 || contains(res, candidate) {
				continue
			}

			p := make([]S, length)
			copy(p, candidate)
			res = append(res, model.PatternMatch[S]{
				Pattern:     p,
				Occurrences: occurrences,
				Count:       len(occurrences),
				Length:      length,
			})
		}
	}

	Rank(res)
	return res
}

// Rank orders matches by count, then length, descending. Ties keep their
// relative order.
func Rank[S comparable](matches []model.PatternMatch[S]) {
	slices.SortStableFunc(matches, func(a, b model.PatternMatch[S]) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Length > b.Length
	})
}

func findOccurrences[S comparable](seq []S, p []S) []int {
	var res []int
	for i := 0; i <= len(seq)-len(p); i++ {
		if slices.Equal(seq[i:i+len(p)], p) {
			res = append(res, i)
		}
	}
	return res
}

func contains[S comparable](matches []model.PatternMatch[S], p []S) bool {
	return slices.IndexFunc(matches, func(m model.PatternMatch[S]) bool {
		return slices.Equal(m.Pattern, p)
	}) >= 0
}

// Key joins the pattern with "-" for display, e.g. "5-5-5-3".
func Key[S comparable](p []S) string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, "-")
}
