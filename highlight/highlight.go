package highlight

import "github.com/jsphweid/motifdex/model"

// Annotate lists, for every position of seq, the rank of each match whose
// occurrence covers it. Indices are appended by rank, then occurrence, then
// offset and are not deduplicated. Offsets falling past the end of seq are
// ignored.
func Annotate[S comparable](seq []S, matches []model.PatternMatch[S]) []model.Annotation[S] {
	res := make([]model.Annotation[S], len(seq))
	for i, s := range seq {
		res[i] = model.Annotation[S]{Symbol: s, Patterns: []int{}}
	}

	for patternIdx, m := range matches {
		for _, start := range m.Occurrences {
			for offset := 0; offset < m.Length; offset++ {
				pos := start + offset
				if pos < 0 || pos >= len(res) {
					continue
				}
				res[pos].Patterns = append(res[pos].Patterns, patternIdx)
			}
		}
	}
	return res
}

// Primary is the pattern a position is coloured by, or -1.
func Primary[S comparable](a model.Annotation[S]) int {
	if len(a.Patterns) == 0 {
		return -1
	}
	return a.Patterns[0]
}
