package model

// PatternMatch is a contiguous run of symbols that recurs at least twice.
// Occurrences are ascending start indices and may overlap each other.
type PatternMatch[S comparable] struct {
	Pattern     []S   `json:"pattern"`
	Occurrences []int `json:"occurrences"`
	Count       int   `json:"count"`
	Length      int   `json:"length"`
}

// Annotation lists, for one sequence position, the rank of every pattern
// occurrence covering it.
type Annotation[S comparable] struct {
	Symbol   S     `json:"symbol"`
	Patterns []int `json:"patterns"`
}
