package model

import "time"

// Extraction is what an Extractor reads out of a score.
type Extraction struct {
	Notes    Notes    `json:"notes"`
	Figures  []string `json:"figures,omitempty"`
	Measures int      `json:"measures,omitempty"`
	Clef     string   `json:"clef,omitempty"`
}

type Analysis struct {
	ID          string               `json:"id"`
	CreatedAt   time.Time            `json:"created_at"`
	Source      string               `json:"source,omitempty"`
	Extraction  Extraction           `json:"extraction"`
	Matches     []PatternMatch[Note] `json:"matches"`
	Annotations []Annotation[Note]   `json:"annotations"`
}
