package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
)

var fences = regexp.MustCompile("```(?:json)?\\n?")

// response mirrors the JSON the vision model is asked to produce.
type response struct {
	Notes    []string `json:"notas"`
	Figures  []string `json:"figuras"`
	Measures int      `json:"compases"`
	Clef     string   `json:"clave"`
	Error    string   `json:"error"`
}

// ParseResponse decodes a service reply, tolerating markdown code fences
// around the JSON.
func ParseResponse(text string) (model.Extraction, error) {
	clean := strings.TrimSpace(fences.ReplaceAllString(text, ""))

	var r response
	if err := json.Unmarshal([]byte(clean), &r); err != nil {
		return model.Extraction{}, fmt.Errorf("decode extraction response: %w", err)
	}
	if r.Error != "" {
		return model.Extraction{}, &ServiceError{Message: r.Error}
	}

	notes, err := note.ParseSequence(r.Notes)
	if err != nil {
		return model.Extraction{}, err
	}

	return model.Extraction{
		Notes:    notes,
		Figures:  r.Figures,
		Measures: r.Measures,
		Clef:     r.Clef,
	}, nil
}
