package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/extract"
	"github.com/jsphweid/motifdex/highlight"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/pattern"
)

var ErrSequenceTooLong = errors.New("sequence too long")

// Run extracts a sequence and mines it. Sequences over
// constants.MaxSequenceLength are refused before mining.
func Run(ctx context.Context, ex extract.Extractor, source string) (model.Analysis, error) {
	extraction, err := ex.Extract(ctx)
	if err != nil {
		return model.Analysis{}, err
	}
	if n := len(extraction.Notes); n > constants.MaxSequenceLength {
		return model.Analysis{}, fmt.Errorf("%d notes, at most %d allowed: %w", n, constants.MaxSequenceLength, ErrSequenceTooLong)
	}
	return FromExtraction(extraction, source), nil
}

func FromExtraction(ex model.Extraction, source string) model.Analysis {
	if ex.Notes == nil {
		ex.Notes = model.Notes{}
	}
	matches := pattern.Mine(ex.Notes)
	return model.Analysis{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		Source:      source,
		Extraction:  ex,
		Matches:     matches,
		Annotations: highlight.Annotate(ex.Notes, matches),
	}
}
