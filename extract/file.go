package extract

import (
	"context"
	"fmt"
	"os"

	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
)

// JSONFile replays a saved extraction service response.
type JSONFile struct {
	Path string
}

func (f JSONFile) Extract(ctx context.Context) (model.Extraction, error) {
	dat, err := os.ReadFile(f.Path)
	if err != nil {
		return model.Extraction{}, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return ParseResponse(string(dat))
}

// Tokens wraps notes that were already extracted, e.g. typed on the
// command line or posted to the server.
type Tokens struct {
	Notes   []string
	Figures []string
}

func (t Tokens) Extract(ctx context.Context) (model.Extraction, error) {
	notes, err := note.ParseSequence(t.Notes)
	if err != nil {
		return model.Extraction{}, err
	}
	return model.Extraction{Notes: notes, Figures: t.Figures}, nil
}
