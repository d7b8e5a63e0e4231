package extract

import (
	"context"

	"github.com/jsphweid/motifdex/midi"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
)

// Midi reads note-ons from a Standard MIDI File and spells them as degrees
// relative to Tonic. Chords collapse into their notes in track order.
type Midi struct {
	Path  string
	Tonic uint8
	// Channel filters events when set, 1-16
	Channel int
}

func (m Midi) Extract(ctx context.Context) (model.Extraction, error) {
	s, err := midi.ReadMidiFile(m.Path)
	if err != nil {
		return model.Extraction{}, err
	}

	var notes model.Notes
	for _, evt := range midi.NoteEvents(s) {
		if m.Channel > 0 && int(evt.Channel)+1 != m.Channel {
			continue
		}
		notes = append(notes, note.FromMidiKey(evt.Key, m.Tonic))
	}
	return model.Extraction{Notes: notes}, nil
}
