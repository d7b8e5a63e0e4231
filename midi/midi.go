package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

type NoteEvent struct {
	AbsTicks int64
	Track    int
	Channel  uint8
	Key      uint8
	Velocity uint8
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s = &blank
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}

// NoteEvents flattens the note-ons of every track in time order. Events on
// the same tick keep track order.
func NoteEvents(s *smf.SMF) []NoteEvent {
	var res []NoteEvent
	for trackNum, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			// a note-on with velocity 0 is a note-off
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, NoteEvent{
					AbsTicks: absTicks,
					Track:    trackNum,
					Channel:  channel,
					Key:      key,
					Velocity: velocity,
				})
			}
		}
	}

	slices.SortStableFunc(res, func(a, b NoteEvent) bool {
		return a.AbsTicks < b.AbsTicks
	})
	return res
}

type WriteOptions struct {
	Name     string
	BPM      float64
	Velocity uint8
	Channel  uint8
}

func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Name: "motifdex", BPM: 100, Velocity: 96}
}

// WriteSequence writes keys as a single track of quarter notes. A key
// outside 0-127 is written as a quarter rest.
func WriteSequence(w io.Writer, keys []int, opts WriteOptions) error {
	s := smf.New()
	ticks := smf.MetricTicks(480)
	s.TimeFormat = ticks
	quarter := ticks.Ticks4th()

	var tr smf.Track
	if opts.Name != "" {
		tr.Add(0, smf.MetaTrackSequenceName(opts.Name))
	}
	if opts.BPM > 0 {
		tr.Add(0, smf.MetaTempo(opts.BPM))
	}

	var rest uint32
	for _, key := range keys {
		if key < 0 || key > 127 {
			rest += quarter
			continue
		}
		tr.Add(rest, midi.NoteOn(opts.Channel, uint8(key), opts.Velocity))
		tr.Add(quarter, midi.NoteOff(opts.Channel, uint8(key)))
		rest = 0
	}
	tr.Close(rest)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}

func WriteMidiFile(path string, keys []int, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSequence(f, keys, opts)
}
