package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motifdex/analysis"
	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/extract"
	"github.com/jsphweid/motifdex/midi"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
)

var (
	midiTonic   int
	midiChannel int
	midiExport  string
	midiPattern int
)

func init() {
	midiCmd.Flags().IntVar(&midiTonic, "tonic", -1, "MIDI key of degree 1 (default $MOTIFDEX_TONIC or 60)")
	midiCmd.Flags().IntVar(&midiChannel, "channel", 0, "Only read this channel (1-16)")
	midiCmd.Flags().StringVar(&midiExport, "export", "", "Write the sequence, or one pattern with --pattern, as a MIDI file")
	midiCmd.Flags().IntVar(&midiPattern, "pattern", -1, "Pattern rank to export")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <file.mid>",
	Short: "Finds patterns in a MIDI file",
	Long:  "Finds patterns in the note-ons of a Standard MIDI File, spelled as degrees of the tonic.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tonic := constants.GetTonic()
		if midiTonic >= 0 {
			if midiTonic > 127 {
				cobra.CheckErr("--tonic must be between 0 and 127")
			}
			tonic = uint8(midiTonic)
		}

		ex := extract.Midi{Path: args[0], Tonic: tonic, Channel: midiChannel}
		a, err := analysis.Run(cmd.Context(), ex, filepath.Base(args[0]))
		cobra.CheckErr(err)
		output(cmd, a)

		if midiExport != "" {
			keys, err := exportKeys(a, midiPattern, tonic)
			cobra.CheckErr(err)
			opts := midi.DefaultWriteOptions()
			opts.Name = a.Source
			cobra.CheckErr(midi.WriteMidiFile(midiExport, keys, opts))
			fmt.Fprintf(os.Stderr, "wrote %s\n", midiExport)
		}
	},
}

// exportKeys renders the whole sequence, or every occurrence of one pattern
// separated by a rest.
func exportKeys(a model.Analysis, patternIdx int, tonic uint8) ([]int, error) {
	toKeys := func(notes []model.Note) []int {
		res := make([]int, len(notes))
		for i, n := range notes {
			res[i] = int(note.MidiKey(n, tonic))
		}
		return res
	}

	if patternIdx < 0 {
		return toKeys(a.Extraction.Notes), nil
	}
	if patternIdx >= len(a.Matches) {
		return nil, fmt.Errorf("pattern %d out of range, found %d", patternIdx, len(a.Matches))
	}

	m := a.Matches[patternIdx]
	var res []int
	for i := range m.Occurrences {
		if i > 0 {
			res = append(res, -1)
		}
		res = append(res, toKeys(m.Pattern)...)
	}
	return res, nil
}
