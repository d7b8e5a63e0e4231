package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/motifdex/analysis"
	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
)

var (
	listenPort  int
	listenQuiet time.Duration
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	listenCmd.Flags().DurationVar(&listenQuiet, "quiet", 750*time.Millisecond, "Re-mine after this long without a new note")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Finds patterns in notes played on a MIDI keyboard",
	Run: func(cmd *cobra.Command, args []string) {
		defer midi.CloseDriver()
		in, err := midi.InPort(listenPort)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("can't find MIDI input port %d: %w", listenPort, err))
		}

		tonic := constants.GetTonic()
		var mu sync.Mutex
		var played model.Notes
		debounced := debounce.New(listenQuiet)

		minePlayed := func() {
			mu.Lock()
			ex := model.Extraction{Notes: append(model.Notes(nil), played...)}
			mu.Unlock()
			fmt.Fprintln(os.Stderr, playedLine(ex.Notes))
			output(cmd, analysis.FromExtraction(ex, "live"))
		}

		stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
			var ch, key, vel uint8
			if msg.GetNoteStart(&ch, &key, &vel) {
				mu.Lock()
				played = append(played, note.FromMidiKey(key, tonic))
				if len(played) > constants.MaxSequenceLength {
					played = played[len(played)-constants.MaxSequenceLength:]
				}
				mu.Unlock()
				debounced(minePlayed)
			}
		})
		cobra.CheckErr(err)
		defer stop()

		fmt.Fprintf(os.Stderr, "listening on %v, ctrl-c to stop\n", in)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
	},
}

func playedLine(notes model.Notes) string {
	return fmt.Sprintf("played %d: %s", len(notes), strings.Join(note.Tokens(notes), " "))
}
