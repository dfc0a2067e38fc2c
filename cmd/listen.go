package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/bep/debounce"
	"github.com/jsphweid/tonerow/chord"
	"github.com/jsphweid/tonerow/constants"
	"github.com/jsphweid/tonerow/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints the set class of the chord held on a midi keyboard",
	Long:  `Listens on the midi in port TONEROW_MIDI_IN (default 0) and prints the set class of the held chord.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(constants.GetMidiInPort())
	},
}

func listen(port int) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find midi in port %v", port)
	}

	var mu sync.Mutex
	onNotes := make(chord.OnNotes)
	debounced := debounce.New(constants.ListenDebounce)
	report := func() {
		mu.Lock()
		keys := util.GetKeysSorted(onNotes)
		mu.Unlock()
		if len(keys) == 0 {
			return
		}
		c := chord.Classify(keys)
		fmt.Printf("%-16v normal %-14v prime %-10v vector %v\n", keys, c.Normal, c.Key, c.Vector)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			debounced(report)
		default:
			// ignore
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	fmt.Printf("Listening on %v, press ctrl-c to stop\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
