package constants

import (
	"os"
	"strconv"
	"time"
)

func GetOutDir() string {
	path := os.Getenv("TONEROW_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() string {
	port := os.Getenv("TONEROW_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetMidiInPort is the index of the MIDI in port used by listen.
func GetMidiInPort() int {
	num, err := strconv.Atoi(os.Getenv("TONEROW_MIDI_IN"))
	if err != nil || num < 0 {
		return 0
	}
	return num
}

// one quarter note per second at the fixed 60 bpm that midi files are written in
const TicksPerQuarter = 960

const MidiTempo = 60.0

const ListenDebounce = 150 * time.Millisecond
