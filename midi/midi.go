package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/tonerow/constants"
	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/seq"
	"github.com/jsphweid/tonerow/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}

type sounding struct {
	at  float64
	vel uint8
}

// ToSeq pairs the note ons and offs of every track into notes timed in
// seconds. Offs without a matching on are ignored.
func ToSeq(s *smf.SMF) (*seq.Seq, error) {
	out, err := seq.New()
	if err != nil {
		return nil, err
	}
	for _, events := range s.Tracks {
		held := make(map[[2]uint8][]sounding)
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := float64(s.TimeAt(absTicks)) / 1e6
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				k := [2]uint8{channel, key}
				held[k] = append(held[k], sounding{at: absTime, vel: velocity})
			case event.Message.GetNoteOn(&channel, &key, &velocity),
				event.Message.GetNoteOff(&channel, &key, &velocity):
				k := [2]uint8{channel, key}
				if len(held[k]) == 0 {
					continue
				}
				on := held[k][0]
				held[k] = held[k][1:]
				out.Add(model.Note{
					At:         on.at,
					Duration:   absTime - on.at,
					Key:        key,
					Amplitude:  float64(on.vel) / 127,
					Instrument: channel,
				})
			}
		}
	}
	return out, nil
}

const (
	rankOff = iota
	rankProgram
	rankOn
)

type timedMessage struct {
	tick uint32
	rank int
	msg  midi.Message
}

func ticks(seconds float64) uint32 {
	if seconds < 0 {
		seconds = 0
	}
	return uint32(math.Round(seconds * constants.TicksPerQuarter * constants.MidiTempo / 60))
}

func velocity(amplitude float64) uint8 {
	return uint8(util.Max(1, util.Min(127, math.Round(amplitude*127))))
}

func channel(instrument uint8) uint8 {
	return instrument & 0x0f
}

func toMessages(sq *seq.Seq) []timedMessage {
	var msgs []timedMessage
	for ev := range sq.Serialize(true) {
		switch e := ev.(type) {
		case model.Note:
			if e.Rest {
				continue
			}
			ch := channel(e.Instrument)
			on, off := ticks(e.At), ticks(e.At+e.Duration)
			// an off on the same tick would sort before its own on
			if off <= on {
				off = on + 1
			}
			msgs = append(msgs,
				timedMessage{tick: on, rank: rankOn, msg: midi.NoteOn(ch, e.Key, velocity(e.Amplitude))},
				timedMessage{tick: off, rank: rankOff, msg: midi.NoteOff(ch, e.Key)})
		case model.Program:
			msgs = append(msgs, timedMessage{
				tick: ticks(e.At),
				rank: rankProgram,
				msg:  midi.ProgramChange(channel(e.Instrument), e.Value&0x7f),
			})
		}
	}

	// prioritize smaller ticks then note off
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].rank < msgs[j].rank
	})
	return msgs
}

// Render converts a timeline into a single track midi file at a fixed 60 bpm.
// Chords are flattened into notes and rests are skipped.
func Render(sq *seq.Seq) (*smf.SMF, error) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(constants.MidiTempo))

	var last uint32
	for _, m := range toMessages(sq) {
		tr.Add(m.tick-last, m.msg)
		last = m.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "Could not add track")
	}
	return s, nil
}

func Write(w io.Writer, sq *seq.Seq) error {
	s, err := Render(sq)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "Could not write midi")
	}
	return nil
}

func WriteFile(path string, sq *seq.Seq) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("Couldn't open file: %v", path))
	}
	defer f.Close()
	return Write(f, sq)
}
