package model

// Event is anything placed on a timeline. Time is in seconds and never negative.
type Event interface {
	Time() float64
}

// Tagged events name their kind, e.g. "note", "rest" or "chord".
type Tagged interface {
	Tag() string
}

// Composite events expand into child events when serialized.
type Composite interface {
	Children() []Event
}

type Note struct {
	At       float64
	Duration float64
	Key      uint8
	// NOTE: not range-checked, midi rendering clamps it
	Amplitude  float64
	Instrument uint8
	Rest       bool
}

func (n Note) Time() float64 { return n.At }

func (n Note) Tag() string {
	if n.Rest {
		return "rest"
	}
	return "note"
}

type Chord struct {
	At         float64
	Duration   float64
	Keys       []uint8
	Amplitude  float64
	Instrument uint8
}

func (c Chord) Time() float64 { return c.At }

func (c Chord) Tag() string { return "chord" }

// Children returns one note per key, all sharing the chord's onset.
func (c Chord) Children() []Event {
	res := make([]Event, len(c.Keys))
	for i, k := range c.Keys {
		res[i] = Note{
			At:         c.At,
			Duration:   c.Duration,
			Key:        k,
			Amplitude:  c.Amplitude,
			Instrument: c.Instrument,
		}
	}
	return res
}

// Program selects a General MIDI program on an instrument channel.
type Program struct {
	At         float64
	Instrument uint8
	Value      uint8
}

func (p Program) Time() float64 { return p.At }

func (p Program) Tag() string { return "program" }
