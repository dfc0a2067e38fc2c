// Package seq holds the time-ordered event timeline that composers write into.
package seq

import (
	"iter"

	"github.com/jsphweid/tonerow/model"
	"github.com/pkg/errors"
)

var ErrMalformed = errors.New("malformed timeline events")

// Seq is an ordered list of events. Events added through Add stay in
// non-decreasing time order, and equal-time events keep insertion order.
// The zero Seq is an empty timeline.
type Seq struct {
	events []model.Event
}

// New returns a timeline holding events as given, in the given order.
func New(events ...model.Event) (*Seq, error) {
	for i, ev := range events {
		if ev == nil {
			return nil, errors.Wrapf(ErrMalformed, "event %d is nil", i)
		}
		if ev.Time() < 0 {
			return nil, errors.Wrapf(ErrMalformed, "event %d has negative time %v", i, ev.Time())
		}
	}
	return &Seq{events: append([]model.Event(nil), events...)}, nil
}

// Append adds ev to the end without checking its time.
func (s *Seq) Append(ev model.Event) {
	s.events = append(s.events, ev)
}

// Add inserts ev after every event whose time is <= ev.Time().
func (s *Seq) Add(ev model.Event) {
	t := ev.Time()
	if t >= s.EndTime() {
		s.events = append(s.events, ev)
		return
	}
	i := 0
	for i < len(s.events) && s.events[i].Time() <= t {
		i++
	}
	s.events = append(s.events, nil)
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev
}

// EndTime is the time of the last event, or 0 when empty.
func (s *Seq) EndTime() float64 {
	if len(s.events) == 0 {
		return 0
	}
	return s.events[len(s.events)-1].Time()
}

func (s *Seq) Len() int {
	return len(s.events)
}

func (s *Seq) At(i int) model.Event {
	return s.events[i]
}

// Slice returns a copy of events [i, j).
func (s *Seq) Slice(i, j int) []model.Event {
	return append([]model.Event(nil), s.events[i:j]...)
}

// Events returns a copy of every event.
func (s *Seq) Events() []model.Event {
	return s.Slice(0, len(s.events))
}

// All iterates over index/event pairs.
func (s *Seq) All() iter.Seq2[int, model.Event] {
	return func(yield func(int, model.Event) bool) {
		for i, ev := range s.events {
			if !yield(i, ev) {
				return
			}
		}
	}
}

// Map applies fn to every event in order.
func Map[T any](s *Seq, fn func(model.Event) T) []T {
	res := make([]T, len(s.events))
	for i, ev := range s.events {
		res[i] = fn(ev)
	}
	return res
}

// Serialize yields each top-level event followed by its children, if it has
// any. Rests are left out when skipRests is set; their children are still
// yielded.
func (s *Seq) Serialize(skipRests bool) iter.Seq[model.Event] {
	return func(yield func(model.Event) bool) {
		for _, ev := range s.events {
			if !(skipRests && isRest(ev)) {
				if !yield(ev) {
					return
				}
			}
			c, ok := ev.(model.Composite)
			if !ok {
				continue
			}
			for _, child := range c.Children() {
				if !yield(child) {
					return
				}
			}
		}
	}
}

func isRest(ev model.Event) bool {
	t, ok := ev.(model.Tagged)
	return ok && t.Tag() == "rest"
}
