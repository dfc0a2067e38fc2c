// Package score runs composers: resumable units of musical generation that
// share one virtual timeline and write events into one Seq.
//
// Scheduling is cooperative and single-threaded. The composer with the
// earliest resume time runs next, and composers due at the same time run in
// the order they were queued. A composer returns the delay until it wants to
// run again, or a negative delay when it is done. Errors returned by a
// composer stop the whole composition and come back from Compose unchanged.
package score

import (
	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/seq"
)

// Composer is resumed by a Score. Next returns the delay in seconds until the
// composer should be resumed again; a negative delay ends it.
type Composer interface {
	Next(s *Score) (float64, error)
}

type ComposerFunc func(s *Score) (float64, error)

func (f ComposerFunc) Next(s *Score) (float64, error) {
	return f(s)
}

// Entry is a composer plus its start offset.
type Entry struct {
	Offset   float64
	Composer Composer
}

type stopper interface {
	Stop()
}

type spawned struct {
	time     float64
	composer Composer
}

// Score is a composition session. It owns the output timeline.
type Score struct {
	out     *seq.Seq
	now     float64
	sched   scheduler
	pending []spawned
	running bool
}

// New returns a Score writing into out, or into a fresh Seq if out is nil.
func New(out *seq.Seq) *Score {
	if out == nil {
		out = &seq.Seq{}
	}
	return &Score{out: out}
}

// Now is the virtual time of the composer currently running.
func (s *Score) Now() float64 {
	return s.now
}

// Seq is the shared output timeline.
func (s *Score) Seq() *seq.Seq {
	return s.out
}

// Add inserts ev into the timeline in time order.
func (s *Score) Add(ev model.Event) {
	s.out.Add(ev)
}

// Spawn starts c at the current time.
func (s *Score) Spawn(c Composer) {
	s.SpawnAt(s.now, c)
}

// SpawnAfter starts c offset seconds after the current time.
func (s *Score) SpawnAfter(offset float64, c Composer) {
	if offset < 0 {
		offset = 0
	}
	s.SpawnAt(s.now+offset, c)
}

// SpawnAt starts c at the absolute time t, or now if t has already passed.
// Spawned composers join the queue once the running composer returns.
func (s *Score) SpawnAt(t float64, c Composer) {
	if t < s.now {
		t = s.now
	}
	s.pending = append(s.pending, spawned{time: t, composer: c})
}

// SpawnList starts every entry at its offset from the current time.
func (s *Score) SpawnList(entries []Entry) {
	for _, e := range entries {
		s.SpawnAfter(e.Offset, e.Composer)
	}
}

func (s *Score) flush() {
	for _, p := range s.pending {
		s.sched.push(p.time, p.composer)
	}
	s.pending = s.pending[:0]
}

// Compose runs entries, offsets measured from time 0, until every composer
// has finished. Called from inside a running composer it schedules entries
// relative to the current time instead.
func (s *Score) Compose(entries ...Entry) error {
	if s.running {
		s.SpawnList(entries)
		return nil
	}

	s.now = 0
	s.sched = scheduler{}
	s.pending = nil
	s.SpawnList(entries)
	s.flush()

	s.running = true
	defer s.abandon()

	for !s.sched.empty() {
		t := s.sched.pop()
		s.now = t.time
		delta, err := t.composer.Next(s)
		s.flush()
		if err != nil {
			return err
		}
		if delta >= 0 {
			s.sched.push(s.now+delta, t.composer)
		} else if st, ok := t.composer.(stopper); ok {
			st.Stop()
		}
	}
	return nil
}

// abandon stops composers left behind by an error or panic.
func (s *Score) abandon() {
	s.running = false
	for _, p := range s.pending {
		s.sched.push(p.time, p.composer)
	}
	s.pending = nil
	for !s.sched.empty() {
		if st, ok := s.sched.pop().composer.(stopper); ok {
			st.Stop()
		}
	}
}
