package score

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/tonerow/model"
	"github.com/stretchr/testify/assert"
)

// ticker records every resumption and yields delta until it has done so times
// times, then finishes on the following resumption.
func ticker(name string, delta float64, times int, rec *[]string) Composer {
	n := 0
	return ComposerFunc(func(s *Score) (float64, error) {
		*rec = append(*rec, fmt.Sprintf("%s@%g", name, s.Now()))
		n++
		if n > times {
			return -1, nil
		}
		return delta, nil
	})
}

func TestEqualTimesRunInRegistrationOrder(t *testing.T) {
	var rec []string
	s := New(nil)
	err := s.Compose(
		Entry{Composer: ticker("A", 1.0, 3, &rec)},
		Entry{Composer: ticker("B", 0.5, 5, &rec)},
	)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"A@0", "B@0", "B@0.5", "A@1", "B@1", "B@1.5", "A@2", "B@2"}, rec[:8])
	assert.Equal([]string{"B@2.5", "A@3"}, rec[8:])
}

func TestStartOffsets(t *testing.T) {
	var rec []string
	s := New(nil)
	err := s.Compose(
		Entry{Offset: 2, Composer: ticker("late", 1, 0, &rec)},
		Entry{Offset: 1, Composer: ticker("early", 1, 0, &rec)},
		Entry{Offset: -3, Composer: ticker("clamped", 1, 0, &rec)},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"clamped@0", "early@1", "late@2"}, rec)
}

func TestSpawnedOffsetIsRelativeToParent(t *testing.T) {
	var rec []string
	parent := Routine(func(s *Score, yield func(float64) bool) error {
		if !yield(10) {
			return nil
		}
		s.SpawnList([]Entry{{Offset: 5, Composer: ticker("child", 1, 0, &rec)}})
		return nil
	})

	err := New(nil).Compose(Entry{Composer: parent})
	assert.NoError(t, err)
	assert.Equal(t, []string{"child@15"}, rec)
}

func TestSpawnedComposersQueueBehindSameTimeEntries(t *testing.T) {
	var rec []string
	x := 0
	parent := ComposerFunc(func(s *Score) (float64, error) {
		rec = append(rec, fmt.Sprintf("X@%g", s.Now()))
		x++
		if x == 1 {
			s.Spawn(ticker("C", 1, 0, &rec))
			return 0, nil
		}
		return -1, nil
	})

	err := New(nil).Compose(
		Entry{Composer: parent},
		Entry{Composer: ticker("Y", 1, 0, &rec)},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"X@0", "Y@0", "C@0", "X@0"}, rec)
}

func TestSpawnAtPastTimeStartsNow(t *testing.T) {
	var rec []string
	parent := Routine(func(s *Score, yield func(float64) bool) error {
		if !yield(4) {
			return nil
		}
		s.SpawnAt(1, ticker("abs", 1, 0, &rec))
		s.SpawnAt(6, ticker("future", 1, 0, &rec))
		s.SpawnAfter(-2, ticker("neg", 1, 0, &rec))
		return nil
	})

	err := New(nil).Compose(Entry{Composer: parent})
	assert.NoError(t, err)
	assert.Equal(t, []string{"abs@4", "neg@4", "future@6"}, rec)
}

func TestNestedComposeSchedulesRelativeToNow(t *testing.T) {
	var rec []string
	parent := Routine(func(s *Score, yield func(float64) bool) error {
		if !yield(3) {
			return nil
		}
		return s.Compose(Entry{Offset: 1, Composer: ticker("inner", 1, 0, &rec)})
	})

	err := New(nil).Compose(Entry{Composer: parent})
	assert.NoError(t, err)
	assert.Equal(t, []string{"inner@4"}, rec)
}

func TestComposersWriteIntoSharedTimeline(t *testing.T) {
	voice := func(key uint8, step float64) Composer {
		return Routine(func(s *Score, yield func(float64) bool) error {
			for i := 0; i < 3; i++ {
				s.Add(model.Note{At: s.Now(), Duration: step, Key: key})
				if !yield(step) {
					return nil
				}
			}
			return nil
		})
	}

	s := New(nil)
	err := s.Compose(Entry{Composer: voice(60, 1)}, Entry{Offset: 0.5, Composer: voice(72, 0.5)})

	assert := assert.New(t)
	assert.NoError(err)
	var got []string
	for _, ev := range s.Seq().Events() {
		n := ev.(model.Note)
		got = append(got, fmt.Sprintf("%d@%g", n.Key, n.At))
	}
	assert.Equal([]string{"60@0", "72@0.5", "60@1", "72@1", "72@1.5", "60@2"}, got)
	assert.Equal(2.0, s.Seq().EndTime())
}

func TestNegativeYieldStopsRoutine(t *testing.T) {
	resumed := 0
	cleaned := false
	r := Routine(func(s *Score, yield func(float64) bool) error {
		defer func() { cleaned = true }()
		for {
			resumed++
			if !yield(-1) {
				return nil
			}
		}
	})

	err := New(nil).Compose(Entry{Composer: r})
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, resumed)
	assert.True(cleaned)
}

var errBoom = errors.New("boom")

func TestComposerErrorPropagatesUnchanged(t *testing.T) {
	var rec []string
	failing := ComposerFunc(func(s *Score) (float64, error) {
		if s.Now() >= 2 {
			return 0, errBoom
		}
		return 1, nil
	})

	s := New(nil)
	err := s.Compose(Entry{Composer: failing}, Entry{Composer: ticker("other", 1, 10, &rec)})
	assert := assert.New(t)
	assert.Equal(errBoom, err)
	assert.Equal([]string{"other@0", "other@1"}, rec)
}

func TestRoutineErrorPropagatesUnchanged(t *testing.T) {
	cleaned := false
	other := Routine(func(s *Score, yield func(float64) bool) error {
		defer func() { cleaned = true }()
		for yield(1) {
		}
		return nil
	})
	failing := Routine(func(s *Score, yield func(float64) bool) error {
		yield(1.5)
		return errBoom
	})

	err := New(nil).Compose(Entry{Composer: other}, Entry{Composer: failing})
	assert := assert.New(t)
	assert.True(errors.Is(err, errBoom))
	assert.Equal(errBoom, err)
	assert.True(cleaned, "suspended routines are released")
}

func TestComposerPanicPropagates(t *testing.T) {
	bad := Routine(func(s *Score, yield func(float64) bool) error {
		panic("bad composer")
	})
	assert.PanicsWithValue(t, "bad composer", func() {
		New(nil).Compose(Entry{Composer: bad})
	})
}

func TestComposeCanRunAgain(t *testing.T) {
	var rec []string
	s := New(nil)
	assert.NoError(t, s.Compose(Entry{Offset: 3, Composer: ticker("a", 1, 0, &rec)}))
	assert.NoError(t, s.Compose(Entry{Offset: 1, Composer: ticker("b", 1, 0, &rec)}))
	assert.Equal(t, []string{"a@3", "b@1"}, rec)
}

func TestNewWithoutTimelineStartsEmpty(t *testing.T) {
	s := New(nil)
	assert.NotNil(t, s.Seq())
	assert.Equal(t, 0, s.Seq().Len())
	s.Add(model.Note{At: 1, Key: 60})
	assert.Equal(t, 1, s.Seq().Len())
}
