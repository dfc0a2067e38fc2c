package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/pc"
	"github.com/jsphweid/tonerow/seq"
	"github.com/jsphweid/tonerow/util"
)

type OnNotes = map[uint8]bool

type reducedEvent struct {
	Offset    float64
	IsNoteOff bool
	Note      uint8
}

// Key renders a pitch-class set as 0-2-5.
func Key(set pc.Set) string {
	var res string
	for i, p := range set {
		res += fmt.Sprintf("%v", p)
		if i < len(set)-1 {
			res += "-"
		}
	}
	return res
}

func getSonority(pressed map[uint8]int, offset float64, formedByNoteOn bool) model.Sonority {
	keys := make([]uint8, 0, len(pressed))
	for k, n := range pressed {
		if n > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return model.Sonority{Time: offset, Keys: keys, FormedByNoteOn: formedByNoteOn}
}

// FromSeq returns the sounding keys at every time a note starts or stops,
// leaving out silent moments. Notes and chords are read through Serialize,
// rests are ignored.
func FromSeq(s *seq.Seq) []model.Sonority {
	var reducedEvents []reducedEvent
	for ev := range s.Serialize(true) {
		n, ok := ev.(model.Note)
		if !ok || n.Rest {
			continue
		}
		reducedEvents = append(reducedEvents,
			reducedEvent{Offset: n.At, Note: n.Key},
			reducedEvent{Offset: n.At + n.Duration, Note: n.Key, IsNoteOff: true})
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToSonority := make(map[float64]model.Sonority)
	pressed := make(map[uint8]int)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			pressed[evt.Note]--
			timestampToSonority[evt.Offset] = getSonority(pressed, evt.Offset, false)
		} else {
			pressed[evt.Note]++
			timestampToSonority[evt.Offset] = getSonority(pressed, evt.Offset, true)
		}
	}

	var res []model.Sonority
	for _, k := range util.GetKeysSorted(timestampToSonority) {
		c := timestampToSonority[k]
		if len(c.Keys) > 0 {
			res = append(res, c)
		}
	}
	return res
}

// Classify computes the set class of a group of keys.
func Classify(keys []uint8) model.SetClass {
	ints := make([]int, len(keys))
	for i, k := range keys {
		ints[i] = int(k)
	}
	set := pc.NewSet(ints...)
	prime := pc.PrimeForm(set)
	return model.SetClass{
		Set:    set,
		Normal: pc.NormalForm(set),
		Prime:  prime,
		Vector: pc.IntervalVector(set),
		Key:    Key(prime),
	}
}

func Analyze(sonorities []model.Sonority) []model.SonorityAnalysis {
	res := make([]model.SonorityAnalysis, len(sonorities))
	for i, s := range sonorities {
		res[i] = model.SonorityAnalysis{Sonority: s, SetClass: Classify(s.Keys)}
	}
	return res
}

// Histogram counts analyses by prime form key.
func Histogram(analyses []model.SonorityAnalysis) map[string]int {
	res := make(map[string]int)
	for _, a := range analyses {
		res[a.Key]++
	}
	return res
}
