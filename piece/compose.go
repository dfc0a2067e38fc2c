package piece

import (
	"github.com/jsphweid/tonerow/matrix"
	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/pc"
	"github.com/jsphweid/tonerow/score"
	"github.com/jsphweid/tonerow/seq"
)

// RowVoice plays a list of row forms one after the other, either a note at a
// time or as stacked trichords.
type RowVoice struct {
	voice   Voice
	rows    []pc.Set
	beat    float64
	form    int
	pos     int
	started bool
}

func NewRowVoice(v Voice, rows []pc.Set, beat float64) *RowVoice {
	return &RowVoice{voice: v, rows: rows, beat: beat}
}

func (r *RowVoice) key(p int) uint8 {
	octave := DefaultOctave
	if r.voice.Octave != nil {
		octave = *r.voice.Octave
	}
	return uint8(12*(octave+1) + p)
}

// Next implements score.Composer.
func (r *RowVoice) Next(s *score.Score) (float64, error) {
	if !r.started {
		r.started = true
		if r.voice.Program != nil {
			s.Add(model.Program{At: s.Now(), Instrument: r.voice.Instrument, Value: *r.voice.Program})
		}
	}
	if r.form >= len(r.rows) {
		return -1, nil
	}

	row := r.rows[r.form]
	dur := r.voice.Duration * r.beat
	if r.voice.Chords {
		end := r.pos + 3
		if end > len(row) {
			end = len(row)
		}
		keys := make([]uint8, 0, end-r.pos)
		for _, p := range row[r.pos:end] {
			keys = append(keys, r.key(p))
		}
		s.Add(model.Chord{
			At:         s.Now(),
			Duration:   dur,
			Keys:       keys,
			Amplitude:  r.voice.Amplitude,
			Instrument: r.voice.Instrument,
		})
		r.pos = end
	} else {
		s.Add(model.Note{
			At:         s.Now(),
			Duration:   dur,
			Key:        r.key(row[r.pos]),
			Amplitude:  r.voice.Amplitude,
			Instrument: r.voice.Instrument,
		})
		r.pos++
	}
	if r.pos >= len(row) {
		r.form++
		r.pos = 0
	}
	return r.voice.Rhythm * r.beat, nil
}

// Compose renders the piece. A conductor starts every voice at its start
// beat, and the voices write into one timeline. Unset fields of p are
// filled with their defaults first.
func (p *Piece) Compose() (*seq.Seq, error) {
	p.fillDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m, err := matrix.New(p.Row)
	if err != nil {
		return nil, err
	}
	entries := make([]score.Entry, len(p.Voices))
	for i, v := range p.Voices {
		rows, err := p.rowForms(m, v)
		if err != nil {
			return nil, err
		}
		entries[i] = score.Entry{Offset: v.Start * p.Beat(), Composer: NewRowVoice(v, rows, p.Beat())}
	}

	conductor := score.Routine(func(s *score.Score, yield func(float64) bool) error {
		s.SpawnList(entries)
		return nil
	})

	sc := score.New(nil)
	if err := sc.Compose(score.Entry{Composer: conductor}); err != nil {
		return nil, err
	}
	return sc.Seq(), nil
}
