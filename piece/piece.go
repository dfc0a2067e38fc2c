// Package piece describes a twelve-tone composition in YAML or JSON and
// renders it by running one composer per voice.
package piece

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/tonerow/matrix"
	"github.com/jsphweid/tonerow/pc"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTempo     = 60.0
	DefaultOctave    = 5
	DefaultAmplitude = 0.5
)

type Voice struct {
	Start      float64 `yaml:"start,omitempty" json:"start,omitempty"`
	Instrument uint8   `yaml:"instrument,omitempty" json:"instrument,omitempty"`
	// NOTE: nil leaves the channel's program alone
	Program   *uint8   `yaml:"program,omitempty" json:"program,omitempty"`
	Octave    *int     `yaml:"octave,omitempty" json:"octave,omitempty"`
	Rhythm    float64  `yaml:"rhythm" json:"rhythm"`
	Duration  float64  `yaml:"duration,omitempty" json:"duration,omitempty"`
	Amplitude float64  `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
	Forms     []string `yaml:"forms,flow" json:"forms"`
	Chords    bool     `yaml:"chords,omitempty" json:"chords,omitempty"`
}

type Piece struct {
	Title  string  `yaml:"title,omitempty" json:"title,omitempty"`
	Tempo  float64 `yaml:"tempo,omitempty" json:"tempo,omitempty"`
	Row    []int   `yaml:"row,flow" json:"row"`
	Voices []Voice `yaml:"voices" json:"voices"`
}

// Load reads a piece from a .json file, or from YAML for any other extension.
func Load(path string) (*Piece, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read piece %v", path)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return Parse(data, format)
}

// Parse decodes data as "json" or "yaml", fills in defaults and validates.
func Parse(data []byte, format string) (*Piece, error) {
	var p Piece
	switch format {
	case "json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(err, "could not parse piece as json")
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(err, "could not parse piece as yaml")
		}
	default:
		return nil, errors.Errorf("unknown piece format %q", format)
	}
	p.fillDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Piece) fillDefaults() {
	if p.Tempo == 0 {
		p.Tempo = DefaultTempo
	}
	for i := range p.Voices {
		v := &p.Voices[i]
		if v.Octave == nil {
			o := DefaultOctave
			v.Octave = &o
		}
		if v.Duration == 0 {
			v.Duration = v.Rhythm
		}
		if v.Amplitude == 0 {
			v.Amplitude = DefaultAmplitude
		}
	}
}

func (p *Piece) Validate() error {
	if p.Tempo <= 0 {
		return errors.New("tempo should be > 0")
	}
	m, err := matrix.New(p.Row)
	if err != nil {
		return err
	}
	if len(p.Voices) == 0 {
		return errors.New("piece needs at least one voice")
	}
	for i, v := range p.Voices {
		if v.Start < 0 {
			return errors.Errorf("voice %d: start should be >= 0", i)
		}
		if v.Rhythm <= 0 {
			return errors.Errorf("voice %d: rhythm should be > 0", i)
		}
		if v.Duration < 0 {
			return errors.Errorf("voice %d: duration should be >= 0", i)
		}
		if v.Instrument > 15 {
			return errors.Errorf("voice %d: instrument channel should be in 0-15", i)
		}
		if v.Program != nil && *v.Program > 127 {
			return errors.Errorf("voice %d: program should be in 0-127", i)
		}
		if v.Octave != nil && (*v.Octave < 0 || *v.Octave > 8) {
			return errors.Errorf("voice %d: octave should be in 0-8", i)
		}
		if len(v.Forms) == 0 {
			return errors.Errorf("voice %d: needs at least one row form", i)
		}
		for _, f := range v.Forms {
			if _, err := m.Label(f); err != nil {
				return errors.Wrapf(err, "voice %d", i)
			}
		}
	}
	return nil
}

// Beat is the length of one beat in seconds.
func (p *Piece) Beat() float64 {
	return 60 / p.Tempo
}

func (p *Piece) rowForms(m *matrix.Matrix, v Voice) ([]pc.Set, error) {
	rows := make([]pc.Set, len(v.Forms))
	for i, f := range v.Forms {
		row, err := m.Label(f)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}
