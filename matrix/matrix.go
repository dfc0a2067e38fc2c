// Package matrix builds twelve-tone matrices and extracts labelled row forms
// (P, R, I and RI) from them.
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/tonerow/pc"
	"github.com/jsphweid/tonerow/util"
	"github.com/pkg/errors"
)

var (
	ErrInvalidForm   = errors.New("invalid row form")
	ErrTransposition = errors.New("transposition level not in matrix")
	ErrInvalidRow    = errors.New("invalid tone row")
)

// NoteNames is the default pitch-class naming table used by Format.
var NoteNames = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// Matrix is an immutable N×N table whose row k is the prime row P0 transposed
// by the inversion value in column k.
type Matrix struct {
	rows []pc.Set
}

// New builds the matrix for row. The row must be non-empty and must not
// repeat a pitch class.
func New(row []int) (*Matrix, error) {
	if len(row) == 0 {
		return nil, errors.Wrap(ErrInvalidRow, "row is empty")
	}
	norm := pc.NewSet(row...)
	if len(norm) != len(row) {
		return nil, errors.Wrapf(ErrInvalidRow, "row %v repeats a pitch class", row)
	}

	p0 := pc.Transpose(norm, pc.Complement(norm[0]))
	i0 := make([]int, len(p0))
	for k, p := range p0 {
		i0[k] = pc.Complement(p)
	}
	m := &Matrix{rows: make([]pc.Set, len(p0))}
	for k := range m.rows {
		m.rows[k] = pc.Transpose(p0, i0[k])
	}
	return m, nil
}

// Size is the number of rows (and columns).
func (m *Matrix) Size() int {
	return len(m.rows)
}

// Rows returns a copy of the matrix rows, top to bottom.
func (m *Matrix) Rows() []pc.Set {
	res := make([]pc.Set, len(m.rows))
	for i, r := range m.rows {
		res[i] = append(pc.Set{}, r...)
	}
	return res
}

func (m *Matrix) column(c int) pc.Set {
	col := make(pc.Set, len(m.rows))
	for r, row := range m.rows {
		col[r] = row[c]
	}
	return col
}

// Row returns the row form labelled by form ("p", "r", "i" or "ri") and
// transposition level t.
func (m *Matrix) Row(form string, t int) (pc.Set, error) {
	n := len(m.rows)
	if t < 0 || t >= n {
		return nil, errors.Wrapf(ErrTransposition, "%s%d: level must be in [0,%d)", form, t, n)
	}
	switch form {
	case "p", "r":
		for _, row := range m.rows {
			if row[0] != t {
				continue
			}
			if form == "r" {
				return util.Reverse(row), nil
			}
			return append(pc.Set{}, row...), nil
		}
	case "i", "ri":
		for c, v := range m.rows[0] {
			if v != t {
				continue
			}
			col := m.column(c)
			if form == "ri" {
				return util.Reverse(col), nil
			}
			return col, nil
		}
	default:
		return nil, errors.Wrapf(ErrInvalidForm, "%q", form)
	}
	return nil, errors.Wrapf(ErrTransposition, "%s%d", form, t)
}

// Label looks up a row by its musical label, e.g. "p0", "R3", "i11" or "ri5".
func (m *Matrix) Label(label string) (pc.Set, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	i := strings.IndexAny(l, "0123456789")
	if i <= 0 {
		return nil, errors.Wrapf(ErrInvalidForm, "label %q", label)
	}
	t, err := strconv.Atoi(l[i:])
	if err != nil {
		return nil, errors.Wrapf(ErrTransposition, "label %q", label)
	}
	return m.Row(l[:i], t)
}

// String renders one parenthesized row per line using 0-9, T and E.
func (m *Matrix) String() string {
	return m.render(pc.Symbol)
}

// Format renders one parenthesized row per line using names.
func (m *Matrix) Format(names [12]string) string {
	return m.render(func(p int) string { return names[p] })
}

func (m *Matrix) render(name func(int) string) string {
	width := 0
	for _, row := range m.rows {
		for _, p := range row {
			width = util.Max(width, len(name(p)))
		}
	}
	var b strings.Builder
	for _, row := range m.rows {
		parts := make([]string, len(row))
		for i, p := range row {
			parts[i] = fmt.Sprintf("%-*s", width, name(p))
		}
		b.WriteString("(" + strings.TrimRight(strings.Join(parts, " "), " ") + ")\n")
	}
	return b.String()
}
