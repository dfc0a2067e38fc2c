// Package pc implements pitch-class set theory over the integers 0-11:
// interval arithmetic, transposition, inversion, normal form, prime form and
// interval-class vectors.
package pc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/tonerow/util"
	"github.com/pkg/errors"
)

// Octave is the number of pitch classes.
const Octave = 12

// Set is an ordered tuple of pitch classes. Every operation returns a new Set.
type Set []int

// NewSet reduces pcs into [0,11] and drops duplicates, keeping the order in
// which values first appear.
func NewSet(pcs ...int) Set {
	res := make(Set, 0, len(pcs))
	for _, p := range pcs {
		res = append(res, util.Mod(p, Octave))
	}
	return util.Uniq(res)
}

// Interval is the ascending distance in semitones from pc1 up to pc2.
func Interval(pc1, pc2 int) int {
	return util.Mod(pc2-pc1, Octave)
}

// Complement is the distance from pc up to the octave.
func Complement(pc int) int {
	return Interval(pc, Octave)
}

// Transpose adds steps (taken mod 12) to every element.
func Transpose(pcs Set, steps int) Set {
	steps = util.Mod(steps, Octave)
	res := make(Set, len(pcs))
	for i, p := range pcs {
		res[i] = util.Mod(p+steps, Octave)
	}
	return res
}

// Invert complements each element of the reversed input and then transposes
// the result by axis.
func Invert(pcs Set, axis int) Set {
	rev := util.Reverse(pcs)
	res := make(Set, len(rev))
	for i, p := range rev {
		res[i] = Complement(p)
	}
	return Transpose(res, axis)
}

// Equal reports whether a and b hold the same values in the same order.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the set as (0,2,5).
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = fmt.Sprint(p)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Symbol returns the one-letter name of a pitch class: 0-9, T or E.
func Symbol(pc int) string {
	switch p := util.Mod(pc, Octave); p {
	case 10:
		return "T"
	case 11:
		return "E"
	default:
		return fmt.Sprint(p)
	}
}

// Parse reads a pitch-class set such as "0 2 5", "0,2,T,E" or "[1, 4, 7]".
// T/A stand for 10 and E/B for 11.
func Parse(s string) (Set, error) {
	values, err := ParseList(s)
	if err != nil {
		return nil, err
	}
	return NewSet(values...), nil
}

// ParseList reads values the way Parse does but keeps repeats and does not
// reduce them, so that callers can reject malformed rows.
func ParseList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '[' || r == ']' || r == '(' || r == ')'
	})
	var res []int
	for _, f := range fields {
		switch strings.ToUpper(f) {
		case "T", "A":
			res = append(res, 10)
		case "E", "B":
			res = append(res, 11)
		default:
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Errorf("not a pitch class: %q", f)
			}
			res = append(res, v)
		}
	}
	return res, nil
}
