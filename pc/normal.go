package pc

import "sort"

func isAscending(pcs Set) bool {
	for i := 1; i < len(pcs); i++ {
		if pcs[i] <= pcs[i-1] {
			return false
		}
	}
	return true
}

// zeroed transposes pcs so that it starts on 0.
func zeroed(pcs Set) Set {
	if len(pcs) == 0 {
		return Set{}
	}
	return Transpose(pcs, Complement(pcs[0]))
}

// tightest returns the index of the most tightly left-packed candidate. The
// zero-based profiles are compared left to right over every position and the
// smallest value at the first difference wins. Candidates whose profiles never
// differ are settled by the lowest first pitch class, then by position.
func tightest(cands []Set) int {
	profiles := make([]Set, len(cands))
	for i, c := range cands {
		profiles[i] = zeroed(c)
	}
	best := 0
	for i := 1; i < len(cands); i++ {
		switch compareProfiles(profiles[i], profiles[best]) {
		case -1:
			best = i
		case 0:
			if cands[i][0] < cands[best][0] {
				best = i
			}
		}
	}
	return best
}

func compareProfiles(a, b Set) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// NormalForm returns the rotation of the sorted set that follows its largest
// wraparound gap, resolving ties by tightest left packing.
func NormalForm(pcs Set) Set {
	pcs = NewSet(pcs...)
	if len(pcs) == 0 {
		return Set{}
	}
	if !isAscending(pcs) {
		sort.Ints(pcs)
	}
	n := len(pcs)
	ext := append(append(Set{}, pcs...), pcs[0])
	gaps := make([]int, n)
	widest := 0
	for i := 0; i < n; i++ {
		gaps[i] = Interval(ext[i], ext[i+1])
		if gaps[i] > widest {
			widest = gaps[i]
		}
	}
	var cands []Set
	for i, g := range gaps {
		if g != widest {
			continue
		}
		start := (i + 1) % n
		rot := make(Set, 0, n)
		rot = append(rot, pcs[start:]...)
		rot = append(rot, pcs[:start]...)
		cands = append(cands, rot)
	}
	if len(cands) == 1 {
		return cands[0]
	}
	return cands[tightest(cands)]
}

// PrimeForm returns the zero-based normal form of pcs or of its inversion,
// whichever is more tightly packed to the left.
func PrimeForm(pcs Set) Set {
	norm := NormalForm(pcs)
	if len(norm) == 0 {
		return Set{}
	}
	zero := zeroed(norm)
	inverted := Invert(zero, zero[len(zero)-1])
	cands := []Set{zero, inverted}
	return cands[tightest(cands)]
}

// IntervalVector counts the interval classes 1-6 between every unordered pair
// of the prime form.
func IntervalVector(pcs Set) [6]int {
	var vec [6]int
	prime := PrimeForm(pcs)
	for i1 := 0; i1 < len(prime); i1++ {
		for i2 := i1 + 1; i2 < len(prime); i2++ {
			ic := Interval(prime[i1], prime[i2])
			if ic > 6 {
				ic = Octave - ic
			}
			if ic > 0 {
				vec[ic-1]++
			}
		}
	}
	return vec
}
