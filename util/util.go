package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

func EnsureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

// GatherAllMidiPaths returns the .mid/.midi files under path, sorted. A
// maxNum of 0 means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	sort.Strings(res)
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Mod is the euclidean remainder, always in [0, m) for m > 0.
func Mod[A constraints.Integer](n A, m A) A {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// Reverse returns a reversed copy.
func Reverse[A any](s []A) []A {
	res := make([]A, len(s))
	for i, v := range s {
		res[len(s)-1-i] = v
	}
	return res
}

// Uniq drops repeated values, keeping the first occurrence of each.
func Uniq[A comparable](s []A) []A {
	seen := make(map[A]bool, len(s))
	res := make([]A, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	return res
}
