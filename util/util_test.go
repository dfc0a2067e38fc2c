package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsAlwaysNonNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
	assert.Equal(2, Mod(26, 12))
	assert.Equal(int8(5), Mod(int8(-7), int8(12)))
}

func TestReverseLeavesInputAlone(t *testing.T) {
	in := []int{1, 2, 3}
	out := Reverse(in)

	assert := assert.New(t)
	assert.Equal([]int{3, 2, 1}, out)
	assert.Equal([]int{1, 2, 3}, in)
	assert.Equal([]int{}, Reverse([]int{}))
}

func TestUniqKeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []int{5, 10, 7}, Uniq([]int{5, 10, 5, 7, 10}))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeysSorted(m))
}

func TestMinMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 3))
	assert.Equal(3, Max(2, 3))
	assert.Equal(1.5, Min(1.5, 2.5))
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mid", "a.midi", "notes.txt"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0644)
		assert.NoError(t, err)
	}

	paths, err := GatherAllMidiPaths(dir, 0)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{filepath.Join(dir, "a.midi"), filepath.Join(dir, "b.mid")}, paths)

	limited, err := GatherAllMidiPaths(dir, 1)
	assert.NoError(err)
	assert.Len(limited, 1)
}
