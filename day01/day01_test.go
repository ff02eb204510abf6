package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = `3   4
4   3
2   5
1   3
3   9
3   3
`

func TestSample(t *testing.T) {
	l := Parse([]byte(sample))
	assert.Equal(t, 11, Part1(l))
	assert.Equal(t, 31, Part2(l))
	assert.Equal(t, []int{3, 4, 2, 1, 3, 3}, l.Left, "Part1 sorted the input")
}

func TestParseRejectsMalformed(t *testing.T) {
	assert.Panics(t, func() { Parse([]byte("1 2 3\n")) })
	assert.Panics(t, func() { Parse([]byte("1 x\n")) })
}
