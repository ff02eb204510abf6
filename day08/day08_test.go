package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

func TestSample(t *testing.T) {
	c := Parse([]byte(sample))
	assert.Len(t, c.Antennas['0'], 4)
	assert.Len(t, c.Antennas['A'], 3)
	assert.Equal(t, 14, Part1(c))
	assert.Equal(t, 34, Part2(c))
}

func TestHarmonics(t *testing.T) {
	in := `T.........
...T......
.T........
..........
..........
..........
..........
..........
..........
..........
`
	assert.Equal(t, 9, Part2(Parse([]byte(in))))
}

func TestGridPointsBetween(t *testing.T) {
	// Antennas 2 apart along a row have a grid point in line between them.
	assert.Equal(t, 5, Part2(Parse([]byte("a.a..\n"))))
	assert.Equal(t, 1, Part1(Parse([]byte("a.a..\n"))))
}
