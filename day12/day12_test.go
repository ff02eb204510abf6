package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	small = `AAAA
BBCD
BBCC
EEEC
`
	holes = `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO
`
	eShape = `EEEEE
EXXXX
EEEEE
EXXXX
EEEEE
`
	abba = `AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA
`
	large = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`
)

func TestSamples(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		part1, part2 int
	}{
		{"small", small, 140, 80},
		{"holes", holes, 772, 436},
		{"e-shape", eShape, 692, 236},
		{"abba", abba, 1184, 368},
		{"large", large, 1930, 1206},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Parse([]byte(tt.in))
			assert.Equal(t, tt.part1, Part1(g))
			assert.Equal(t, tt.part2, Part2(g))
		})
	}
}

func TestRegionsPartitionGarden(t *testing.T) {
	g := Parse([]byte(large))
	regions := Regions(g)
	assert.Len(t, regions, 11)

	size := g.Size()
	seen := map[[2]int]bool{}
	total := 0
	for _, r := range regions {
		total += r.Area()
		for _, c := range r.Cells {
			assert.Equal(t, r.Plant, g.At(c))
			k := [2]int{c.X, c.Y}
			assert.False(t, seen[k], "cell %v in two regions", c)
			seen[k] = true
		}
	}
	assert.Equal(t, size.X*size.Y, total)
}

func TestSmallRegions(t *testing.T) {
	regions := Regions(Parse([]byte(small)))
	require.Len(t, regions, 5)
	want := map[byte]struct{ area, perimeter, sides int }{
		'A': {4, 10, 4},
		'B': {4, 8, 4},
		'C': {4, 10, 8},
		'D': {1, 4, 4},
		'E': {3, 8, 4},
	}
	for _, r := range regions {
		w := want[r.Plant]
		assert.Equal(t, w.area, r.Area(), "%c area", r.Plant)
		assert.Equal(t, w.perimeter, r.Perimeter(), "%c perimeter", r.Plant)
		assert.Equal(t, w.sides, r.Sides(), "%c sides", r.Plant)
	}
}

func TestSquares(t *testing.T) {
	for _, in := range []string{"A\n", "AA\nAA\n", "AAA\nAAA\nAAA\n", "AAAA\nAAAA\n"} {
		regions := Regions(Parse([]byte(in)))
		require.Len(t, regions, 1)
		r := regions[0]
		g := Parse([]byte(in)).Size()
		assert.Equal(t, 2*(g.X+g.Y), r.Perimeter(), "%q", in)
		assert.Equal(t, 4, r.Sides(), "%q", in)
	}
}

func TestSolversDoNotMutate(t *testing.T) {
	g := Parse([]byte(large))
	before := g.Hash()
	Part1(g)
	Part2(g)
	assert.Equal(t, before, g.Hash())
}

func TestParseRejectsMalformed(t *testing.T) {
	assert.Panics(t, func() { Parse([]byte("AB\nA\n")) })
	assert.Panics(t, func() { Parse([]byte("A.\nAA\n")) })
}
