package day06

import (
	"testing"

	"github.com/maisem/aoc2024"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestSample(t *testing.T) {
	lab := Parse([]byte(sample))
	assert.Equal(t, aoc.Path{Pt: aoc.Pt{X: 4, Y: 6}, Dir: aoc.Up}, lab.Start)
	assert.Equal(t, 41, Part1(lab))
	assert.Equal(t, 6, Part2(lab))
}

func TestSolversDoNotMutate(t *testing.T) {
	lab := Parse([]byte(sample))
	before := lab.Grid.Hash()
	p1, p2 := Part1(lab), Part2(lab)
	assert.Equal(t, before, lab.Grid.Hash())
	assert.Equal(t, p1, Part1(lab))
	assert.Equal(t, p2, Part2(lab))
}

func TestLoopObstaclesLoop(t *testing.T) {
	lab := Parse([]byte(sample))
	obstacles := LoopObstacles(lab)
	require.Len(t, obstacles, 6)
	for _, c := range obstacles {
		assert.NotEqual(t, lab.Start.Pt, c, "start cell offered as an obstacle")
		g := lab.Grid.Clone()
		g.Set(c, Obstacle)
		assert.True(t, Loops(g, lab.Start), "obstacle at %v", c)
		_, exited := Walk(g, lab.Start)
		assert.False(t, exited, "obstacle at %v", c)
	}
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		visited int
		exited  bool
	}{
		{
			name:    "straight out",
			in:      "...\n.^.\n...\n",
			visited: 2,
			exited:  true,
		},
		{
			name:    "turn then out",
			in:      ".#.\n.^.\n...\n",
			visited: 2,
			exited:  true,
		},
		{
			name:    "boxed in",
			in:      ".#.\n#^#\n.#.\n",
			visited: 1,
			exited:  true,
		},
		{
			// The guard circles back to the start cell and turns to face up again.
			name: "loop",
			in: `.#..
...#
#^..
..#.
`,
			visited: 4,
			exited:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lab := Parse([]byte(tt.in))
			visited, exited := Walk(lab.Grid, lab.Start)
			assert.Len(t, visited, tt.visited)
			assert.Equal(t, tt.exited, exited)
			assert.Equal(t, !tt.exited, Loops(lab.Grid, lab.Start))
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"no guard":                "...\n.#.\n",
		"two guards":              "^..\n..v\n",
		"bad tile":                "..x\n.^.\n",
		"ragged":                  "...\n.^\n",
		"rows after a blank line": "...\n.^.\n\n^..\n",
		"junk after a blank line": "...\n.^.\n...\n\n#x?\nzz\n",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, func() { Parse([]byte(in)) })
		})
	}
}

func TestTrackerMatchesWalk(t *testing.T) {
	lab := Parse([]byte(sample))
	grid := lab.Grid.Clone()
	tr := newTracker(grid)
	grid.ForEach(func(c aoc.Pt, tile Tile) {
		if tile == Obstacle || c == lab.Start.Pt {
			return
		}
		grid.Set(c, Obstacle)
		_, exited := Walk(grid, lab.Start)
		assert.Equal(t, !exited, tr.loops(grid, lab.Start), "obstacle at %v", c)
		grid.Set(c, Empty)
	})
}
