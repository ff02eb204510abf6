// Package day06 solves "Guard Gallivant": a guard walks a lab grid, turning
// right at obstacles, and we look for single obstacles that trap the guard in a
// loop.
package day06

import (
	"fmt"

	"github.com/maisem/aoc2024"
)

type Tile byte

const (
	Empty Tile = iota
	Obstacle
)

func (t Tile) String() string {
	if t == Obstacle {
		return "#"
	}
	return "."
}

// Lab is the parsed puzzle: the floor plan with the guard's starting cell
// cleared, and the guard's starting position and facing.
type Lab struct {
	Grid  aoc.Grid[Tile]
	Start aoc.Path
}

// Parse reads a grid of . # ^ v < >. It panics unless there is exactly one
// guard.
func Parse(in []byte) Lab {
	var lab Lab
	guards := 0
	lab.Grid = aoc.ParseGridFunc(in, func(p aoc.Pt, c byte) Tile {
		switch c {
		case '.':
			return Empty
		case '#':
			return Obstacle
		}
		d, ok := aoc.DirectionOf(c)
		if !ok {
			panic(fmt.Sprintf("bad tile %q at %v", c, p))
		}
		guards++
		lab.Start = aoc.Path{Pt: p, Dir: d}
		return Empty
	})
	if guards != 1 {
		panic(fmt.Sprintf("found %d guards; want 1", guards))
	}
	return lab
}

// walk moves the guard from start, calling seen with the starting state and
// then after every step or turn. It returns true once the guard leaves the
// grid or is boxed in on all four sides, and false as soon as seen reports a
// state it has had before.
func walk(grid aoc.Grid[Tile], start aoc.Path, seen func(aoc.Path) bool) (exited bool) {
	seen(start)
	cur := start
	turns := 0
	for {
		ahead, ok := grid.Move(cur)
		if !ok {
			return true
		}
		if grid.At(ahead.Pt) == Obstacle {
			turns++
			if turns == 4 {
				return true
			}
			cur.Dir = cur.Dir.Turn(true)
		} else {
			turns = 0
			cur = ahead
		}
		if seen(cur) {
			return false
		}
	}
}

// Walk simulates the guard from start until it leaves the grid or repeats a
// (position, facing) state. It returns every position it stood on, start
// included, and whether it left. A guard boxed in on all four sides stops
// where it is and counts as having left.
func Walk(grid aoc.Grid[Tile], start aoc.Path) (visited map[aoc.Pt]bool, exited bool) {
	visited = map[aoc.Pt]bool{}
	states := map[aoc.Path]bool{}
	exited = walk(grid, start, func(p aoc.Path) bool {
		visited[p.Pt] = true
		if states[p] {
			return true
		}
		states[p] = true
		return false
	})
	return visited, exited
}

// Loops reports whether the walk from start never leaves the grid.
func Loops(grid aoc.Grid[Tile], start aoc.Path) bool {
	return newTracker(grid).loops(grid, start)
}

// tracker records (position, facing) states as one bit per direction per
// cell, so that it can be cleared and reused across many walks.
type tracker struct {
	width int
	seen  []uint8
}

func newTracker(grid aoc.Grid[Tile]) *tracker {
	size := grid.Size()
	return &tracker{
		width: size.X,
		seen:  make([]uint8, size.X*size.Y),
	}
}

// visit marks p and reports whether it had already been marked.
func (t *tracker) visit(p aoc.Path) bool {
	i := p.Pt.Y*t.width + p.Pt.X
	bit := uint8(1) << p.Dir
	if t.seen[i]&bit != 0 {
		return true
	}
	t.seen[i] |= bit
	return false
}

func (t *tracker) loops(grid aoc.Grid[Tile], start aoc.Path) bool {
	clear(t.seen)
	return !walk(grid, start, t.visit)
}

func Part1(lab Lab) int {
	visited, _ := Walk(lab.Grid, lab.Start)
	return len(visited)
}

// Part2 counts the cells where one extra obstacle makes the guard loop.
func Part2(lab Lab) int {
	return len(LoopObstacles(lab))
}

// LoopObstacles returns the cells where one extra obstacle makes the guard
// loop.
//
// Only cells on the unobstructed walk are tried. An obstacle anywhere else is
// never touched by the guard, so its walk, and whether it loops, is the same
// as without it. The starting cell is occupied by the guard and is skipped.
func LoopObstacles(lab Lab) []aoc.Pt {
	candidates, _ := Walk(lab.Grid, lab.Start)
	grid := lab.Grid.Clone()
	t := newTracker(grid)
	var out []aoc.Pt
	for c := range candidates {
		if c == lab.Start.Pt {
			continue
		}
		grid.Set(c, Obstacle)
		if t.loops(grid, lab.Start) {
			out = append(out, c)
		}
		grid.Set(c, Empty)
	}
	return out
}
