// Package day12 solves "Garden Groups".
package day12

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2024"
)

// Garden is a grid of plant letters.
type Garden = aoc.Grid[byte]

// Parse reads a rectangular grid of letters.
func Parse(in []byte) Garden {
	return aoc.ParseGridFunc(in, func(p aoc.Pt, c byte) byte {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			panic(fmt.Sprintf("bad plant %q at %v", c, p))
		}
		return c
	})
}

// Region is a maximal 4-connected set of cells growing the same plant.
type Region struct {
	Plant byte
	Cells []aoc.Pt

	in map[aoc.Pt]bool
}

func newRegion(plant byte, cells []aoc.Pt) Region {
	r := Region{Plant: plant, Cells: cells, in: make(map[aoc.Pt]bool, len(cells))}
	for _, c := range cells {
		r.in[c] = true
	}
	return r
}

// Regions splits g into its regions.
func Regions(g Garden) []Region {
	var out []Region
	for _, cells := range aoc.Regions(g) {
		out = append(out, newRegion(g.At(cells[0]), cells))
	}
	return out
}

func (r Region) Area() int {
	return len(r.Cells)
}

// Contains reports whether p is in r. Points off the grid never are.
func (r Region) Contains(p aoc.Pt) bool {
	return r.in[p]
}

// Perimeter is the number of cell edges between r and anything else,
// including the outside of the grid.
func (r Region) Perimeter() int {
	n := 0
	for _, c := range r.Cells {
		for _, d := range aoc.Directions {
			if !r.Contains(c.Add(d.Delta())) {
				n++
			}
		}
	}
	return n
}

// Sides is the number of straight fence segments around r.
//
// A cell whose neighbor in direction d is outside r has a fence on that side.
// Fences facing up or down line up along a row, those facing left or right
// along a column, and each run of consecutive cells shares one side.
func (r Region) Sides() int {
	sides := 0
	for _, d := range aoc.Directions {
		lines := map[int][]int{}
		for _, c := range r.Cells {
			if r.Contains(c.Add(d.Delta())) {
				continue
			}
			if d == aoc.Up || d == aoc.Down {
				lines[c.Y] = append(lines[c.Y], c.X)
			} else {
				lines[c.X] = append(lines[c.X], c.Y)
			}
		}
		for _, line := range lines {
			sides += runs(line)
		}
	}
	return sides
}

// runs counts the maximal runs of consecutive integers in vs.
func runs(vs []int) int {
	if len(vs) == 0 {
		return 0
	}
	slices.Sort(vs)
	n := 1
	for i := 1; i < len(vs); i++ {
		if vs[i] != vs[i-1]+1 {
			n++
		}
	}
	return n
}

// PerimeterPrice is area times perimeter.
func (r Region) PerimeterPrice() int {
	return r.Area() * r.Perimeter()
}

// SidePrice is area times number of sides.
func (r Region) SidePrice() int {
	return r.Area() * r.Sides()
}

func Part1(g Garden) int {
	total := 0
	for _, r := range Regions(g) {
		total += r.PerimeterPrice()
	}
	return total
}

func Part2(g Garden) int {
	total := 0
	for _, r := range Regions(g) {
		total += r.SidePrice()
	}
	return total
}
