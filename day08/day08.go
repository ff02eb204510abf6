// Package day08 solves "Resonant Collinearity".
package day08

import (
	"github.com/maisem/aoc2024"
	"golang.org/x/exp/maps"
)

// City is the antenna map.
type City struct {
	Size     aoc.Pt
	Antennas map[byte][]aoc.Pt // by frequency
}

// Parse reads the map; every character other than '.' is an antenna tuned
// to that character.
func Parse(in []byte) City {
	c := City{Antennas: map[byte][]aoc.Pt{}}
	g := aoc.ParseGrid(in)
	g.ForEach(func(p aoc.Pt, v byte) {
		if v != '.' {
			c.Antennas[v] = append(c.Antennas[v], p)
		}
	})
	c.Size = g.Size()
	return c
}

func (c City) inBounds(p aoc.Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.Size.X && p.Y < c.Size.Y
}

// forPairs calls f for every ordered pair of distinct antennas sharing a
// frequency.
func (c City) forPairs(f func(a, b aoc.Pt)) {
	for _, freq := range maps.Keys(c.Antennas) {
		ants := c.Antennas[freq]
		for i, a := range ants {
			for j, b := range ants {
				if i != j {
					f(a, b)
				}
			}
		}
	}
}

// Part1 counts the points in line with two same-frequency antennas and
// twice as far from one as from the other.
func Part1(c City) int {
	antinodes := map[aoc.Pt]bool{}
	c.forPairs(func(a, b aoc.Pt) {
		if p := b.Add(b.Sub(a)); c.inBounds(p) {
			antinodes[p] = true
		}
	})
	return len(antinodes)
}

// Part2 counts every grid point exactly in line with at least two
// same-frequency antennas.
func Part2(c City) int {
	antinodes := map[aoc.Pt]bool{}
	c.forPairs(func(a, b aoc.Pt) {
		d := b.Sub(a)
		k := aoc.GCD(d.X, d.Y)
		step := aoc.Pt{X: d.X / k, Y: d.Y / k}
		for p := a; c.inBounds(p); p = p.Add(step) {
			antinodes[p] = true
		}
	})
	return len(antinodes)
}
