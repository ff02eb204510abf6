// Package day04 solves "Ceres Search".
package day04

import (
	"github.com/maisem/aoc2024"
)

// Parse reads the word search grid.
func Parse(in []byte) aoc.Grid[byte] {
	return aoc.ParseGrid(in)
}

// matches reports whether word is spelled from p stepping by d.
func matches(g aoc.Grid[byte], p, d aoc.Pt, word string) bool {
	for i := 0; i < len(word); i++ {
		if c, ok := g.AtOk(p.Add(d.Scale(i))); !ok || c != word[i] {
			return false
		}
	}
	return true
}

// Part1 counts XMAS in all eight directions, overlaps included.
func Part1(g aoc.Grid[byte]) int {
	n := 0
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != 'X' {
			return
		}
		aoc.Pt{}.ForNeighbors(func(d aoc.Pt) bool {
			if matches(g, p, d, "XMAS") {
				n++
			}
			return true
		})
	})
	return n
}

// Part2 counts the A cells at the center of two diagonal MAS, each read in
// either direction.
func Part2(g aoc.Grid[byte]) int {
	n := 0
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != 'A' {
			return
		}
		diag := func(d aoc.Pt) bool {
			start := p.Sub(d)
			return matches(g, start, d, "MAS") || matches(g, start, d, "SAM")
		}
		if diag(aoc.Pt{X: 1, Y: 1}) && diag(aoc.Pt{X: 1, Y: -1}) {
			n++
		}
	})
	return n
}
