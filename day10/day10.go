// Package day10 solves "Hoof It".
package day10

import (
	"github.com/maisem/aoc2024"
)

// Map is the topographic map with every uphill step (height h to h+1
// between neighbors) as a directed edge.
type Map struct {
	Heights    aoc.Grid[int]
	Trails     aoc.Graph[aoc.Pt]
	Trailheads []aoc.Pt
}

// Parse reads a grid of height digits.
func Parse(in []byte) Map {
	m := Map{
		Heights: aoc.ParseGridFunc(in, func(_ aoc.Pt, c byte) int {
			return aoc.Digit(rune(c))
		}),
	}
	m.Heights.ForEach(func(p aoc.Pt, h int) {
		if h == 0 {
			m.Trailheads = append(m.Trailheads, p)
		}
		m.Trails.AddNode(p)
		for _, d := range aoc.Directions {
			n := p.Add(d.Delta())
			if nh, ok := m.Heights.AtOk(n); ok && nh == h+1 {
				m.Trails.AddDirectedEdge(p, n, 1)
			}
		}
	})
	return m
}

// peaks returns the height 9 positions reachable from p.
func (m *Map) peaks(p aoc.Pt) []aoc.Pt {
	var out []aoc.Pt
	for n := range m.Trails.ReachableNodes(p) {
		if m.Heights.At(n) == 9 {
			out = append(out, n)
		}
	}
	return out
}

// Score is the number of height 9 positions reachable from trailhead p.
func (m *Map) Score(p aoc.Pt) int {
	return len(m.peaks(p))
}

// Rating is the number of distinct hiking trails starting at p.
func (m *Map) Rating(p aoc.Pt) int {
	n := 0
	for _, peak := range m.peaks(p) {
		n += m.Trails.NumPaths(p, peak)
	}
	return n
}

func sumOver(m Map, f func(aoc.Pt) int) int {
	vs := make([]int, len(m.Trailheads))
	for i, th := range m.Trailheads {
		vs[i] = f(th)
	}
	return aoc.Sum(vs...)
}

func Part1(m Map) int {
	return sumOver(m, m.Score)
}

func Part2(m Map) int {
	return sumOver(m, m.Rating)
}
