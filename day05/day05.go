// Package day05 solves "Print Queue".
package day05

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2024"
)

// Queue holds the ordering rules and the updates to check against them.
type Queue struct {
	// Rules has an edge a -> b for every rule a|b: page a goes before b.
	Rules   aoc.Graph[int]
	Updates [][]int
}

// Parse reads the A|B rules, a blank line, then the comma separated
// updates. It panics if the blank line is missing.
func Parse(in []byte) Queue {
	rules, updates, ok := strings.Cut(strings.ReplaceAll(string(in), "\r\n", "\n"), "\n\n")
	if !ok {
		panic("missing blank line between rules and updates")
	}
	var q Queue
	for _, line := range strings.Split(strings.TrimSpace(rules), "\n") {
		ab := aoc.Ints(aoc.Split(line, "|", 2)...)
		q.Rules.AddDirectedEdge(ab[0], ab[1], 1)
	}
	for _, line := range strings.Split(strings.TrimSpace(updates), "\n") {
		q.Updates = append(q.Updates, aoc.Ints(strings.Split(line, ",")...))
	}
	return q
}

// cmp orders pages by the rules; pages with no rule between them are equal.
func (q *Queue) cmp(a, b int) int {
	switch {
	case q.Rules.HasEdge(a, b):
		return -1
	case q.Rules.HasEdge(b, a):
		return 1
	}
	return 0
}

// Ordered reports whether no rule puts a later page of u before an earlier
// one.
func (q *Queue) Ordered(u []int) bool {
	for i := range u {
		for j := i + 1; j < len(u); j++ {
			if q.Rules.HasEdge(u[j], u[i]) {
				return false
			}
		}
	}
	return true
}

// Fix returns u sorted by the rules.
func (q *Queue) Fix(u []int) []int {
	u = slices.Clone(u)
	slices.SortStableFunc(u, q.cmp)
	return u
}

func middle(u []int) int {
	return u[len(u)/2]
}

func Part1(q Queue) int {
	sum := 0
	for _, u := range q.Updates {
		if q.Ordered(u) {
			sum += middle(u)
		}
	}
	return sum
}

func Part2(q Queue) int {
	sum := 0
	for _, u := range q.Updates {
		if !q.Ordered(u) {
			sum += middle(q.Fix(u))
		}
	}
	return sum
}
