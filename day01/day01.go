// Package day01 solves "Historian Hysteria".
package day01

import (
	"bufio"
	"bytes"
	"fmt"
	"slices"

	"github.com/maisem/aoc2024"
)

// Lists holds the two location id columns.
type Lists struct {
	Left, Right []int
}

// Parse reads lines of two whitespace separated ints.
func Parse(in []byte) Lists {
	var l Lists
	s := bufio.NewScanner(bytes.NewReader(in))
	for s.Scan() {
		if len(bytes.TrimSpace(s.Bytes())) == 0 {
			continue
		}
		v := aoc.IntFields(s.Text())
		if len(v) != 2 {
			panic(fmt.Sprintf("line %q: want two numbers", s.Text()))
		}
		l.Left = append(l.Left, v[0])
		l.Right = append(l.Right, v[1])
	}
	aoc.MustDo(s.Err())
	return l
}

// Part1 pairs the lists up smallest to smallest and sums the distances.
func Part1(l Lists) int {
	left, right := slices.Clone(l.Left), slices.Clone(l.Right)
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total
}

// Part2 is the similarity score: each left number times how often it
// appears on the right.
func Part2(l Lists) int {
	counts := aoc.CounterOf(l.Right...)
	total := 0
	for _, v := range l.Left {
		total += v * int(counts[v])
	}
	return total
}
