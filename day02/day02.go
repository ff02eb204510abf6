// Package day02 solves "Red-Nosed Reports".
package day02

import (
	"strings"

	"github.com/maisem/aoc2024"
)

type Report []int

// Parse reads one report of whitespace separated levels per line.
func Parse(in []byte) []Report {
	var out []Report
	for _, line := range strings.Split(string(in), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, aoc.IntFields(line))
	}
	return out
}

// Safe reports whether the levels are strictly increasing or strictly
// decreasing, by 1 to 3 at each step.
func (r Report) Safe() bool {
	return r.safeWithout(-1)
}

// Dampened reports whether r is safe once at most one level is removed.
func (r Report) Dampened() bool {
	if r.Safe() {
		return true
	}
	for i := range r {
		if r.safeWithout(i) {
			return true
		}
	}
	return false
}

// safeWithout is Safe for r with level skip left out.
func (r Report) safeWithout(skip int) bool {
	sign := 0
	prev, havePrev := 0, false
	for i, v := range r {
		if i == skip {
			continue
		}
		if !havePrev {
			prev, havePrev = v, true
			continue
		}
		d := v - prev
		prev = v
		if d == 0 || aoc.AbsDiff(d, 0) > 3 {
			return false
		}
		s := 1
		if d < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

func Part1(reports []Report) int {
	n := 0
	for _, r := range reports {
		if r.Safe() {
			n++
		}
	}
	return n
}

func Part2(reports []Report) int {
	n := 0
	for _, r := range reports {
		if r.Dampened() {
			n++
		}
	}
	return n
}
