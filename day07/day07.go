// Package day07 solves "Bridge Repair".
package day07

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2024"
)

type Equation struct {
	Target int
	Nums   []int
}

// Parse reads lines of the form "target: n1 n2 ...".
func Parse(in []byte) []Equation {
	var out []Equation
	for _, line := range strings.Split(string(in), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := aoc.Split(line, ":", 2)
		e := Equation{
			Target: aoc.Int(parts[0]),
			Nums:   aoc.IntFields(parts[1]),
		}
		if len(e.Nums) == 0 {
			panic("no numbers in " + line)
		}
		out = append(out, e)
	}
	return out
}

type op func(a, b int) int

func add(a, b int) int { return a + b }
func mul(a, b int) int { return a * b }

// Solvable reports whether some choice of ops between the numbers,
// evaluated left to right, yields the target. With no zeros among the
// numbers every op only grows the running value, so branches past the
// target are cut.
func (e Equation) Solvable(ops ...op) bool {
	prune := !slices.Contains(e.Nums, 0)
	var try func(acc int, rest []int) bool
	try = func(acc int, rest []int) bool {
		if prune && acc > e.Target {
			return false
		}
		if len(rest) == 0 {
			return acc == e.Target
		}
		for _, o := range ops {
			if try(o(acc, rest[0]), rest[1:]) {
				return true
			}
		}
		return false
	}
	return try(e.Nums[0], e.Nums[1:])
}

func calibration(eqs []Equation, ops ...op) int {
	sum := 0
	for _, e := range eqs {
		if e.Solvable(ops...) {
			sum += e.Target
		}
	}
	return sum
}

func Part1(eqs []Equation) int {
	return calibration(eqs, add, mul)
}

// Part2 also allows concatenating the digits of two numbers.
func Part2(eqs []Equation) int {
	return calibration(eqs, add, mul, aoc.Concat[int])
}
