// Package day03 solves "Mull It Over".
package day03

import (
	"regexp"

	"github.com/maisem/aoc2024"
)

// Op is one instruction found in the corrupted memory.
type Op struct {
	Kind Kind
	X, Y int // operands of a Mul
}

type Kind int

const (
	Mul Kind = iota
	Do
	Dont
)

var opRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Parse extracts the mul(X,Y), do() and don't() instructions in order,
// ignoring everything else.
func Parse(in []byte) []Op {
	var ops []Op
	for _, m := range opRx.FindAllSubmatch(in, -1) {
		switch string(m[0]) {
		case "do()":
			ops = append(ops, Op{Kind: Do})
		case "don't()":
			ops = append(ops, Op{Kind: Dont})
		default:
			ops = append(ops, Op{Kind: Mul, X: aoc.Int(string(m[1])), Y: aoc.Int(string(m[2]))})
		}
	}
	return ops
}

func run(ops []Op, switches bool) int {
	sum := 0
	enabled := true
	for _, op := range ops {
		switch op.Kind {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled || !switches {
				sum += op.X * op.Y
			}
		}
	}
	return sum
}

func Part1(ops []Op) int {
	return run(ops, false)
}

// Part2 honours do() and don't(); multiplications start enabled.
func Part2(ops []Op) int {
	return run(ops, true)
}
