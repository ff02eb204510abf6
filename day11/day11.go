// Package day11 solves "Plutonian Pebbles".
//
// Stones with the same number evolve identically and order never matters to
// the answer, so stones are kept as a multiset of number to count. A blink
// then costs one step per distinct number rather than per stone.
package day11

import (
	"strings"

	"github.com/maisem/aoc2024"
)

type Stones = aoc.Counter[int64]

// Parse reads whitespace separated non-negative numbers.
func Parse(in []byte) Stones {
	fields := strings.Fields(string(in))
	vs := make([]int64, len(fields))
	for i, f := range fields {
		vs[i] = aoc.Int64(f)
		if vs[i] < 0 {
			panic("negative stone " + f)
		}
	}
	return aoc.CounterOf(vs...)
}

// rule returns what a stone numbered v turns into after one blink; b is
// only set when the stone splits.
func rule(v int64) (a, b int64, split bool) {
	if v == 0 {
		return 1, 0, false
	}
	if n := aoc.NumDigits(v); n%2 == 0 {
		half := aoc.Pow10[int64](n / 2)
		return v / half, v % half, true
	}
	return v * 2024, 0, false
}

func blinkInto(out Stones, v, count int64) {
	a, b, split := rule(v)
	out.Add(a, count)
	if split {
		out.Add(b, count)
	}
}

// Blink returns the stones after one blink.
func Blink(s Stones) Stones {
	out := make(Stones, len(s))
	for v, n := range s {
		blinkInto(out, v, n)
	}
	return out
}

type entry struct {
	v, n int64
}

// BlinkParallel is Blink with the distinct numbers split across workers
// goroutines. The partial results are summed, so the result is the same as
// Blink's.
func BlinkParallel(s Stones, workers int) Stones {
	if workers <= 1 || len(s) < 2*workers {
		return Blink(s)
	}
	chunks := make([][]entry, workers)
	i := 0
	for v, n := range s {
		chunks[i%workers] = append(chunks[i%workers], entry{v, n})
		i++
	}
	return aoc.ParallelMapFold(workers, chunks, func(es []entry) Stones {
		out := make(Stones, len(es))
		for _, e := range es {
			blinkInto(out, e.v, e.n)
		}
		return out
	}, Stones.Merge, make(Stones, len(s)))
}

// Evolve returns the number of stones after n blinks.
func Evolve(s Stones, n int) int64 {
	return EvolveParallel(s, n, 1)
}

// EvolveParallel is Evolve using BlinkParallel.
func EvolveParallel(s Stones, n, workers int) int64 {
	for i := 0; i < n; i++ {
		s = BlinkParallel(s, workers)
	}
	return s.Total()
}

func Part1(s Stones, workers int) int64 {
	return EvolveParallel(s, 25, workers)
}

func Part2(s Stones, workers int) int64 {
	return EvolveParallel(s, 75, workers)
}
