package aoc

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=31`,
			want: sample{
				want: "31",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

const solverSrc = `package main

/*
want=3

1 2
*/
func (s solver) D1p1() any { return nil }

// want=2
func (s solver) D1p2() any { return nil }

/*
want=7

7
*/
func (s solver) D2p1() any { return nil }
`

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any {
	return Sum(IntFields(string(s.Input()))...)
}

func (s testSolver) D1p2() any {
	return len(IntFields(string(s.Input())))
}

func (s testSolver) D2p1() any {
	return Int("x" + string(s.Input()))
}

func TestRunSamples(t *testing.T) {
	got := RunSamples(2024, []byte(solverSrc), &testSolver{})
	if len(got) != 3 {
		t.Fatalf("got %d results; want 3", len(got))
	}
	for _, r := range got[:2] {
		if !r.OK() {
			t.Errorf("%s: got %q, want %q (err %v)", r.Name, r.Got, r.Want, r.Err)
		}
	}
	if r := got[2]; r.Err == nil {
		t.Errorf("%s: got %q, want a malformed input error", r.Name, r.Got)
	}
}

func TestPartName(t *testing.T) {
	for in, want := range map[string]string{"1": "one", "2": "two", "2b": "2b"} {
		if got := partName(in); got != want {
			t.Errorf("partName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParallelKeepsOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := Parallel(3, in, func(v int) int { return v * v })
	want := []int{1, 4, 9, 16, 25, 36, 49, 64, 81}
	if !slices.Equal(got, want) {
		t.Errorf("Parallel = %v, want %v", got, want)
	}
	sum := ParallelMapFold(2, in, func(v int) int { return v * 2 }, func(acc, v int) int { return acc + v }, 0)
	if sum != 90 {
		t.Errorf("ParallelMapFold = %d, want 90", sum)
	}
}

func TestPuzzleDay(t *testing.T) {
	p := &Puzzle{day: day{day: 7}}
	if got := p.Day(); got != 7 {
		t.Errorf("Day = %d, want 7", got)
	}
	if got, want := filepath.Base(p.InputPath()), "07.in"; got != want {
		t.Errorf("InputPath base = %q, want %q", got, want)
	}
}

func TestParallelPanicIsRecovered(t *testing.T) {
	p := &Puzzle{}
	ps := partSolver{
		Name: "D1p1",
		Part: "1",
		fn: func() any {
			return Parallel(2, []int{1, 2, 3}, func(v int) int {
				if v == 2 {
					panic("bad item")
				}
				return v
			})
		},
	}
	_, _, err := p.call(ps)
	if err == nil || !strings.Contains(err.Error(), "bad item") {
		t.Errorf("call err = %v, want the worker's panic", err)
	}
}
