package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular grid indexed as g[y][x], y being the row.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) InBounds(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(g) && p.X < len(g[p.Y])
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X, size.Y)
	for y := range g {
		copy(out[y], g[y])
	}
	return out
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

// Hash fingerprints the contents of g. Two grids with equal contents hash
// equally.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ParseGridFunc parses a rectangular block of text, one row per line, calling
// cell for every byte. Blank lines are allowed before and after the block. It
// panics if the rows differ in width or anything follows a blank line.
func ParseGridFunc[T any](in []byte, cell func(p Pt, c byte) T) Grid[T] {
	var g Grid[T]
	s := bufio.NewScanner(bytes.NewReader(in))
	ended := false
	for y := 0; s.Scan(); y++ {
		line := s.Bytes()
		if len(line) == 0 {
			if len(g) == 0 {
				y--
			} else {
				ended = true
			}
			continue
		}
		if ended {
			panic(fmt.Sprintf("line %d: %q after the end of the grid", y, line))
		}
		if len(g) > 0 && len(line) != len(g[0]) {
			panic(fmt.Sprintf("row %d has width %d; want %d", y, len(line), len(g[0])))
		}
		row := make([]T, len(line))
		for x, c := range line {
			row[x] = cell(Pt{x, y}, c)
		}
		g = append(g, row)
	}
	MustDo(s.Err())
	if len(g) == 0 {
		panic("empty grid")
	}
	return g
}

// ParseGrid parses a rectangular grid of bytes.
func ParseGrid(in []byte) Grid[byte] {
	return ParseGridFunc(in, func(_ Pt, c byte) byte { return c })
}

// Regions splits the grid into maximal 4-connected sets of equal cells. Every
// cell belongs to exactly one region; regions are returned in the row-major
// order of their first cell.
func Regions[T comparable](grid Grid[T]) [][]Pt {
	size := grid.Size()
	seen := MakeGrid[bool](size.X, size.Y)
	var out [][]Pt
	grid.ForEach(func(start Pt, v T) {
		if seen.At(start) {
			return
		}
		var region []Pt
		var s Stack[Pt]
		s.Push(start)
		seen.Set(start, true)
		s.While(func(p Pt) bool {
			region = append(region, p)
			for _, d := range Directions {
				n := p.Add(d.Delta())
				if nv, ok := grid.AtOk(n); ok && nv == v && !seen.At(n) {
					seen.Set(n, true)
					s.Push(n)
				}
			}
			return true
		})
		out = append(out, region)
	})
	return out
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell in its direction. It reports false if that leaves
// the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions in clockwise order starting at Up.
var Directions = []Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Delta is the unit step for d; Up decreases Y.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// DirectionOf returns the direction drawn as c (one of ^ > v <).
func DirectionOf(c byte) (Direction, bool) {
	switch c {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
