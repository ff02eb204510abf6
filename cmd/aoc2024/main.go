// The aoc2024 command prints the answers to Days 1 through 12 of Advent of
// Code 2024. Each day reads input/NN.in; run with -day N for a single day or
// -sample to check the samples below.
package main

import (
	_ "embed"

	"github.com/maisem/aoc2024"
	"github.com/maisem/aoc2024/day01"
	"github.com/maisem/aoc2024/day02"
	"github.com/maisem/aoc2024/day03"
	"github.com/maisem/aoc2024/day04"
	"github.com/maisem/aoc2024/day05"
	"github.com/maisem/aoc2024/day06"
	"github.com/maisem/aoc2024/day07"
	"github.com/maisem/aoc2024/day08"
	"github.com/maisem/aoc2024/day09"
	"github.com/maisem/aoc2024/day10"
	"github.com/maisem/aoc2024/day11"
	"github.com/maisem/aoc2024/day12"
)

func main() {
	aoc.Run(2024, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	return day01.Part1(day01.Parse(s.Input()))
}

// want=31
func (s solver) D1p2() any {
	return day01.Part2(day01.Parse(s.Input()))
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	return day02.Part1(day02.Parse(s.Input()))
}

// want=4
func (s solver) D2p2() any {
	return day02.Part2(day02.Parse(s.Input()))
}

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func (s solver) D3p1() any {
	return day03.Part1(day03.Parse(s.Input()))
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (s solver) D3p2() any {
	return day03.Part2(day03.Parse(s.Input()))
}

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func (s solver) D4p1() any {
	return day04.Part1(day04.Parse(s.Input()))
}

// want=9
func (s solver) D4p2() any {
	return day04.Part2(day04.Parse(s.Input()))
}

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func (s solver) D5p1() any {
	return day05.Part1(day05.Parse(s.Input()))
}

// want=123
func (s solver) D5p2() any {
	return day05.Part2(day05.Parse(s.Input()))
}

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func (s solver) D6p1() any {
	return day06.Part1(day06.Parse(s.Input()))
}

// want=6
func (s solver) D6p2() any {
	return day06.Part2(day06.Parse(s.Input()))
}

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func (s solver) D7p1() any {
	return day07.Part1(day07.Parse(s.Input()))
}

// want=11387
func (s solver) D7p2() any {
	return day07.Part2(day07.Parse(s.Input()))
}

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func (s solver) D8p1() any {
	return day08.Part1(day08.Parse(s.Input()))
}

// want=34
func (s solver) D8p2() any {
	return day08.Part2(day08.Parse(s.Input()))
}

/*
want=1928

2333133121414131402
*/
func (s solver) D9p1() any {
	return day09.Part1(day09.Parse(s.Input()))
}

// want=2858
func (s solver) D9p2() any {
	return day09.Part2(day09.Parse(s.Input()))
}

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	return day10.Part1(day10.Parse(s.Input()))
}

// want=81
func (s solver) D10p2() any {
	return day10.Part2(day10.Parse(s.Input()))
}

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return day11.Part1(day11.Parse(s.Input()), s.Workers())
}

// want=65601038650482
func (s solver) D11p2() any {
	return day11.Part2(day11.Parse(s.Input()), s.Workers())
}

/*
want=1930

RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
*/
func (s solver) D12p1() any {
	g := day12.Parse(s.Input())
	s.Debugf("%d regions", len(day12.Regions(g)))
	return day12.Part1(g)
}

// want=1206
func (s solver) D12p2() any {
	return day12.Part2(day12.Parse(s.Input()))
}
