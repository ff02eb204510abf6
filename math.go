package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune. It panics if r is not a digit.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// NumDigits returns the number of decimal digits of v, ignoring the sign.
func NumDigits[T constraints.Integer](v T) int {
	if v < 0 {
		v = -v
	}
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Pow10 returns 10**n.
func Pow10[T constraints.Integer](n int) T {
	p := T(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Concat returns the number whose decimal digits are those of a followed by
// those of b. b must not be negative.
func Concat[T constraints.Integer](a, b T) T {
	return a*Pow10[T](NumDigits(b)) + b
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Int64 returns the int64 value of the string.
func Int64(s string) int64 {
	return MustGet(strconv.ParseInt(strings.TrimSpace(s), 10, 64))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// IntFields returns the whitespace separated ints in s.
func IntFields(s string) []int {
	return Ints(strings.Fields(s)...)
}

// Split splits s around sep and panics unless there are exactly n pieces.
func Split(s, sep string, n int) []string {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		panic(fmt.Sprintf("%q: got %d pieces split by %q; want %d", s, len(parts), sep, n))
	}
	return parts
}
