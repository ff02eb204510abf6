package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	ops := Parse([]byte("xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"))
	assert.Equal(t, []Op{
		{Kind: Mul, X: 2, Y: 4},
		{Kind: Mul, X: 5, Y: 5},
		{Kind: Mul, X: 11, Y: 8},
		{Kind: Mul, X: 8, Y: 5},
	}, ops)
	assert.Equal(t, 161, Part1(ops))

	ops = Parse([]byte("xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"))
	assert.Equal(t, 161, Part1(ops))
	assert.Equal(t, 48, Part2(ops))
}

func TestIgnoresNearMisses(t *testing.T) {
	ops := Parse([]byte("mul(4*, mul(6,9!, ?(12,34), mul ( 2 , 4 ), mul(1234,1), mul(12,3)"))
	assert.Equal(t, []Op{{Kind: Mul, X: 12, Y: 3}}, ops)
}
