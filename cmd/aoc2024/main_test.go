package main

import (
	"testing"

	"github.com/maisem/aoc2024"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	results := aoc.RunSamples(2024, source, &solver{})
	require.Len(t, results, 24)
	for _, r := range results {
		assert.NoError(t, r.Err, r.Name)
		assert.Equal(t, r.Want, r.Got, r.Name)
	}
}
