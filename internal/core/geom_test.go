package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 4)

	assert.Equal(t, NewRect(30, 10, 20, 4), inner)

	offset := NewRect(10, 2, 10, 10).Centered(4, 4)
	assert.Equal(t, NewRect(13, 5, 4, 4), offset)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ClampF(tc.val, tc.min, tc.max))
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, 10, Max(5, 10))
	assert.Equal(t, 10, Max(10, 5))
	assert.Equal(t, -1, Max(-1, -3))
}
