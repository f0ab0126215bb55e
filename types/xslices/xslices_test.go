package xslices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtAndLast(t *testing.T) {
	slice := []int{2, 3, 5, 7}
	assert.Equal(t, 2, At(slice, 0))
	assert.Equal(t, 7, At(slice, -1))
	assert.Equal(t, 5, At(slice, -2))
	assert.Equal(t, 7, Last(slice))
}

func TestCopy(t *testing.T) {
	slice := []int{1, 2, 3}
	slice2 := Copy(slice)
	require.Equal(t, slice, slice2)
	slice2[0] = 7
	assert.Equal(t, 1, slice[0])

	assert.Nil(t, Copy[int](nil))
	assert.Nil(t, Copy([]int{}))
}

func TestIota(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, Iota(2, 3))
	assert.Equal(t, []float64{0, 1}, Iota(0.0, 2))
	assert.Empty(t, Iota(0, 0))
}

func TestSliceWithValue(t *testing.T) {
	assert.Equal(t, []int{3, 3, 3, 3}, SliceWithValue(4, 3))
	assert.Empty(t, SliceWithValue(0, 1))
}

func TestAll(t *testing.T) {
	positive := func(v int) bool { return v > 0 }
	assert.True(t, All([]int{1, 2, 3}, positive))
	assert.False(t, All([]int{1, 0, 3}, positive))
	assert.True(t, All(nil, positive))
}
