package convgeom_test

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/convgeom"
	"github.com/gomlx/convgeom/types/shapes"
)

func TestConv2D(t *testing.T) {
	input := shapes.Make(dtypes.Float32, 1, 5, 5, 3)
	output, err := convgeom.Conv2D(input, []int{3, 3, 3, 8},
		[]int{1}, []int{1}, convgeom.Same, convgeom.RoundDefault, false, convgeom.ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, shapes.Make(dtypes.Float32, 1, 5, 5, 8), output)

	_, err = convgeom.Conv2D(shapes.Invalid(), []int{3, 3, 3, 8},
		[]int{1}, []int{1}, convgeom.Same, convgeom.RoundDefault, false, convgeom.ChannelsLast)
	require.ErrorContains(t, err, "invalid input shape")
}

func TestConv3D(t *testing.T) {
	input := shapes.Make(dtypes.Float64, 1, 5, 5, 5, 1)
	output, err := convgeom.Conv3D(input, []int{3, 3, 3, 1, 4},
		[]int{1}, []int{1}, convgeom.Valid, convgeom.RoundDefault, false, convgeom.ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, shapes.Make(dtypes.Float64, 1, 3, 3, 3, 4), output)
}

func TestPool2D(t *testing.T) {
	input := shapes.Make(dtypes.Float32, 1, 4, 4, 3)
	output, err := convgeom.Pool2D(input, []int{2}, []int{2}, []int{1},
		convgeom.Valid, convgeom.RoundDefault, convgeom.ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, shapes.Make(dtypes.Float32, 1, 2, 2, 3), output)
}

func TestPool3D(t *testing.T) {
	input := shapes.Make(dtypes.Float16, 2, 8, 8, 8, 16)
	output, err := convgeom.Pool3D(input, []int{2}, []int{2}, []int{1},
		convgeom.Valid, convgeom.RoundDefault, "NDHWC")
	require.NoError(t, err)
	assert.Equal(t, shapes.Make(dtypes.Float16, 2, 4, 4, 4, 16), output)

	_, err = convgeom.Pool3D(input, []int{2}, []int{2}, []int{1},
		convgeom.Valid, convgeom.RoundDefault, "NHWC")
	require.ErrorContains(t, err, "unknown dataFormat")
}

func TestDilation2D(t *testing.T) {
	input := shapes.Make(dtypes.Float32, 1, 5, 5, 3)
	output, err := convgeom.Dilation2D(input, []int{3, 3, 3},
		[]int{1}, convgeom.Same, "NHWC", []int{1})
	require.NoError(t, err)
	assert.Equal(t, input, output)
}
