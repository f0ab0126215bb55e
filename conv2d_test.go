package convgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeConv2DInfo(t *testing.T) {
	info, err := ComputeConv2DInfo(
		[]int{1, 5, 5, 3}, []int{3, 3, 3, 8},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, 1, info.BatchSize)
	assert.Equal(t, 5, info.OutHeight)
	assert.Equal(t, 5, info.OutWidth)
	assert.Equal(t, 8, info.OutChannels)
	assert.Equal(t, PadInfo{Top: 1, Bottom: 1, Left: 1, Right: 1, Type: PadTypeSame}, info.PadInfo)
	assert.Equal(t, []int{1, 5, 5, 8}, info.OutShape)
	assert.Equal(t, 3, info.InChannels)
	assert.Equal(t, 3, info.EffectiveFilterHeight)
	assert.Equal(t, []int{1, 5, 5, 3}, info.InShape)
	assert.Equal(t, []int{3, 3, 3, 8}, info.FilterShape)
}

func TestComputeConv2DInfoLayoutSymmetry(t *testing.T) {
	// Same logical N,H,W,C under both layouts: everything but the axis order
	// of OutShape must match.
	last, err := ComputeConv2DInfo(
		[]int{2, 9, 7, 4}, []int{3, 3, 4, 16},
		[]int{2}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.NoError(t, err)
	first, err := ComputeConv2DInfo(
		[]int{2, 4, 9, 7}, []int{3, 3, 4, 16},
		[]int{2}, []int{1}, Same, RoundDefault, false, ChannelsFirst)
	require.NoError(t, err)

	assert.Equal(t, last.OutHeight, first.OutHeight)
	assert.Equal(t, last.OutWidth, first.OutWidth)
	assert.Equal(t, last.OutChannels, first.OutChannels)
	assert.Equal(t, last.PadInfo, first.PadInfo)
	assert.Equal(t, []int{2, last.OutHeight, last.OutWidth, 16}, last.OutShape)
	assert.Equal(t, []int{2, 16, first.OutHeight, first.OutWidth}, first.OutShape)
}

func TestComputeConv2DInfoDepthwise(t *testing.T) {
	// Depthwise filters carry a channel multiplier in the last slot.
	info, err := ComputeConv2DInfo(
		[]int{1, 8, 8, 4}, []int{3, 3, 4, 2},
		[]int{1}, []int{1}, Same, RoundDefault, true, ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, 8, info.OutChannels)
	assert.Equal(t, []int{1, 8, 8, 8}, info.OutShape)
}

func TestComputeConv2DInfoDilated(t *testing.T) {
	// Filter 3 with dilation 2 has effective size 5.
	info, err := ComputeConv2DInfo(
		[]int{1, 10, 10, 1}, []int{3, 3, 1, 1},
		[]int{1}, []int{2}, Valid, RoundDefault, false, ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, 5, info.EffectiveFilterHeight)
	assert.Equal(t, 5, info.EffectiveFilterWidth)
	assert.Equal(t, 6, info.OutHeight) // ceil((10-5+1)/1)
	assert.Equal(t, 6, info.OutWidth)
	assert.Equal(t, 2, info.DilationHeight)
}

func TestComputeConv2DInfoStrideAndDilationTuples(t *testing.T) {
	info, err := ComputeConv2DInfo(
		[]int{1, 12, 12, 1}, []int{3, 3, 1, 1},
		[]int{2, 3}, []int{1, 1}, Same, RoundDefault, false, ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, 2, info.StrideHeight)
	assert.Equal(t, 3, info.StrideWidth)
	assert.Equal(t, 6, info.OutHeight) // ceil(12/2)
	assert.Equal(t, 4, info.OutWidth)  // ceil(12/3)

	_, err = ComputeConv2DInfo(
		[]int{1, 12, 12, 1}, []int{3, 3, 1, 1},
		[]int{2, 3, 1, 1}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.ErrorContains(t, err, "strides and dilations")
}

func TestComputeConv2DInfoErrors(t *testing.T) {
	_, err := ComputeConv2DInfo(
		[]int{1, 5, 5, 3}, []int{3, 3, 3, 8},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsAxisConfig(7))
	require.ErrorContains(t, err, "unknown dataFormat")

	_, err = ComputeConv2DInfo(
		[]int{1, 5, 5}, []int{3, 3, 3, 8},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.ErrorContains(t, err, "rank-4 input")

	_, err = ComputeConv2DInfo(
		[]int{1, 5, 5, 3}, []int{3, 3, 3},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.ErrorContains(t, err, "rank-4 filter")

	_, err = ComputeConv2DInfo(
		[]int{1, 5, 5, 3}, []int{3, 3, 3, 8},
		[]int{1}, []int{1}, nil, RoundDefault, false, ChannelsLast)
	require.ErrorContains(t, err, "unknown padding parameter")
}

func TestConvertConv2DDataFormat(t *testing.T) {
	config, err := ConvertConv2DDataFormat("NHWC")
	require.NoError(t, err)
	assert.Equal(t, ChannelsLast, config)
	config, err = ConvertConv2DDataFormat("NCHW")
	require.NoError(t, err)
	assert.Equal(t, ChannelsFirst, config)
	_, err = ConvertConv2DDataFormat("NWHC")
	require.ErrorContains(t, err, "unknown dataFormat")
}
