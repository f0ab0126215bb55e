package convgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeConv3DInfo(t *testing.T) {
	info, err := ComputeConv3DInfo(
		[]int{1, 5, 5, 5, 1}, []int{3, 3, 3, 1, 4},
		[]int{1}, []int{1}, Valid, RoundDefault, false, ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, 3, info.OutDepth)
	assert.Equal(t, 3, info.OutHeight)
	assert.Equal(t, 3, info.OutWidth)
	assert.Equal(t, 4, info.OutChannels)
	assert.Equal(t, PadTypeValid, info.PadInfo.Type)
	assert.Equal(t, []int{1, 3, 3, 3, 4}, info.OutShape)
}

func TestComputeConv3DInfoSame(t *testing.T) {
	info, err := ComputeConv3DInfo(
		[]int{1, 4, 4, 4, 2}, []int{2, 2, 2, 2, 8},
		[]int{2}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, 2, info.OutDepth)
	assert.Equal(t, 2, info.OutHeight)
	assert.Equal(t, 2, info.OutWidth)
	// (out-1)*stride + filter - in == 0: the window tiles exactly.
	assert.Equal(t, PadInfo3D{Type: PadTypeSame}, info.PadInfo)
	assert.Equal(t, []int{1, 2, 2, 2, 8}, info.OutShape)
}

func TestComputeConv3DInfoChannelsFirst(t *testing.T) {
	last, err := ComputeConv3DInfo(
		[]int{2, 6, 6, 6, 3}, []int{3, 3, 3, 3, 5},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.NoError(t, err)
	first, err := ComputeConv3DInfo(
		[]int{2, 3, 6, 6, 6}, []int{3, 3, 3, 3, 5},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsFirst)
	require.NoError(t, err)
	assert.Equal(t, last.PadInfo, first.PadInfo)
	assert.Equal(t, []int{2, 6, 6, 6, 5}, last.OutShape)
	assert.Equal(t, []int{2, 5, 6, 6, 6}, first.OutShape)
}

func TestComputeConv3DInfoDepthwise(t *testing.T) {
	info, err := ComputeConv3DInfo(
		[]int{1, 4, 4, 4, 3}, []int{2, 2, 2, 3, 2},
		[]int{1}, []int{1}, Same, RoundDefault, true, ChannelsLast)
	require.NoError(t, err)
	assert.Equal(t, 6, info.OutChannels)
}

func TestComputeConv3DInfoErrors(t *testing.T) {
	_, err := ComputeConv3DInfo(
		[]int{1, 5, 5, 5, 1}, []int{3, 3, 3, 1, 4},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsAxisConfig(3))
	require.ErrorContains(t, err, "unknown dataFormat")

	_, err = ComputeConv3DInfo(
		[]int{1, 5, 5, 5}, []int{3, 3, 3, 1, 4},
		[]int{1}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.ErrorContains(t, err, "rank-5 input")

	_, err = ComputeConv3DInfo(
		[]int{1, 5, 5, 5, 1}, []int{3, 3, 3, 1, 4},
		[]int{1, 2}, []int{1}, Same, RoundDefault, false, ChannelsLast)
	require.ErrorContains(t, err, "3D strides and dilations")

	// The 3D resolver has no explicit-padding branch.
	_, err = ComputeConv3DInfo(
		[]int{1, 5, 5, 5, 1}, []int{3, 3, 3, 1, 4},
		[]int{1}, []int{1}, PadExplicit{{0, 0}, {1, 1}, {1, 1}, {1, 1}, {0, 0}},
		RoundDefault, false, ChannelsLast)
	require.ErrorContains(t, err, "unknown padding parameter")
}

func TestConvertConv3DDataFormat(t *testing.T) {
	config, err := ConvertConv3DDataFormat("NDHWC")
	require.NoError(t, err)
	assert.Equal(t, ChannelsLast, config)
	config, err = ConvertConv3DDataFormat("NCDHW")
	require.NoError(t, err)
	assert.Equal(t, ChannelsFirst, config)
	_, err = ConvertConv3DDataFormat("NHWC")
	require.ErrorContains(t, err, "unknown dataFormat")
}
