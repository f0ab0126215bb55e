package convgeom

import (
	"github.com/pkg/errors"
)

// ComputePool2DInfo computes the geometry of a 2D pooling operation. Pooling
// has no learned channel transform, so the filter shape is synthesized from
// filterSize (a single broadcast value or one value per spatial axis) with
// both channel slots set to the input channel count.
func ComputePool2DInfo(inShape []int, filterSize, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, config ChannelsAxisConfig) (Conv2DInfo, error) {
	if len(inShape) != 4 {
		return Conv2DInfo{}, errors.Errorf("Pool2D requires a rank-4 input shape, got %v", inShape)
	}
	filterTuple, err := parseTupleParam(filterSize)
	if err != nil {
		return Conv2DInfo{}, err
	}
	filterHeight, filterWidth := filterTuple[0], filterTuple[1]

	var filterShape []int
	switch config {
	case ChannelsLast:
		filterShape = []int{filterHeight, filterWidth, inShape[3], inShape[3]}
	case ChannelsFirst:
		filterShape = []int{filterHeight, filterWidth, inShape[1], inShape[1]}
	default:
		return Conv2DInfo{}, errors.Errorf("unknown dataFormat (ChannelsAxisConfig) %d", config)
	}
	return ComputeConv2DInfo(inShape, filterShape, strides, dilations, pad, roundingMode, false, config)
}

// ComputePool3DInfo computes the geometry of a 3D pooling operation. The
// dataFormat uses the external 3D vocabulary ("NDHWC" or "NCDHW"); see
// ComputePool2DInfo for the filter shape synthesis.
func ComputePool3DInfo(inShape []int, filterSize, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, dataFormat string) (Conv3DInfo, error) {
	if len(inShape) != 5 {
		return Conv3DInfo{}, errors.Errorf("Pool3D requires a rank-5 input shape, got %v", inShape)
	}
	filterTuple, err := parse3TupleParam(filterSize)
	if err != nil {
		return Conv3DInfo{}, err
	}
	filterDepth, filterHeight, filterWidth := filterTuple[0], filterTuple[1], filterTuple[2]

	config, err := ConvertConv3DDataFormat(dataFormat)
	if err != nil {
		return Conv3DInfo{}, err
	}
	var filterShape []int
	if config == ChannelsLast {
		filterShape = []int{filterDepth, filterHeight, filterWidth, inShape[4], inShape[4]}
	} else {
		filterShape = []int{filterDepth, filterHeight, filterWidth, inShape[1], inShape[1]}
	}
	return ComputeConv3DInfo(inShape, filterShape, strides, dilations, pad, roundingMode, false, config)
}
