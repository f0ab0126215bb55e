package convgeom

import (
	"github.com/pkg/errors"
)

// ComputeDilation2DInfo computes the geometry of a 2D morphological dilation
// or erosion. The filter of such an op has no independent output-channel
// dimension -- filterShape is [height, width, depth] and the output channel
// count is forced equal to the input channels by appending them as the
// filter's channel dimension. Only the "NHWC" data format is supported, and
// neither rounding modes nor depthwise apply.
func ComputeDilation2DInfo(inShape, filterShape []int, strides []int,
	pad Padding, dataFormat string, dilations []int) (Conv2DInfo, error) {
	if len(inShape) != 4 {
		return Conv2DInfo{}, errors.Errorf("Dilation2D requires a rank-4 input shape, got %v", inShape)
	}
	if len(filterShape) != 3 {
		return Conv2DInfo{}, errors.Errorf("Dilation2D requires a rank-3 filter shape, got %v", filterShape)
	}
	if dataFormat != "NHWC" {
		return Conv2DInfo{}, errors.Errorf("Dilation2D only supports the NHWC dataFormat, got %q", dataFormat)
	}
	inChannels := inShape[3]
	fullFilterShape := []int{filterShape[0], filterShape[1], filterShape[2], inChannels}
	config, err := ConvertConv2DDataFormat(dataFormat)
	if err != nil {
		return Conv2DInfo{}, err
	}
	return ComputeConv2DInfo(inShape, fullFilterShape, strides, dilations, pad, RoundDefault, false, config)
}
