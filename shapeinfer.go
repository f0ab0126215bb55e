package convgeom

import (
	"github.com/pkg/errors"

	"github.com/gomlx/convgeom/types/shapes"
)

// This file provides dtype-aware wrappers over the geometry calculators, for
// shape-inference consumers that want a typed output shape without running
// any kernel. The output carries the input's DType.

// Conv2D infers the output shape of a 2D convolution over input.
func Conv2D(input shapes.Shape, filterShape []int, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, depthwise bool,
	config ChannelsAxisConfig) (shapes.Shape, error) {
	if !input.Ok() {
		return shapes.Invalid(), errors.Errorf("Conv2D: invalid input shape %s", input)
	}
	info, err := ComputeConv2DInfo(input.Dimensions, filterShape, strides, dilations,
		pad, roundingMode, depthwise, config)
	if err != nil {
		return shapes.Invalid(), err
	}
	return shapes.Shape{DType: input.DType, Dimensions: info.OutShape}, nil
}

// Conv3D infers the output shape of a 3D convolution over input.
func Conv3D(input shapes.Shape, filterShape []int, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, depthwise bool,
	config ChannelsAxisConfig) (shapes.Shape, error) {
	if !input.Ok() {
		return shapes.Invalid(), errors.Errorf("Conv3D: invalid input shape %s", input)
	}
	info, err := ComputeConv3DInfo(input.Dimensions, filterShape, strides, dilations,
		pad, roundingMode, depthwise, config)
	if err != nil {
		return shapes.Invalid(), err
	}
	return shapes.Shape{DType: input.DType, Dimensions: info.OutShape}, nil
}

// Pool2D infers the output shape of a 2D pooling over input.
func Pool2D(input shapes.Shape, filterSize, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, config ChannelsAxisConfig) (shapes.Shape, error) {
	if !input.Ok() {
		return shapes.Invalid(), errors.Errorf("Pool2D: invalid input shape %s", input)
	}
	info, err := ComputePool2DInfo(input.Dimensions, filterSize, strides, dilations,
		pad, roundingMode, config)
	if err != nil {
		return shapes.Invalid(), err
	}
	return shapes.Shape{DType: input.DType, Dimensions: info.OutShape}, nil
}

// Pool3D infers the output shape of a 3D pooling over input, with the
// external "NDHWC"/"NCDHW" data-format vocabulary.
func Pool3D(input shapes.Shape, filterSize, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, dataFormat string) (shapes.Shape, error) {
	if !input.Ok() {
		return shapes.Invalid(), errors.Errorf("Pool3D: invalid input shape %s", input)
	}
	info, err := ComputePool3DInfo(input.Dimensions, filterSize, strides, dilations,
		pad, roundingMode, dataFormat)
	if err != nil {
		return shapes.Invalid(), err
	}
	return shapes.Shape{DType: input.DType, Dimensions: info.OutShape}, nil
}

// Dilation2D infers the output shape of a 2D morphological dilation over
// input, with the external "NHWC" data format.
func Dilation2D(input shapes.Shape, filterShape []int, strides []int,
	pad Padding, dataFormat string, dilations []int) (shapes.Shape, error) {
	if !input.Ok() {
		return shapes.Invalid(), errors.Errorf("Dilation2D: invalid input shape %s", input)
	}
	info, err := ComputeDilation2DInfo(input.Dimensions, filterShape, strides, pad, dataFormat, dilations)
	if err != nil {
		return shapes.Invalid(), err
	}
	return shapes.Shape{DType: input.DType, Dimensions: info.OutShape}, nil
}
