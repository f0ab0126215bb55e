package convgeom

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/convgeom/types/xslices"
)

// Conv3DInfo is the complete geometry descriptor of a 3D convolution or
// pooling operation. See Conv2DInfo; the depth axis comes before height and
// width everywhere.
type Conv3DInfo struct {
	BatchSize int
	Format    ChannelsAxisConfig

	InDepth, InHeight, InWidth, InChannels     int
	OutDepth, OutHeight, OutWidth, OutChannels int

	PadInfo PadInfo3D

	StrideDepth, StrideHeight, StrideWidth                            int
	FilterDepth, FilterHeight, FilterWidth                            int
	EffectiveFilterDepth, EffectiveFilterHeight, EffectiveFilterWidth int
	DilationDepth, DilationHeight, DilationWidth                      int

	InShape, OutShape, FilterShape []int
}

// ComputeConv3DInfo computes the geometry of a 3D convolution.
//
// inShape is [batch, depth, height, width, channels] for ChannelsLast or
// [batch, channels, depth, height, width] for ChannelsFirst. filterShape is
// [depth, height, width, inChannels, outChannels] -- as in 2D the
// input-channels slot is not read. Only PadNumber, Same and Valid padding are
// supported for 3D; Valid is resolved through the numeric zero-padding path.
func ComputeConv3DInfo(inShape, filterShape []int, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, depthwise bool,
	config ChannelsAxisConfig) (Conv3DInfo, error) {
	if len(inShape) != 5 {
		return Conv3DInfo{}, errors.Errorf("Conv3D requires a rank-5 input shape, got %v", inShape)
	}
	if len(filterShape) != 5 {
		return Conv3DInfo{}, errors.Errorf("Conv3D requires a rank-5 filter shape, got %v", filterShape)
	}
	var batchSize, inDepth, inHeight, inWidth, inChannels int
	switch config {
	case ChannelsLast:
		batchSize, inDepth, inHeight, inWidth, inChannels = inShape[0], inShape[1], inShape[2], inShape[3], inShape[4]
	case ChannelsFirst:
		batchSize, inChannels, inDepth, inHeight, inWidth = inShape[0], inShape[1], inShape[2], inShape[3], inShape[4]
	default:
		return Conv3DInfo{}, errors.Errorf("unknown dataFormat (ChannelsAxisConfig) %d", config)
	}
	filterDepth, filterHeight, filterWidth := filterShape[0], filterShape[1], filterShape[2]
	filterChannels := filterShape[4]

	strideTuple, err := parse3TupleParam(strides)
	if err != nil {
		return Conv3DInfo{}, err
	}
	dilationTuple, err := parse3TupleParam(dilations)
	if err != nil {
		return Conv3DInfo{}, err
	}
	strideDepth, strideHeight, strideWidth := strideTuple[0], strideTuple[1], strideTuple[2]
	dilationDepth, dilationHeight, dilationWidth := dilationTuple[0], dilationTuple[1], dilationTuple[2]

	effectiveFilterDepth := EffectiveFilterSize(filterDepth, dilationDepth)
	effectiveFilterHeight := EffectiveFilterSize(filterHeight, dilationHeight)
	effectiveFilterWidth := EffectiveFilterSize(filterWidth, dilationWidth)
	padInfo, outDepth, outHeight, outWidth, err := ResolvePadding3D(
		pad, inDepth, inHeight, inWidth,
		strideDepth, strideHeight, strideWidth,
		effectiveFilterDepth, effectiveFilterHeight, effectiveFilterWidth,
		roundingMode)
	if err != nil {
		return Conv3DInfo{}, err
	}

	outChannels := filterChannels
	if depthwise {
		outChannels = filterChannels * inChannels
	}

	var outShape []int
	if config == ChannelsFirst {
		outShape = []int{batchSize, outChannels, outDepth, outHeight, outWidth}
	} else {
		outShape = []int{batchSize, outDepth, outHeight, outWidth, outChannels}
	}

	info := Conv3DInfo{
		BatchSize:             batchSize,
		Format:                config,
		InDepth:               inDepth,
		InHeight:              inHeight,
		InWidth:               inWidth,
		InChannels:            inChannels,
		OutDepth:              outDepth,
		OutHeight:             outHeight,
		OutWidth:              outWidth,
		OutChannels:           outChannels,
		PadInfo:               padInfo,
		StrideDepth:           strideDepth,
		StrideHeight:          strideHeight,
		StrideWidth:           strideWidth,
		FilterDepth:           filterDepth,
		FilterHeight:          filterHeight,
		FilterWidth:           filterWidth,
		EffectiveFilterDepth:  effectiveFilterDepth,
		EffectiveFilterHeight: effectiveFilterHeight,
		EffectiveFilterWidth:  effectiveFilterWidth,
		DilationDepth:         dilationDepth,
		DilationHeight:        dilationHeight,
		DilationWidth:         dilationWidth,
		InShape:               xslices.Copy(inShape),
		OutShape:              outShape,
		FilterShape:           xslices.Copy(filterShape),
	}
	if klog.V(2).Enabled() {
		klog.Infof("Conv3D geometry: in=%v filter=%v -> out=%v, pad=%+v", inShape, filterShape, outShape, padInfo)
	}
	return info, nil
}
