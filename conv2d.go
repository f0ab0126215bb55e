package convgeom

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/convgeom/types/xslices"
)

// Conv2DInfo is the complete geometry descriptor of a 2D convolution or
// pooling operation. It is a report assembled once per call and never mutated
// afterwards: the compute kernel reads it to know how many output elements to
// produce and where the padding boundaries fall, and shape-inference consumers
// read OutShape without running any kernel.
type Conv2DInfo struct {
	BatchSize int
	Format    ChannelsAxisConfig

	InHeight, InWidth, InChannels    int
	OutHeight, OutWidth, OutChannels int

	PadInfo PadInfo

	StrideHeight, StrideWidth                   int
	FilterHeight, FilterWidth                   int
	EffectiveFilterHeight, EffectiveFilterWidth int
	DilationHeight, DilationWidth               int

	InShape, OutShape, FilterShape []int
}

// ComputeConv2DInfo computes the geometry of a 2D convolution.
//
// inShape is [batch, height, width, channels] for ChannelsLast or
// [batch, channels, height, width] for ChannelsFirst. filterShape is
// [height, width, inChannels, outChannels] -- the third slot is not read, the
// input channel count always comes from inShape (depthwise filters store a
// channel multiplier in the last slot instead of an output channel count).
//
// strides and dilations accept a single broadcast value or one value per
// spatial axis. When depthwise is true the output channel count is
// filter channels (the multiplier) times the input channels.
func ComputeConv2DInfo(inShape, filterShape []int, strides, dilations []int,
	pad Padding, roundingMode RoundingMode, depthwise bool,
	config ChannelsAxisConfig) (Conv2DInfo, error) {
	if len(inShape) != 4 {
		return Conv2DInfo{}, errors.Errorf("Conv2D requires a rank-4 input shape, got %v", inShape)
	}
	if len(filterShape) != 4 {
		return Conv2DInfo{}, errors.Errorf("Conv2D requires a rank-4 filter shape, got %v", filterShape)
	}
	var batchSize, inHeight, inWidth, inChannels int
	switch config {
	case ChannelsLast:
		batchSize, inHeight, inWidth, inChannels = inShape[0], inShape[1], inShape[2], inShape[3]
	case ChannelsFirst:
		batchSize, inChannels, inHeight, inWidth = inShape[0], inShape[1], inShape[2], inShape[3]
	default:
		return Conv2DInfo{}, errors.Errorf("unknown dataFormat (ChannelsAxisConfig) %d", config)
	}
	filterHeight, filterWidth := filterShape[0], filterShape[1]
	filterChannels := filterShape[3]

	strideTuple, err := parseTupleParam(strides)
	if err != nil {
		return Conv2DInfo{}, err
	}
	dilationTuple, err := parseTupleParam(dilations)
	if err != nil {
		return Conv2DInfo{}, err
	}
	strideHeight, strideWidth := strideTuple[0], strideTuple[1]
	dilationHeight, dilationWidth := dilationTuple[0], dilationTuple[1]

	effectiveFilterHeight := EffectiveFilterSize(filterHeight, dilationHeight)
	effectiveFilterWidth := EffectiveFilterSize(filterWidth, dilationWidth)
	padInfo, outHeight, outWidth, err := ResolvePadding2D(
		pad, inHeight, inWidth, strideHeight, strideWidth,
		effectiveFilterHeight, effectiveFilterWidth, roundingMode, config)
	if err != nil {
		return Conv2DInfo{}, err
	}

	outChannels := filterChannels
	if depthwise {
		outChannels = filterChannels * inChannels
	}

	var outShape []int
	if config == ChannelsFirst {
		outShape = []int{batchSize, outChannels, outHeight, outWidth}
	} else {
		outShape = []int{batchSize, outHeight, outWidth, outChannels}
	}

	info := Conv2DInfo{
		BatchSize:             batchSize,
		Format:                config,
		InHeight:              inHeight,
		InWidth:               inWidth,
		InChannels:            inChannels,
		OutHeight:             outHeight,
		OutWidth:              outWidth,
		OutChannels:           outChannels,
		PadInfo:               padInfo,
		StrideHeight:          strideHeight,
		StrideWidth:           strideWidth,
		FilterHeight:          filterHeight,
		FilterWidth:           filterWidth,
		EffectiveFilterHeight: effectiveFilterHeight,
		EffectiveFilterWidth:  effectiveFilterWidth,
		DilationHeight:        dilationHeight,
		DilationWidth:         dilationWidth,
		InShape:               xslices.Copy(inShape),
		OutShape:              outShape,
		FilterShape:           xslices.Copy(filterShape),
	}
	if klog.V(2).Enabled() {
		klog.Infof("Conv2D geometry: in=%v filter=%v -> out=%v, pad=%+v", inShape, filterShape, outShape, padInfo)
	}
	return info, nil
}
