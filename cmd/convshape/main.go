// convshape prints the geometry of a convolution or pooling operation:
// resolved padding, output spatial dimensions, output shape and its memory
// footprint.
//
// Examples:
//
//	convshape -op=conv2d -input=1,5,5,3 -filter=3,3,3,8 -pad=same
//	convshape -op=pool3d -input=2,8,8,8,16 -filter=2 -strides=2 -pad=valid -format=NDHWC
//	convshape -op=conv2d -input=1,224,224,3 -filter=7,7,3,64 -strides=2 -pad=3 -dtype=float16
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/convgeom"
	"github.com/gomlx/convgeom/types/shapes"
)

var (
	flagOp        = flag.String("op", "conv2d", "Operation: conv2d, conv3d, pool2d, pool3d or dilation2d.")
	flagInput     = flag.String("input", "", "Input shape, comma-separated dimensions, e.g. 1,5,5,3.")
	flagFilter    = flag.String("filter", "", "Filter shape for conv ops, or window size(s) for pool ops.")
	flagStrides   = flag.String("strides", "1", "Stride(s): one value or one per spatial axis.")
	flagDilations = flag.String("dilations", "1", "Dilation(s): one value or one per spatial axis.")
	flagPad       = flag.String("pad", "valid", "Padding: same, valid, a number, or per-axis low:high pairs "+
		"separated by commas, e.g. 0:0,1:1,1:1,0:0.")
	flagRounding = flag.String("rounding", "", "Rounding mode for numeric/explicit padding: floor, nearest or ceil.")
	flagFormat   = flag.String("format", "", "Data format: NHWC or NCHW (2D), NDHWC or NCDHW (3D). Defaults to channels-last.")
	flagDType    = flag.String("dtype", "float32", "DType of the input tensor, used for the memory footprint.")
	flagDepth    = flag.Bool("depthwise", false, "Depthwise convolution: output channels = filter channels * input channels.")
)

func parseDims(s string) ([]int, error) {
	if s == "" {
		return nil, errors.New("empty dimensions list")
	}
	parts := strings.Split(s, ",")
	dims := make([]int, len(parts))
	for ii, part := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid dimension %q", part)
		}
		dims[ii] = dim
	}
	return dims, nil
}

func parsePad(s string) (convgeom.Padding, error) {
	switch s {
	case "same":
		return convgeom.Same, nil
	case "valid":
		return convgeom.Valid, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return convgeom.PadNumber(n), nil
	}
	var explicit convgeom.PadExplicit
	for _, pairStr := range strings.Split(s, ",") {
		lowHigh := strings.Split(pairStr, ":")
		if len(lowHigh) != 2 {
			return nil, errors.Errorf("invalid padding %q: want same, valid, a number or low:high pairs", s)
		}
		low, err := strconv.Atoi(strings.TrimSpace(lowHigh[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid padding %q", s)
		}
		high, err := strconv.Atoi(strings.TrimSpace(lowHigh[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid padding %q", s)
		}
		explicit = append(explicit, [2]int{low, high})
	}
	return explicit, nil
}

func parseRounding(s string) (convgeom.RoundingMode, error) {
	if s == "" {
		return convgeom.RoundDefault, nil
	}
	return convgeom.RoundingModeString(s)
}

func format2D() convgeom.ChannelsAxisConfig {
	if *flagFormat == "" {
		return convgeom.ChannelsLast
	}
	return must.M1(convgeom.ConvertConv2DDataFormat(*flagFormat))
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	dtype := must.M1(dtypes.DTypeString(*flagDType))
	input := shapes.Make(dtype, must.M1(parseDims(*flagInput))...)
	strides := must.M1(parseDims(*flagStrides))
	dilations := must.M1(parseDims(*flagDilations))
	pad := must.M1(parsePad(*flagPad))
	rounding := must.M1(parseRounding(*flagRounding))

	var output shapes.Shape
	switch *flagOp {
	case "conv2d":
		filter := must.M1(parseDims(*flagFilter))
		info := must.M1(convgeom.ComputeConv2DInfo(input.Dimensions, filter, strides, dilations,
			pad, rounding, *flagDepth, format2D()))
		printPad2D(info.PadInfo)
		output = shapes.Shape{DType: dtype, Dimensions: info.OutShape}
	case "dilation2d":
		filter := must.M1(parseDims(*flagFilter))
		dataFormat := *flagFormat
		if dataFormat == "" {
			dataFormat = "NHWC"
		}
		info := must.M1(convgeom.ComputeDilation2DInfo(input.Dimensions, filter, strides, pad, dataFormat, dilations))
		printPad2D(info.PadInfo)
		output = shapes.Shape{DType: dtype, Dimensions: info.OutShape}
	case "pool2d":
		filter := must.M1(parseDims(*flagFilter))
		info := must.M1(convgeom.ComputePool2DInfo(input.Dimensions, filter, strides, dilations,
			pad, rounding, format2D()))
		printPad2D(info.PadInfo)
		output = shapes.Shape{DType: dtype, Dimensions: info.OutShape}
	case "conv3d":
		filter := must.M1(parseDims(*flagFilter))
		config := convgeom.ChannelsLast
		if *flagFormat != "" {
			config = must.M1(convgeom.ConvertConv3DDataFormat(*flagFormat))
		}
		info := must.M1(convgeom.ComputeConv3DInfo(input.Dimensions, filter, strides, dilations,
			pad, rounding, *flagDepth, config))
		printPad3D(info.PadInfo)
		output = shapes.Shape{DType: dtype, Dimensions: info.OutShape}
	case "pool3d":
		filter := must.M1(parseDims(*flagFilter))
		dataFormat := *flagFormat
		if dataFormat == "" {
			dataFormat = "NDHWC"
		}
		info := must.M1(convgeom.ComputePool3DInfo(input.Dimensions, filter, strides, dilations,
			pad, rounding, dataFormat))
		printPad3D(info.PadInfo)
		output = shapes.Shape{DType: dtype, Dimensions: info.OutShape}
	default:
		klog.Exitf("unknown -op=%q, want conv2d, conv3d, pool2d, pool3d or dilation2d", *flagOp)
	}

	fmt.Printf("input:  %s\n", input)
	fmt.Printf("output: %s, %s\n", output, humanize.Bytes(uint64(output.Memory())))
}

func printPad2D(padInfo convgeom.PadInfo) {
	fmt.Printf("pad:    %s top=%d bottom=%d left=%d right=%d\n",
		padInfo.Type, padInfo.Top, padInfo.Bottom, padInfo.Left, padInfo.Right)
}

func printPad3D(padInfo convgeom.PadInfo3D) {
	fmt.Printf("pad:    %s front=%d back=%d top=%d bottom=%d left=%d right=%d\n",
		padInfo.Type, padInfo.Front, padInfo.Back, padInfo.Top, padInfo.Bottom, padInfo.Left, padInfo.Right)
}
