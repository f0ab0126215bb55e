package convgeom

import (
	"math"

	"github.com/pkg/errors"
)

// PadInfo holds the resolved per-side padding amounts for the two spatial axes
// of a 2D operation, and the PadType that tags how they were derived.
type PadInfo struct {
	Top, Bottom, Left, Right int
	Type                     PadType
}

// PadInfo3D extends PadInfo with the Front/Back pair for the depth axis.
type PadInfo3D struct {
	Top, Bottom, Left, Right, Front, Back int
	Type                                  PadType
}

// EffectiveFilterSize returns the filter extent after dilation: dilation-1
// gaps are inserted between consecutive filter taps, without changing the
// number of taps. A dilation <= 1 leaves the filter size unchanged.
func EffectiveFilterSize(filterSize, dilation int) int {
	if dilation <= 1 {
		return filterSize
	}
	return filterSize + (filterSize-1)*(dilation-1)
}

// ComputeDefaultPad returns the symmetric padding that centers the (dilated)
// filter on the input: floor((in*(stride-1) - stride + effectiveFilter) / 2).
// It is the fallback used when a caller asks for framework-default padding
// without supplying an amount.
func ComputeDefaultPad(inputExtent, fieldSize, stride, dilation int) int {
	effectiveFieldSize := EffectiveFilterSize(fieldSize, dilation)
	return int(math.Floor(float64(inputExtent*(stride-1)-stride+effectiveFieldSize) / 2))
}

// roundValue converts a fractional output size to an integer according to the
// rounding mode. RoundDefault truncates toward zero.
func roundValue(value float64, roundingMode RoundingMode) (int, error) {
	switch roundingMode {
	case RoundDefault:
		return int(math.Trunc(value)), nil
	case RoundNearest:
		return int(math.Round(value)), nil
	case RoundCeil:
		return int(math.Ceil(value)), nil
	case RoundFloor:
		return int(math.Floor(value)), nil
	}
	return 0, errors.Errorf("unknown roundingMode %s", roundingMode)
}

// ComputeOutputShape2D returns the output [rows, cols] of a window of size
// fieldSize sliding with the given stride over an input padded with zeroPad on
// every side.
//
// Note it receives a single fieldSize and a single stride and applies them to
// both axes; it is only correct when the height and width filter/stride pairs
// are equal.
func ComputeOutputShape2D(inRows, inCols, fieldSize, stride, zeroPad int, roundingMode RoundingMode) ([2]int, error) {
	outputRows, err := roundValue(float64(inRows-fieldSize+2*zeroPad)/float64(stride)+1, roundingMode)
	if err != nil {
		return [2]int{}, err
	}
	outputCols, err := roundValue(float64(inCols-fieldSize+2*zeroPad)/float64(stride)+1, roundingMode)
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{outputRows, outputCols}, nil
}

// ComputeOutputShape4D returns the output [depth, rows, cols, channels] of a
// 3D window sliding over a [depth, rows, cols, channels] input padded with
// zeroPad on every side. A spatial axis whose padded input is smaller than the
// filter is left at 0.
func ComputeOutputShape4D(inShape [4]int, filterShape [3]int, outChannels int, strides [3]int, zeroPad int, roundingMode RoundingMode) ([4]int, error) {
	outShape := [4]int{0, 0, 0, outChannels}
	for axis := 0; axis < 3; axis++ {
		if inShape[axis]+2*zeroPad < filterShape[axis] {
			continue
		}
		outDim, err := roundValue(
			float64(inShape[axis]-filterShape[axis]+2*zeroPad)/float64(strides[axis])+1,
			roundingMode)
		if err != nil {
			return [4]int{}, err
		}
		outShape[axis] = outDim
	}
	return outShape, nil
}

// ResolvePadding2D resolves a Padding specification into concrete per-side
// amounts and the output height/width for one 2D operation. The filter sizes
// must already be dilation-adjusted (see EffectiveFilterSize).
//
// For PadExplicit the per-side pairs are read from the input-shape axis
// positions selected by config: axes 1 and 2 for ChannelsLast, axes 2 and 3
// for ChannelsFirst.
func ResolvePadding2D(pad Padding, inHeight, inWidth, strideHeight, strideWidth,
	filterHeight, filterWidth int, roundingMode RoundingMode,
	config ChannelsAxisConfig) (padInfo PadInfo, outHeight, outWidth int, err error) {
	switch p := pad.(type) {
	case PadNumber:
		padType := PadTypeNumber
		if p == 0 {
			padType = PadTypeValid
		}
		padInfo = PadInfo{Top: int(p), Bottom: int(p), Left: int(p), Right: int(p), Type: padType}
		var outShape [2]int
		outShape, err = ComputeOutputShape2D(inHeight, inWidth, filterHeight, strideHeight, int(p), roundingMode)
		if err != nil {
			return
		}
		outHeight, outWidth = outShape[0], outShape[1]

	case padSymbolic:
		switch p {
		case Same:
			outHeight = ceilDiv(inHeight, strideHeight)
			outWidth = ceilDiv(inWidth, strideWidth)
			padAlongHeight := max(0, (outHeight-1)*strideHeight+filterHeight-inHeight)
			padAlongWidth := max(0, (outWidth-1)*strideWidth+filterWidth-inWidth)
			top := padAlongHeight / 2
			bottom := padAlongHeight - top
			left := padAlongWidth / 2
			right := padAlongWidth - left
			padInfo = PadInfo{Top: top, Bottom: bottom, Left: left, Right: right, Type: PadTypeSame}
		case Valid:
			padInfo = PadInfo{Type: PadTypeValid}
			outHeight = ceilDiv(inHeight-filterHeight+1, strideHeight)
			outWidth = ceilDiv(inWidth-filterWidth+1, strideWidth)
		default:
			err = errors.Errorf("unknown padding parameter: %v", p)
			return
		}

	case PadExplicit:
		if len(p) != 4 {
			err = errors.Errorf("explicit padding must provide a [low, high] pair for each of the 4 input axes, got %d", len(p))
			return
		}
		var top, bottom, left, right int
		if config == ChannelsLast {
			top, bottom = p[1][0], p[1][1]
			left, right = p[2][0], p[2][1]
		} else {
			top, bottom = p[2][0], p[2][1]
			left, right = p[3][0], p[3][1]
		}
		padType := PadTypeExplicit
		if top == 0 && bottom == 0 && left == 0 && right == 0 {
			padType = PadTypeValid
		}
		padInfo = PadInfo{Top: top, Bottom: bottom, Left: left, Right: right, Type: padType}
		outHeight, err = roundValue(float64(inHeight-filterHeight+top+bottom)/float64(strideHeight)+1, roundingMode)
		if err != nil {
			return
		}
		outWidth, err = roundValue(float64(inWidth-filterWidth+left+right)/float64(strideWidth)+1, roundingMode)
		if err != nil {
			return
		}

	default:
		err = errors.Errorf("unknown padding parameter: %v", pad)
	}
	return
}

// ResolvePadding3D is the depth-extended variant of ResolvePadding2D. Only
// PadNumber and Same are supported; Valid is normalized to PadNumber(0), so it
// goes through the numeric output-size computation rather than the dedicated
// ceiling formula the 2D resolver uses.
func ResolvePadding3D(pad Padding, inDepth, inHeight, inWidth,
	strideDepth, strideHeight, strideWidth,
	filterDepth, filterHeight, filterWidth int,
	roundingMode RoundingMode) (padInfo PadInfo3D, outDepth, outHeight, outWidth int, err error) {
	if pad == Valid {
		pad = PadNumber(0)
	}
	switch p := pad.(type) {
	case PadNumber:
		padType := PadTypeNumber
		if p == 0 {
			padType = PadTypeValid
		}
		padInfo = PadInfo3D{
			Top: int(p), Bottom: int(p), Left: int(p), Right: int(p),
			Front: int(p), Back: int(p), Type: padType,
		}
		var outShape [4]int
		outShape, err = ComputeOutputShape4D(
			[4]int{inDepth, inHeight, inWidth, 1},
			[3]int{filterDepth, filterHeight, filterWidth},
			1,
			[3]int{strideDepth, strideHeight, strideWidth},
			int(p), roundingMode)
		if err != nil {
			return
		}
		outDepth, outHeight, outWidth = outShape[0], outShape[1], outShape[2]

	case padSymbolic:
		if p != Same {
			err = errors.Errorf("unknown padding parameter: %v", p)
			return
		}
		outDepth = ceilDiv(inDepth, strideDepth)
		outHeight = ceilDiv(inHeight, strideHeight)
		outWidth = ceilDiv(inWidth, strideWidth)
		padAlongDepth := (outDepth-1)*strideDepth + filterDepth - inDepth
		padAlongHeight := (outHeight-1)*strideHeight + filterHeight - inHeight
		padAlongWidth := (outWidth-1)*strideWidth + filterWidth - inWidth
		// The amounts are not clamped at zero here, so the split must floor
		// (not truncate) to keep low <= high for negative amounts.
		front := floorDiv(padAlongDepth, 2)
		back := padAlongDepth - front
		top := floorDiv(padAlongHeight, 2)
		bottom := padAlongHeight - top
		left := floorDiv(padAlongWidth, 2)
		right := padAlongWidth - left
		padInfo = PadInfo3D{
			Top: top, Bottom: bottom, Left: left, Right: right,
			Front: front, Back: back, Type: PadTypeSame,
		}

	default:
		err = errors.Errorf("unknown padding parameter: %v", pad)
	}
	return
}

// ceilDiv returns ceil(a/b) for b > 0. a may be non-positive, in which case
// the result is <= 0.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return -((-a) / b)
	}
	return (a + b - 1) / b
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int) int {
	if a < 0 && a%b != 0 {
		return a/b - 1
	}
	return a / b
}
