// Package convgeom computes the geometry of 2D and 3D convolution and pooling
// operations: given an input shape, a filter (kernel) shape, strides, dilations
// and a padding specification, it resolves the concrete per-side padding
// amounts and the resulting output spatial dimensions.
//
// It only computes shape and padding metadata -- the descriptor a compute
// kernel needs to know how many output elements to produce and where the
// padding boundaries fall. It does not execute any convolution arithmetic.
//
// The two main entry points are ComputeConv2DInfo and ComputeConv3DInfo, with
// thin façades for pooling (ComputePool2DInfo, ComputePool3DInfo) and
// morphological dilation (ComputeDilation2DInfo). Every function is pure: no
// shared state, safe for concurrent use.
//
// Shapes are ordered slices of non-negative integer dimensions. Callers are
// expected to have validated non-negativity already (typically via the tensor
// layer); this package does not re-derive those checks.
package convgeom

import (
	"github.com/pkg/errors"
)

// ChannelsAxisConfig indicates whether a tensor laid out with a leading batch
// axis has its channels axis coming first (immediately after batch) or last.
type ChannelsAxisConfig uint8

//go:generate go tool enumer -type=ChannelsAxisConfig convgeom.go

const (
	ChannelsFirst ChannelsAxisConfig = iota
	ChannelsLast
)

// ConvertConv2DDataFormat translates the external 2D data-format vocabulary
// ("NHWC" or "NCHW") to the canonical ChannelsAxisConfig used internally.
func ConvertConv2DDataFormat(dataFormat string) (ChannelsAxisConfig, error) {
	switch dataFormat {
	case "NHWC":
		return ChannelsLast, nil
	case "NCHW":
		return ChannelsFirst, nil
	default:
		return 0, errors.Errorf("unknown dataFormat %q", dataFormat)
	}
}

// ConvertConv3DDataFormat translates the external 3D data-format vocabulary
// ("NDHWC" or "NCDHW") to the canonical ChannelsAxisConfig used internally.
func ConvertConv3DDataFormat(dataFormat string) (ChannelsAxisConfig, error) {
	switch dataFormat {
	case "NDHWC":
		return ChannelsLast, nil
	case "NCDHW":
		return ChannelsFirst, nil
	default:
		return 0, errors.Errorf("unknown dataFormat %q", dataFormat)
	}
}

// RoundingMode selects how a fractional output-size computation is converted
// to an integer. The zero value (RoundDefault) truncates toward zero -- it
// drops the fractional part, it does not floor.
type RoundingMode uint8

//go:generate go tool enumer -type=RoundingMode -trimprefix=Round convgeom.go

const (
	// RoundDefault truncates toward zero. This is distinct from RoundFloor for
	// negative values, even though the values on this code path are always
	// non-negative.
	RoundDefault RoundingMode = iota
	RoundFloor
	RoundNearest // Nearest integer, ties away from zero.
	RoundCeil
)

// PadType tags how the per-side padding amounts of a PadInfo were derived.
type PadType uint8

//go:generate go tool enumer -type=PadType -trimprefix=PadType -transform=upper convgeom.go

const (
	// PadTypeValid means all sides are zero padded.
	PadTypeValid PadType = iota
	// PadTypeNumber means a non-zero scalar pad was applied to all sides.
	PadTypeNumber
	// PadTypeSame means the padding was derived so the output size is
	// ceil(input/stride).
	PadTypeSame
	// PadTypeExplicit means the per-side amounts were given explicitly and at
	// least one of them is non-zero.
	PadTypeExplicit
)

// Padding specifies how a convolution or pooling window is padded. It is a
// closed union: PadNumber (symmetric numeric padding), Same, Valid, or
// PadExplicit (per-axis [low, high] pairs).
type Padding interface {
	isPadding()
}

// PadNumber pads all sides of every spatial axis with the same amount.
type PadNumber int

func (PadNumber) isPadding() {}

type padSymbolic uint8

func (padSymbolic) isPadding() {}

const (
	// Same padding makes the output spatial size ceil(input/stride), padding
	// as evenly as possible (the extra unit, if any, goes to the high side).
	Same = padSymbolic(iota)
	// Valid applies no padding; the output shrinks by the effective filter
	// size minus one.
	Valid
)

func (p padSymbolic) String() string {
	switch p {
	case Same:
		return "same"
	case Valid:
		return "valid"
	}
	return "invalid"
}

// PadExplicit gives the [low, high] padding pair for each tensor axis, in the
// axis order of the input shape (so the spatial entries' positions depend on
// the ChannelsAxisConfig). Batch and channels entries are present but ignored.
type PadExplicit [][2]int

func (PadExplicit) isPadding() {}
