package convgeom

import (
	"github.com/pkg/errors"
)

// parseTupleParam normalizes a stride or dilation specification for 2D
// operations: a single value is broadcast to all three components, a pair gets
// an implicit 1 appended (the third component only exists for uniformity with
// the 3D path), and a triple is used as-is.
func parseTupleParam(param []int) ([3]int, error) {
	switch len(param) {
	case 1:
		return [3]int{param[0], param[0], param[0]}, nil
	case 2:
		return [3]int{param[0], param[1], 1}, nil
	case 3:
		return [3]int{param[0], param[1], param[2]}, nil
	}
	return [3]int{}, errors.Errorf("strides and dilations must have 1, 2 or 3 values, got %v", param)
}

// parse3TupleParam normalizes a stride or dilation specification for 3D
// operations: a single value is broadcast, otherwise exactly three values are
// required.
func parse3TupleParam(param []int) ([3]int, error) {
	switch len(param) {
	case 1:
		return [3]int{param[0], param[0], param[0]}, nil
	case 3:
		return [3]int{param[0], param[1], param[2]}, nil
	}
	return [3]int{}, errors.Errorf("3D strides and dilations must have 1 or 3 values, got %v", param)
}

// TupleValuesAreOne reports whether every normalized component of a stride or
// dilation specification equals 1. It returns false for specifications that
// fail to normalize.
func TupleValuesAreOne(param []int) bool {
	tuple, err := parseTupleParam(param)
	if err != nil {
		return false
	}
	return tuple[0] == 1 && tuple[1] == 1 && tuple[2] == 1
}

// EitherStridesOrDilationsAreOne reports whether the strides are all one or
// the dilations are all one. Many convolution backends require this, since
// simultaneous non-unit stride and dilation is often unsupported.
func EitherStridesOrDilationsAreOne(strides, dilations []int) bool {
	return TupleValuesAreOne(strides) || TupleValuesAreOne(dilations)
}

// StridesOrDilationsArePositive reports whether every normalized component of
// a stride or dilation specification is strictly positive.
func StridesOrDilationsArePositive(values []int) bool {
	tuple, err := parseTupleParam(values)
	if err != nil {
		return false
	}
	return tuple[0] > 0 && tuple[1] > 0 && tuple[2] > 0
}

// CheckPadOnDimRoundingMode validates that a rounding mode is only combined
// with a numeric or explicit padding specification: rounding is meaningless
// for the symbolic Same/Valid modes, which compute their own output sizes.
// opDesc names the calling op in the error message.
func CheckPadOnDimRoundingMode(opDesc string, pad Padding, roundingMode RoundingMode) error {
	if roundingMode == RoundDefault {
		return nil
	}
	switch pad.(type) {
	case padSymbolic:
		return errors.Errorf("error in %s: pad must be an integer when using roundingMode %s, got %v",
			opDesc, roundingMode, pad)
	case PadNumber, PadExplicit:
		// Integral by construction.
		return nil
	}
	return errors.Errorf("error in %s: unknown padding parameter: %v", opDesc, pad)
}
