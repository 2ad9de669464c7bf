// Package shapeinference calculates the shapes resulting from combining
// arrays and validates its inputs.
//
// It defines BroadcastShapes for the standard broadcasting rules used by
// element-wise binary operations, ValidateShape for single operand shapes,
// and Reshape for size-preserving shape changes.
//
// Broadcasting never coerces: incompatible shapes are reported as errors,
// since silently stretching a mismatched dimension would corrupt every
// downstream result.
package shapeinference

import (
	"github.com/pkg/errors"

	"github.com/numgo/numgo/types/shapes"
)

var (
	// ErrNotBroadcastable is returned when two shapes have an aligned
	// dimension pair that is neither equal nor 1.
	ErrNotBroadcastable = errors.New("shapes cannot be broadcast together")

	// ErrInvalidSize is returned when a shape carries a zero or negative
	// dimension.
	ErrInvalidSize = errors.New("invalid dimension size")

	// ErrShapeMismatch is returned when an operand cannot be reshaped into a
	// target shape because their element counts differ.
	ErrShapeMismatch = errors.New("mismatched element counts")
)

// BroadcastShapes returns the shape resulting from broadcasting lhs and rhs
// together for an element-wise binary operation.
//
// The shapes are aligned at their trailing (innermost) dimension, and
// missing leading dimensions on the lower-rank shape are treated as 1. Each
// aligned dimension pair must be equal or contain a 1, and the result
// dimension is the larger of the two.
//
// Examples:
//
//	BroadcastShapes([2 3], [3])         -> [2 3]
//	BroadcastShapes([8 1 6 1], [7 1 5]) -> [8 7 6 5]
//	BroadcastShapes([3 4], [4 3])       -> ErrNotBroadcastable
//
// The result is invariant to the order of the operands; only the error
// message reports them in the order received.
func BroadcastShapes(lhs, rhs shapes.Shape) (output shapes.Shape, err error) {
	maxRank := max(lhs.Rank(), rhs.Rank())
	output = make(shapes.Shape, maxRank)
	for ii := 0; ii < maxRank; ii++ {
		lhsDim, rhsDim := 1, 1
		if ii < lhs.Rank() {
			lhsDim = lhs[lhs.Rank()-ii-1]
		}
		if ii < rhs.Rank() {
			rhsDim = rhs[rhs.Rank()-ii-1]
		}
		if lhsDim != rhsDim && lhsDim != 1 && rhsDim != 1 {
			err = errors.Wrapf(ErrNotBroadcastable,
				"shapes %s and %s differ on axis %d (%d vs %d)", lhs, rhs, maxRank-ii-1, lhsDim, rhsDim)
			return nil, err
		}
		output[maxRank-ii-1] = max(lhsDim, rhsDim)
	}
	return output, nil
}

// ValidateShape returns a copy of the shape after checking that every
// dimension is positive; a zero or negative dimension returns ErrInvalidSize
// naming the offending shape.
//
// This is a validation pass-through for a single operand. It performs no
// padding or broadcasting -- pairs of shapes go through BroadcastShapes.
func ValidateShape(s shapes.Shape) (shapes.Shape, error) {
	for axis, dim := range s {
		if dim <= 0 {
			return nil, errors.Wrapf(ErrInvalidSize, "dimension %d of shape %s is %d", axis, s, dim)
		}
	}
	return s.Clone(), nil
}

// Reshape returns the target shape after checking that the operand's
// elements can be rearranged into it: the target must be valid and address
// exactly as many elements as the operand.
func Reshape(operand, target shapes.Shape) (shapes.Shape, error) {
	if _, err := ValidateShape(target); err != nil {
		return nil, err
	}
	if operand.Size() != target.Size() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot reshape %s (%d elements) into %s (%d elements)",
			operand, operand.Size(), target, target.Size())
	}
	return target.Clone(), nil
}
