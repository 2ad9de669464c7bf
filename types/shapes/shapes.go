// Package shapes defines Shape, the ordered per-dimension extents of a numgo
// array, along with the row-major layout conversions between flat buffer
// offsets and per-dimension coordinates, and helpers to resolve the shape and
// element kind of nested Go values.
//
// Shapes are plain value types: nothing in this package mutates its inputs,
// and every function allocates at most its result.
package shapes

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Shape is the ordered sequence of dimension extents of an array, outermost
// dimension first. A zero-length Shape describes a scalar.
type Shape []int

// Make returns a Shape with the given dimensions.
func Make(dimensions ...int) Shape {
	return Shape(dimensions)
}

// Rank returns the number of dimensions of the shape.
func (s Shape) Rank() int { return len(s) }

// IsScalar returns whether the shape has rank 0.
func (s Shape) IsScalar() bool { return len(s) == 0 }

// Size returns the total number of elements addressed by the shape, the
// product of its dimensions. A scalar shape has size 1.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s {
		size *= dim
	}
	return size
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// Equal returns whether the two shapes have the same rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Dim returns the extent of the given axis. Negative axes count from the
// end, so Dim(-1) is the innermost dimension. It panics if the axis is out
// of range.
func (s Shape) Dim(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += len(s)
	}
	if adjusted < 0 || adjusted >= len(s) {
		panic(errors.Errorf("shape %s has no axis %d", s, axis))
	}
	return s[adjusted]
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}
