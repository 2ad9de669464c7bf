// Package kinds defines ElementKind, the scalar element categories a numgo
// array can hold, and resolves each kind to its fixed byte width.
//
// The kind-to-width table is initialized once at process start and never
// mutated, so it is safe for unsynchronized concurrent reads.
package kinds

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/numgo/numgo/internal/utils"
)

// ElementKind is an enum of the scalar element categories supported by numgo.
type ElementKind int

//go:generate go tool enumer -type=ElementKind kinds.go

const (
	Invalid ElementKind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float16
	Float32
	Float64
	Complex64
	Complex128

	// String and Object are boxed reference kinds: their width below is a
	// bookkeeping convention (object header plus payload reference on the
	// reference runtime), not a physical element size.
	String
	Object
)

// ErrUnsupportedKind is returned when an element kind has no registered byte
// width. Widths are never estimated or inferred.
var ErrUnsupportedKind = errors.New("unsupported element kind")

// byteWidths maps every supported kind to the size in bytes of one element.
// Read-only after initialization.
var byteWidths = map[ElementKind]int{
	Bool:       1,
	Int8:       1,
	Uint8:      1,
	Int16:      2,
	Uint16:     2,
	Float16:    2,
	Int32:      4,
	Uint32:     4,
	Float32:    4,
	Int64:      8,
	Uint64:     8,
	Float64:    8,
	Complex64:  8,
	Complex128: 16,
	String:     16,
	Object:     16,
}

var (
	// FloatKinds are the floating-point element kinds.
	FloatKinds = utils.SetWith(Float16, Float32, Float64)

	// IntegerKinds are the signed and unsigned integer element kinds.
	IntegerKinds = utils.SetWith(Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64)

	// ComplexKinds are the complex number element kinds.
	ComplexKinds = utils.SetWith(Complex64, Complex128)

	// ReferenceKinds are the boxed (non-machine-scalar) element kinds.
	ReferenceKinds = utils.SetWith(String, Object)
)

// ByteWidth returns the fixed size in bytes of one element of the given kind.
//
// It returns ErrUnsupportedKind if the kind is not in the width table.
func ByteWidth(kind ElementKind) (int, error) {
	width, found := byteWidths[kind]
	if !found {
		return 0, errors.Wrapf(ErrUnsupportedKind, "no byte width registered for element kind %s", kind)
	}
	return width, nil
}

// IsFloat returns whether the kind is a floating-point kind.
func (kind ElementKind) IsFloat() bool { return FloatKinds.Has(kind) }

// IsInteger returns whether the kind is a signed or unsigned integer kind.
func (kind ElementKind) IsInteger() bool { return IntegerKinds.Has(kind) }

// IsComplex returns whether the kind is a complex number kind.
func (kind ElementKind) IsComplex() bool { return ComplexKinds.Has(kind) }

// IsReference returns whether the kind is a boxed reference kind (String or
// Object) rather than a machine scalar.
func (kind ElementKind) IsReference() bool { return ReferenceKinds.Has(kind) }

// FromDType converts a gopjrt dtypes.DType to the equivalent ElementKind.
// DTypes with no numgo equivalent (e.g. BFloat16) convert to Invalid.
func FromDType(dtype dtypes.DType) ElementKind {
	switch dtype {
	case dtypes.Bool:
		return Bool
	case dtypes.Int8:
		return Int8
	case dtypes.Int16:
		return Int16
	case dtypes.Int32:
		return Int32
	case dtypes.Int64:
		return Int64
	case dtypes.Uint8:
		return Uint8
	case dtypes.Uint16:
		return Uint16
	case dtypes.Uint32:
		return Uint32
	case dtypes.Uint64:
		return Uint64
	case dtypes.Float16:
		return Float16
	case dtypes.Float32:
		return Float32
	case dtypes.Float64:
		return Float64
	case dtypes.Complex64:
		return Complex64
	case dtypes.Complex128:
		return Complex128
	default:
		return Invalid
	}
}

// DType converts the kind to the equivalent gopjrt dtypes.DType, for interop
// with accelerator buffers. Reference kinds have no DType equivalent and
// convert to dtypes.InvalidDType.
func (kind ElementKind) DType() dtypes.DType {
	switch kind {
	case Bool:
		return dtypes.Bool
	case Int8:
		return dtypes.Int8
	case Int16:
		return dtypes.Int16
	case Int32:
		return dtypes.Int32
	case Int64:
		return dtypes.Int64
	case Uint8:
		return dtypes.Uint8
	case Uint16:
		return dtypes.Uint16
	case Uint32:
		return dtypes.Uint32
	case Uint64:
		return dtypes.Uint64
	case Float16:
		return dtypes.Float16
	case Float32:
		return dtypes.Float32
	case Float64:
		return dtypes.Float64
	case Complex64:
		return dtypes.Complex64
	case Complex128:
		return dtypes.Complex128
	default:
		return dtypes.InvalidDType
	}
}

// float16Type is the Go carrier type gopjrt uses for half-precision values.
var float16Type = reflect.TypeOf(float16.Float16(0))

// FromGoType returns the ElementKind for a scalar Go type, or Invalid if the
// type is not a supported scalar. Slices and other aggregates are not
// resolved here -- see the shapes package for nested values.
func FromGoType(t reflect.Type) ElementKind {
	switch {
	case t == nil:
		return Invalid
	case t.Kind() == reflect.String:
		return String
	case t == float16Type:
		return Float16
	}
	return FromDType(dtypes.FromGoType(t))
}
