package table

import "math"

// NumericType is the logical storage type of a numeric column. It is a
// width tag, not a physical layout: casting a column narrows the tag once
// the observed range allows it.
type NumericType string

const (
	TypeNone NumericType = ""

	TypeUint8  NumericType = "uint8"
	TypeUint16 NumericType = "uint16"
	TypeUint32 NumericType = "uint32"
	TypeUint64 NumericType = "uint64"

	TypeInt8  NumericType = "int8"
	TypeInt16 NumericType = "int16"
	TypeInt32 NumericType = "int32"
	TypeInt64 NumericType = "int64"

	TypeFloat16 NumericType = "float16"
	TypeFloat32 NumericType = "float32"
	TypeFloat64 NumericType = "float64"
)

// maxFloat16 is the largest finite IEEE 754 half-precision value.
const maxFloat16 = 65504.0

// Candidate families in ascending width order.
var (
	UnsignedWidths = []NumericType{TypeUint8, TypeUint16, TypeUint32, TypeUint64}
	SignedWidths   = []NumericType{TypeInt8, TypeInt16, TypeInt32, TypeInt64}
	FloatWidths    = []NumericType{TypeFloat16, TypeFloat32, TypeFloat64}

	// OverflowFloats is the fallback family when integral data exceeds
	// every integer width.
	OverflowFloats = []NumericType{TypeFloat32, TypeFloat64}
)

// Bounds returns the representable range of the type as float64 limits
func (t NumericType) Bounds() (min, max float64) {
	switch t {
	case TypeUint8:
		return 0, math.MaxUint8
	case TypeUint16:
		return 0, math.MaxUint16
	case TypeUint32:
		return 0, math.MaxUint32
	case TypeUint64:
		return 0, float64(math.MaxUint64)
	case TypeInt8:
		return math.MinInt8, math.MaxInt8
	case TypeInt16:
		return math.MinInt16, math.MaxInt16
	case TypeInt32:
		return math.MinInt32, math.MaxInt32
	case TypeInt64:
		return float64(math.MinInt64), float64(math.MaxInt64)
	case TypeFloat16:
		return -maxFloat16, maxFloat16
	case TypeFloat32:
		return -math.MaxFloat32, math.MaxFloat32
	case TypeFloat64:
		return -math.MaxFloat64, math.MaxFloat64
	}
	return 0, 0
}

// Integer reports whether the type holds only whole numbers
func (t NumericType) Integer() bool {
	switch t {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64,
		TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return true
	}
	return false
}

// Valid reports whether the tag names a known width
func (t NumericType) Valid() bool {
	_, max := t.Bounds()
	return max != 0
}

// String returns the string representation
func (t NumericType) String() string {
	return string(t)
}
