// Package typedvalue implements the tagged-sum TypedValue and the
// two-level ParameterStore described by the node configuration core's
// data model: (node fully-qualified name) -> (parameter dotted name) ->
// TypedValue.
//
// Grounded on the teacher's internal/rpc/types.go, which hand-rolls a
// discriminated-union-shaped struct (a Kind field plus one populated
// field per variant) for decoded RPC values; the same shape is used here
// for TypedValue, generalized to the eight scalar/array variants spec.md
// requires.
package typedvalue

import "github.com/dmagro/rclcfg/internal/rclerr"

// Kind discriminates which field of a TypedValue is populated.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindBoolArray
	KindIntArray
	KindFloatArray
	KindStringArray
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBoolArray:
		return "BoolArray"
	case KindIntArray:
		return "IntArray"
	case KindFloatArray:
		return "FloatArray"
	case KindStringArray:
		return "StringArray"
	default:
		return "Unknown"
	}
}

// IsArray reports whether k is one of the four array variants.
func (k Kind) IsArray() bool {
	return k >= KindBoolArray
}

// scalarOf maps an array Kind to the Kind of its elements, and is its own
// inverse's target for scalars (used by the sequence-homogeneity check).
func scalarOf(k Kind) Kind {
	switch k {
	case KindBoolArray:
		return KindBool
	case KindIntArray:
		return KindInt
	case KindFloatArray:
		return KindFloat
	case KindStringArray:
		return KindString
	default:
		return k
	}
}

func arrayOf(k Kind) Kind {
	switch k {
	case KindBool:
		return KindBoolArray
	case KindInt:
		return KindIntArray
	case KindFloat:
		return KindFloatArray
	case KindString:
		return KindStringArray
	default:
		return k
	}
}

// Value is the tagged sum over scalars and homogeneous arrays. Exactly
// one of the scalar fields or array fields is meaningful, selected by
// Kind.
type Value struct {
	Kind Kind

	Bool   bool
	Int    int64
	Float  float64
	String string

	BoolArray   []bool
	IntArray    []int64
	FloatArray  []float64
	StringArray []string
}

func NewBool(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func NewInt(v int64) Value     { return Value{Kind: KindInt, Int: v} }
func NewFloat(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func NewString(v string) Value { return Value{Kind: KindString, String: v} }

// Clone returns a fully independent deep copy of v (array slices are
// copied, never shared) per the §4.8.4 deep-copy requirement.
func (v Value) Clone() Value {
	out := v
	switch v.Kind {
	case KindBoolArray:
		out.BoolArray = append([]bool(nil), v.BoolArray...)
	case KindIntArray:
		out.IntArray = append([]int64(nil), v.IntArray...)
	case KindFloatArray:
		out.FloatArray = append([]float64(nil), v.FloatArray...)
	case KindStringArray:
		out.StringArray = append([]string(nil), v.StringArray...)
	}
	return out
}

// Equal reports whether v and other hold the same Kind and content.
// NaN floats compare equal to NaN here (bit-exact per spec.md §8), which
// differs from IEEE-754 `==` semantics; this is intentional for the
// round-trip property test.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool == other.Bool
	case KindInt:
		return v.Int == other.Int
	case KindFloat:
		return floatBitsEqual(v.Float, other.Float)
	case KindString:
		return v.String == other.String
	case KindBoolArray:
		return equalSlices(v.BoolArray, other.BoolArray)
	case KindIntArray:
		return equalSlices(v.IntArray, other.IntArray)
	case KindFloatArray:
		if len(v.FloatArray) != len(other.FloatArray) {
			return false
		}
		for i := range v.FloatArray {
			if !floatBitsEqual(v.FloatArray[i], other.FloatArray[i]) {
				return false
			}
		}
		return true
	case KindStringArray:
		return equalSlices(v.StringArray, other.StringArray)
	}
	return false
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatBitsEqual(a, b float64) bool {
	return bitsOf(a) == bitsOf(b)
}

// SequenceBuilder builds a homogeneous array whose element type is
// fixed by the first Append call (its zero value is an empty builder), enforcing the §3 array
// homogeneity invariant.
type SequenceBuilder struct {
	value Value
	set   bool
}

// Append appends elem to the sequence under construction. If this is the
// first element, it fixes the array's element type. If a later element
// resolves to a different scalar kind, Append returns a
// HeterogeneousSequence-flavored InvalidArgument error and leaves the
// builder unchanged.
func (b *SequenceBuilder) Append(elem Value) *rclerr.Error {
	if elem.Kind.IsArray() {
		return rclerr.New(rclerr.InvalidArgument, "nested sequences are not supported")
	}
	if !b.set {
		b.value = Value{Kind: arrayOf(elem.Kind)}
		b.set = true
	} else if scalarOf(b.value.Kind) != elem.Kind {
		return rclerr.New(rclerr.InvalidArgument,
			"heterogeneous sequence: element type %s does not match array type %s",
			elem.Kind, scalarOf(b.value.Kind))
	}
	switch elem.Kind {
	case KindBool:
		b.value.BoolArray = append(b.value.BoolArray, elem.Bool)
	case KindInt:
		b.value.IntArray = append(b.value.IntArray, elem.Int)
	case KindFloat:
		b.value.FloatArray = append(b.value.FloatArray, elem.Float)
	case KindString:
		b.value.StringArray = append(b.value.StringArray, elem.String)
	}
	return nil
}

// Value returns the built array value. An empty sequence (no Append
// calls) yields an empty StringArray by convention.
func (b *SequenceBuilder) Value() Value {
	if !b.set {
		return Value{Kind: KindStringArray}
	}
	return b.value
}
