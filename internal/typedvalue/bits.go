package typedvalue

import "math"

func bitsOf(f float64) uint64 {
	return math.Float64bits(f)
}
