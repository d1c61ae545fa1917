package aspx

import (
	"math"

	"github.com/llehouerou/go-ac4/internal/tables"
)

// q15 is the scale of a Q15 fixed point value.
const q15 = 32768.0

// OctaveDistanceDiv8 returns the number of octaves between subbands a
// and b, scaled by 1/8.
//
// The valid range for a and b is 1 to 64.
//
// Ported from: get_num_octaves_div8() in media/libstagefright/omx/generic_source.c:139-152
func OctaveDistanceDiv8(a, b uint32) float32 {
	return tables.LogDualisDiv8(b) - tables.LogDualisDiv8(a)
}

// OctaveStep returns a quarter of OctaveDistanceDiv8(a, b) as a Q15
// value, saturated to the int16 range.
//
// The saturated value is returned as its unsigned 32-bit two's
// complement representation. Callers in the frequency scale
// calculation only pass a <= b, which keeps the result non-negative.
//
// Ported from: function_a() in media/libstagefright/omx/generic_source.c:154-158
func OctaveStep(a, b uint32) uint32 {
	v := float32(math.Ldexp(float64(OctaveDistanceDiv8(a, b)), -2))
	return uint32(int32(saturate16(v)))
}

// saturate16 rounds a Q15-scaled float to the nearest integer (half
// away from zero) and clips it to the int16 range.
func saturate16(v float32) int16 {
	r := math.Round(float64(q15 * v))
	if r > math.MaxInt16 {
		return math.MaxInt16
	}
	if r < math.MinInt16 {
		return math.MinInt16
	}
	return int16(r)
}
