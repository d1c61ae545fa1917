package cch

import "fmt"

// checkFraction panics unless fraction is a power of two >= 1.
func checkFraction(fraction uint32) {
	if fraction == 0 || fraction&(fraction-1) != 0 {
		panic(fmt.Sprintf("cch: frame rate fraction %d is not a power of two", fraction))
	}
}

// IsValidFraction reports whether fraction is a power of two >= 1.
func IsValidFraction(fraction uint32) bool {
	return fraction != 0 && fraction&(fraction-1) == 0
}

// SliceIndex returns the slice index of the frame with the given
// sequence counter within an EHFR frame of fraction slices.
func SliceIndex(counter, fraction uint32) uint32 {
	checkFraction(fraction)
	return counter & (fraction - 1)
}

// FrameComplete determines whether the frame with the given sequence
// counter completes a logical frame of fraction slices. For
// self-contained frames (fraction 1) the frame is always complete.
//
// slices is the running count of available slices and is updated in
// place. droppedFirstSlice is set when a frame drop consumed the first
// slice of an EHFR frame; the dropped slice is still counted so that
// the decoder conceals an output frame instead of skipping it.
//
// Ported from: function_c_aux() in media/libstagefright/omx/generic_source.c:214-264
func FrameComplete(counter, fraction uint32, cc ConfigChange, slices *uint32) (complete, droppedFirstSlice bool) {
	checkFraction(fraction)
	maxSliceIndex := fraction - 1

	switch {
	case counter&maxSliceIndex == 0 || cc.Config == Splice:
		*slices = 0
	case cc.Frame == FrameDrop:
		if (counter-1)&maxSliceIndex == 0 {
			// the first slice of this frame was dropped
			*slices = 0
			if fraction > 1 {
				*slices = 1
				droppedFirstSlice = true
			}
		} else {
			*slices++
		}
	}

	*slices++
	return *slices == fraction, droppedFirstSlice
}
