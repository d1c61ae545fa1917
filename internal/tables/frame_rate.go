package tables

// NumFrameRateIndices is the number of frame_rate_index values (4 bits)
// that carry a defined frame rate.
const NumFrameRateIndices = 14

// FrameRateInfo describes one frame_rate_index entry.
type FrameRateInfo struct {
	FPS         float64 // Nominal frames per second
	FrameLength uint16  // Frame length in samples at the base sample rate
}

// frameRates48k lists the frame rates for the 48 kHz family (fs_index 1).
// Index 13 is the only entry valid for the 44.1 kHz family. Frame lengths
// are transform lengths; the fractional rates reach their nominal fps
// through resampling, so FPS * FrameLength need not equal 48000.
var frameRates48k = [NumFrameRateIndices]FrameRateInfo{
	{23.976, 1920},
	{24, 1920},
	{25, 2048},
	{29.97, 1536},
	{30, 1536},
	{47.95, 960},
	{48, 960},
	{50, 1024},
	{59.94, 768},
	{60, 768},
	{100, 512},
	{119.88, 384},
	{120, 384},
	{23.4375, 2048},
}

// frameRate44k is the single frame rate defined for the 44.1 kHz family.
var frameRate44k = FrameRateInfo{FPS: 44100.0 / 2048.0, FrameLength: 2048}

// FrameRate returns the frame rate information for the given fs_index and
// frame_rate_index. ok is false for reserved combinations.
func FrameRate(fsIndex, frameRateIndex uint8) (FrameRateInfo, bool) {
	if frameRateIndex >= NumFrameRateIndices {
		return FrameRateInfo{}, false
	}
	if fsIndex == 0 {
		if frameRateIndex != 13 {
			return FrameRateInfo{}, false
		}
		return frameRate44k, true
	}
	return frameRates48k[frameRateIndex], true
}

// FrameRateFractionRange reports which frame_rate_fraction values the
// frame_rate_index can signal.
//
// Indices 5-9 may signal a fraction of 2, indices 10-12 may signal 2
// or 4. All other indices only carry self-contained frames.
func FrameRateFractionRange(frameRateIndex uint8) (allows2, allows4 bool) {
	switch {
	case frameRateIndex >= 5 && frameRateIndex <= 9:
		return true, false
	case frameRateIndex >= 10 && frameRateIndex <= 12:
		return true, true
	default:
		return false, false
	}
}
