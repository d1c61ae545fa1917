package ac4

import (
	"github.com/llehouerou/go-ac4/internal/bits"
	"github.com/llehouerou/go-ac4/internal/syntax"
)

// SequenceCounterBits is the width of the TOC sequence_counter. The
// counter wraps to 0 after 1<<SequenceCounterBits - 1.
const SequenceCounterBits = syntax.SequenceCounterBits

// TOCInfo contains the frame sequencing fields of an AC-4 table of
// contents.
type TOCInfo struct {
	BitstreamVersion uint32
	SequenceCounter  uint32
	WaitFrames       int // -1 if not signalled
	BRCode           int // -1 if not signalled
	SampleRate       uint32
	FrameRateIndex   uint8
	FPS              float64
	FrameLength      uint16 // Samples per frame
	IFrame           bool
	NumPresentations uint32
	PayloadBase      uint32

	// BitsRead is the number of TOC bits consumed by the header.
	BitsRead int
}

// ParseTOC parses the leading fields of an AC-4 table of contents at
// the start of data.
func ParseTOC(data []byte) (TOCInfo, error) {
	r := bits.NewReader(data)
	h, err := syntax.ParseTOCHeader(r)
	if err != nil {
		return TOCInfo{}, err
	}

	info := TOCInfo{
		BitstreamVersion: h.BitstreamVersion,
		SequenceCounter:  uint32(h.SequenceCounter),
		WaitFrames:       -1,
		BRCode:           -1,
		SampleRate:       48000,
		FrameRateIndex:   h.FrameRateIndex,
		FPS:              h.FrameRate().FPS,
		FrameLength:      h.FrameRate().FrameLength,
		IFrame:           h.IFrameGlobal,
		NumPresentations: h.NumPresentations,
		PayloadBase:      h.PayloadBase,
		BitsRead:         r.BitsRead(),
	}
	if h.FSIndex == 0 {
		info.SampleRate = 44100
	}
	if h.HasWaitFrames {
		info.WaitFrames = int(h.WaitFrames)
		if h.WaitFrames > 0 {
			info.BRCode = int(h.BRCode)
		}
	}
	return info, nil
}

// ParseFrameRateFraction parses frame_rate_fraction_info() starting at
// bit offset bitOffset of data and returns the number of slices per
// frame for the given frame_rate_index.
func ParseFrameRateFraction(data []byte, bitOffset int, frameRateIndex uint8) (uint32, error) {
	r := bits.NewReader(data)
	for bitOffset > 0 {
		n := min(bitOffset, 32)
		r.FlushBits(uint(n))
		bitOffset -= n
	}
	return syntax.ParseFrameRateFraction(r, frameRateIndex)
}
