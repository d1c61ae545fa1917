package syntax

import (
	"fmt"

	"github.com/llehouerou/go-ac4/internal/bits"
	"github.com/llehouerou/go-ac4/internal/tables"
)

// SequenceCounterBits is the width of sequence_counter in the TOC.
const SequenceCounterBits = 10

// TOCHeader contains the leading fields of an AC-4 table of contents.
//
// Header structure:
//   - bitstream_version: 2 bits, extended by variable_bits(2) if 3
//   - sequence_counter: 10 bits
//   - b_wait_frames: 1 bit
//   - wait_frames: 3 bits (if b_wait_frames), followed by br_code:
//     2 bits when non-zero
//   - fs_index: 1 bit (0=44.1 kHz, 1=48 kHz)
//   - frame_rate_index: 4 bits
//   - b_iframe_global: 1 bit
//   - b_single_presentation: 1 bit, else b_more_presentations: 1 bit
//     and n_presentations = variable_bits(2) + 2
//   - b_payload_base: 1 bit, payload_base_minus1: 5 bits,
//     extended by variable_bits(3) if 0x1F
type TOCHeader struct {
	BitstreamVersion uint32
	SequenceCounter  uint16
	HasWaitFrames    bool
	WaitFrames       uint8
	BRCode           uint8 // Only signalled when WaitFrames > 0
	FSIndex          uint8
	FrameRateIndex   uint8
	IFrameGlobal     bool
	NumPresentations uint32
	PayloadBase      uint32
}

// FrameRate returns the frame rate signalled by the header.
func (h TOCHeader) FrameRate() tables.FrameRateInfo {
	info, _ := tables.FrameRate(h.FSIndex, h.FrameRateIndex)
	return info
}

// ParseTOCHeader parses the leading fields of ac4_toc().
func ParseTOCHeader(r *bits.Reader) (TOCHeader, error) {
	var h TOCHeader

	h.BitstreamVersion = r.GetBits(2)
	if h.BitstreamVersion == 3 {
		h.BitstreamVersion += r.VariableBits(2)
	}

	h.SequenceCounter = uint16(r.GetBits(SequenceCounterBits))

	h.HasWaitFrames = r.Get1Bit()
	if h.HasWaitFrames {
		h.WaitFrames = uint8(r.GetBits(3))
		if h.WaitFrames > 0 {
			h.BRCode = uint8(r.GetBits(2))
		}
	}

	h.FSIndex = uint8(r.GetBits(1))
	h.FrameRateIndex = uint8(r.GetBits(4))
	h.IFrameGlobal = r.Get1Bit()

	if r.Get1Bit() {
		h.NumPresentations = 1
	} else if r.Get1Bit() {
		h.NumPresentations = r.VariableBits(2) + 2
	}

	if r.Get1Bit() {
		h.PayloadBase = r.GetBits(5) + 1
		if h.PayloadBase == 0x20 {
			h.PayloadBase += r.VariableBits(3)
		}
	}

	if err := r.Err(); err != nil {
		return TOCHeader{}, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	if _, ok := tables.FrameRate(h.FSIndex, h.FrameRateIndex); !ok {
		return TOCHeader{}, fmt.Errorf("%w: fs_index %d, frame_rate_index %d",
			ErrReservedFrameRate, h.FSIndex, h.FrameRateIndex)
	}

	return h, nil
}

// ParseFrameRateFraction parses frame_rate_fraction_info() for the given
// frame_rate_index and returns the number of slices per frame.
func ParseFrameRateFraction(r *bits.Reader, frameRateIndex uint8) (uint32, error) {
	allows2, allows4 := tables.FrameRateFractionRange(frameRateIndex)
	if !allows2 {
		return 1, nil
	}

	fraction := uint32(1)
	if r.Get1Bit() {
		fraction = 2
		if allows4 && r.Get1Bit() {
			fraction = 4
		}
	}

	if err := r.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return fraction, nil
}
