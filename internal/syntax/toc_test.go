package syntax

import (
	"errors"
	"testing"

	"github.com/llehouerou/go-ac4/internal/bits"
)

// bitWriter assembles MSB-first test bitstreams.
type bitWriter struct {
	data []byte
	n    uint
}

func (w *bitWriter) put(value uint32, width uint) *bitWriter {
	for i := int(width) - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.data = append(w.data, 0)
		}
		if value>>uint(i)&1 == 1 {
			w.data[len(w.data)-1] |= 0x80 >> (w.n % 8)
		}
		w.n++
	}
	return w
}

func (w *bitWriter) flag(b bool) *bitWriter {
	if b {
		return w.put(1, 1)
	}
	return w.put(0, 1)
}

func TestParseTOCHeader_Basic(t *testing.T) {
	w := new(bitWriter).
		put(2, 2).    // bitstream_version
		put(517, 10). // sequence_counter
		flag(false).  // b_wait_frames
		put(1, 1).    // fs_index
		put(10, 4).   // frame_rate_index (100 fps)
		flag(true).   // b_iframe_global
		flag(true).   // b_single_presentation
		flag(false)   // b_payload_base

	h, err := ParseTOCHeader(bits.NewReader(w.data))
	if err != nil {
		t.Fatalf("ParseTOCHeader error: %v", err)
	}

	if h.BitstreamVersion != 2 {
		t.Errorf("BitstreamVersion = %d, want 2", h.BitstreamVersion)
	}
	if h.SequenceCounter != 517 {
		t.Errorf("SequenceCounter = %d, want 517", h.SequenceCounter)
	}
	if h.HasWaitFrames {
		t.Error("HasWaitFrames = true, want false")
	}
	if h.FSIndex != 1 || h.FrameRateIndex != 10 {
		t.Errorf("fs/frame rate = %d/%d, want 1/10", h.FSIndex, h.FrameRateIndex)
	}
	if !h.IFrameGlobal {
		t.Error("IFrameGlobal = false, want true")
	}
	if h.NumPresentations != 1 {
		t.Errorf("NumPresentations = %d, want 1", h.NumPresentations)
	}
	if h.PayloadBase != 0 {
		t.Errorf("PayloadBase = %d, want 0", h.PayloadBase)
	}
	if got := h.FrameRate().FrameLength; got != 512 {
		t.Errorf("FrameRate().FrameLength = %d, want 512", got)
	}
}

func TestParseTOCHeader_ExtendedFields(t *testing.T) {
	w := new(bitWriter).
		put(3, 2).   // bitstream_version escape
		put(1, 2).   // variable_bits(2) = 1
		flag(false). // no more bits
		put(1023, 10).
		flag(true).  // b_wait_frames
		put(3, 3).   // wait_frames
		put(2, 2).   // br_code
		put(0, 1).   // fs_index 44.1 kHz
		put(13, 4).  // frame_rate_index
		flag(false). // b_iframe_global
		flag(false). // b_single_presentation
		flag(true).  // b_more_presentations
		put(1, 2).   // variable_bits(2) = 1
		flag(false). // no more bits
		flag(true).  // b_payload_base
		put(31, 5).  // payload_base_minus1 escape
		put(2, 3).   // variable_bits(3) = 2
		flag(false)  // no more bits

	h, err := ParseTOCHeader(bits.NewReader(w.data))
	if err != nil {
		t.Fatalf("ParseTOCHeader error: %v", err)
	}

	if h.BitstreamVersion != 4 {
		t.Errorf("BitstreamVersion = %d, want 4", h.BitstreamVersion)
	}
	if h.SequenceCounter != 1023 {
		t.Errorf("SequenceCounter = %d, want 1023", h.SequenceCounter)
	}
	if !h.HasWaitFrames || h.WaitFrames != 3 {
		t.Errorf("wait frames = (%v, %d), want (true, 3)", h.HasWaitFrames, h.WaitFrames)
	}
	if h.BRCode != 2 {
		t.Errorf("BRCode = %d, want 2", h.BRCode)
	}
	if h.NumPresentations != 3 {
		t.Errorf("NumPresentations = %d, want 3", h.NumPresentations)
	}
	if h.PayloadBase != 34 {
		t.Errorf("PayloadBase = %d, want 34", h.PayloadBase)
	}
}

func TestParseTOCHeader_ReservedFrameRate(t *testing.T) {
	w := new(bitWriter).
		put(2, 2).
		put(0, 10).
		flag(false).
		put(0, 1).  // 44.1 kHz
		put(6, 4).  // only index 13 is defined at 44.1 kHz
		flag(false).
		flag(true).
		flag(false)

	_, err := ParseTOCHeader(bits.NewReader(w.data))
	if !errors.Is(err, ErrReservedFrameRate) {
		t.Errorf("error = %v, want ErrReservedFrameRate", err)
	}
}

func TestParseTOCHeader_Truncated(t *testing.T) {
	_, err := ParseTOCHeader(bits.NewReader([]byte{0x80}))
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("error = %v, want ErrTruncated", err)
	}
	if !errors.Is(err, bits.ErrOverrun) {
		t.Errorf("error = %v, want wrapped bits.ErrOverrun", err)
	}
}

func TestParseFrameRateFraction(t *testing.T) {
	tests := []struct {
		name     string
		index    uint8
		w        *bitWriter
		expected uint32
		bitsRead int
	}{
		{"25 fps carries no info", 2, new(bitWriter).put(0xFF, 8), 1, 0},
		{"50 fps self-contained", 7, new(bitWriter).flag(false), 1, 1},
		{"50 fps half rate", 7, new(bitWriter).flag(true), 2, 1},
		{"100 fps self-contained", 10, new(bitWriter).flag(false), 1, 1},
		{"100 fps half rate", 10, new(bitWriter).flag(true).flag(false), 2, 2},
		{"120 fps quarter rate", 12, new(bitWriter).flag(true).flag(true), 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bits.NewReader(tt.w.data)
			got, err := ParseFrameRateFraction(r, tt.index)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("fraction = %d, want %d", got, tt.expected)
			}
			if r.BitsRead() != tt.bitsRead {
				t.Errorf("BitsRead() = %d, want %d", r.BitsRead(), tt.bitsRead)
			}
		})
	}
}

func TestParseFrameRateFraction_Truncated(t *testing.T) {
	r := bits.NewReader([]byte{0x80})
	r.GetBits(8)
	_, err := ParseFrameRateFraction(r, 10)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("error = %v, want ErrTruncated", err)
	}
}
