package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	ac4 "github.com/llehouerou/go-ac4"
)

// traceFile is the JSON input of the command.
type traceFile struct {
	DelayedLength uint32       `json:"delayed_length"`
	QueueDepth    int          `json:"queue_depth,omitempty"`
	Frames        []traceFrame `json:"frames"`
}

// traceFrame describes one incoming frame. When TOC is set it holds the
// hex encoded TOC header immediately followed by frame_rate_fraction_info();
// the counter and fraction are then taken from the bitstream unless given
// explicitly.
type traceFrame struct {
	Counter       *uint32 `json:"counter,omitempty"`
	Fraction      uint32  `json:"fraction,omitempty"`
	Length        uint32  `json:"length"`
	DelayedLength *uint32 `json:"delayed_length,omitempty"`
	ConfigChange  string  `json:"config_change,omitempty"`
	TOC           string  `json:"toc,omitempty"`
}

// row is the report line of one frame.
type row struct {
	Counter      uint32 `json:"counter"`
	Fraction     uint32 `json:"fraction"`
	Length       uint32 `json:"length"`
	Input        string `json:"input"`
	Code         string `json:"code"`
	CodeByte     string `json:"code_byte"`
	Complete     bool   `json:"complete"`
	Collection   bool   `json:"collection"`
	DroppedLast  bool   `json:"dropped_last_slice"`
	PrevMarked   bool   `json:"previous_marked_dropped"`
	Collected    uint32 `json:"length_collected"`
	NumCollected uint32 `json:"frames_collected"`
	Slices       uint32 `json:"slices_available"`
}

func readTrace(r io.Reader) (traceFile, error) {
	var tf traceFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tf); err != nil {
		return traceFile{}, fmt.Errorf("decode trace: %w", err)
	}
	return tf, nil
}

// loadTrace reads the trace at path, or stdin for "-". The file is
// closed before returning.
func loadTrace(path string) (traceFile, error) {
	if path == "-" {
		return readTrace(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return traceFile{}, err
	}
	defer f.Close()
	return readTrace(f)
}

func parseConfigChange(s string) (ac4.ConfigChange, error) {
	if s == "" {
		return ac4.ConfigChange{}, nil
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return ac4.ConfigChange{}, fmt.Errorf("config change %q: %w", s, err)
	}
	cc, err := ac4.ParseConfigChange(byte(v))
	if err != nil {
		return ac4.ConfigChange{}, fmt.Errorf("config change %q: %w", s, err)
	}
	return cc, nil
}

// counterExtender turns the wrapping TOC sequence_counter into the
// monotonic counter the handler expects. Every supported frame rate
// fraction divides the wrap period, so slice positions are unchanged.
type counterExtender struct {
	started bool
	last    uint32
	base    uint32
}

func (c *counterExtender) extend(raw uint32) uint32 {
	if c.started && raw < c.last {
		c.base += 1 << ac4.SequenceCounterBits
	}
	c.started = true
	c.last = raw
	return c.base + raw
}

// frameInfo resolves the handler input of frame f. TOC counters are
// extended through seq.
func (tf traceFile) frameInfo(i int, f traceFrame, seq *counterExtender) (ac4.FrameInfo, error) {
	cc, err := parseConfigChange(f.ConfigChange)
	if err != nil {
		return ac4.FrameInfo{}, err
	}

	fi := ac4.FrameInfo{
		SequenceCounter:    uint32(i),
		FrameRateFraction:  f.Fraction,
		FrameLength:        f.Length,
		DelayedFrameLength: tf.DelayedLength,
		ConfigChange:       cc,
	}
	if f.DelayedLength != nil {
		fi.DelayedFrameLength = *f.DelayedLength
	}

	if f.TOC != "" {
		data, err := hex.DecodeString(strings.TrimPrefix(f.TOC, "0x"))
		if err != nil {
			return ac4.FrameInfo{}, fmt.Errorf("toc: %w", err)
		}
		toc, err := ac4.ParseTOC(data)
		if err != nil {
			return ac4.FrameInfo{}, fmt.Errorf("toc: %w", err)
		}
		if f.Counter == nil {
			fi.SequenceCounter = seq.extend(toc.SequenceCounter)
		}
		if fi.FrameRateFraction == 0 {
			fi.FrameRateFraction, err = ac4.ParseFrameRateFraction(data, toc.BitsRead, toc.FrameRateIndex)
			if err != nil {
				return ac4.FrameInfo{}, fmt.Errorf("toc: %w", err)
			}
		}
	}

	if f.Counter != nil {
		fi.SequenceCounter = *f.Counter
	}
	if fi.FrameRateFraction == 0 {
		fi.FrameRateFraction = 1
	}
	return fi, nil
}

// replay runs the trace through a handler. The queue is drained as it
// fills so that retroactive frame drop marks show up in the report.
func replay(tf traceFile) ([]row, error) {
	cfg := ac4.DefaultConfig()
	if tf.QueueDepth > 0 {
		cfg.QueueDepth = tf.QueueDepth
	}
	h, err := ac4.NewHandlerWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	var seq counterExtender
	rows := make([]row, 0, len(tf.Frames))
	popped := 0
	pop := func() {
		fd, ok := h.Pop()
		if !ok {
			return
		}
		rows[popped].Code = fd.ConfigChange.String()
		rows[popped].CodeByte = fmt.Sprintf("0x%02X", fd.ConfigChange.Byte())
		popped++
	}

	for i, f := range tf.Frames {
		fi, err := tf.frameInfo(i, f, &seq)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		if h.Len() == h.Config().QueueDepth {
			pop()
		}
		d, err := h.Process(fi)
		if err != nil {
			return nil, fmt.Errorf("frame %d (counter %d): %w", i, fi.SequenceCounter, err)
		}

		s := h.Session()
		rows = append(rows, row{
			Counter:      fi.SequenceCounter,
			Fraction:     fi.FrameRateFraction,
			Length:       fi.FrameLength,
			Input:        fi.ConfigChange.String(),
			Complete:     d.FrameComplete,
			Collection:   d.CollectionFrame,
			DroppedLast:  d.DroppedLastSlice,
			PrevMarked:   d.PreviousMarkedDropped,
			Collected:    s.LengthFramesCollected,
			NumCollected: s.NumFramesCollected,
			Slices:       s.NumSlicesAvailable,
		})
	}

	for h.Len() > 0 {
		pop()
	}
	return rows, nil
}
