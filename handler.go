package ac4

import (
	"errors"

	"github.com/llehouerou/go-ac4/internal/aspx"
	"github.com/llehouerou/go-ac4/internal/cch"
	"github.com/llehouerou/go-ac4/internal/fifo"
)

// Handler is the configuration change handler of one decode session.
type Handler struct {
	config Config

	session cch.Session
	queue   *fifo.Queue[FrameData]

	// Previous frame
	started          bool
	counterPrevious  uint32
	fractionPrevious uint32

	// Per A-SPX channel sine start envelopes of the previous frame
	sineStart [aspx.MaxNumASPXInstChannels]SineStartEnvelopes
}

// NewHandler creates a handler with the default configuration.
func NewHandler() *Handler {
	h, _ := NewHandlerWithConfig(DefaultConfig())
	return h
}

// NewHandlerWithConfig creates a handler with the given configuration.
func NewHandlerWithConfig(cfg Config) (*Handler, error) {
	h := &Handler{}
	if err := h.SetConfiguration(cfg); err != nil {
		return nil, err
	}
	return h, nil
}

// Config returns the current handler configuration.
func (h *Handler) Config() Config {
	return h.config
}

// SetConfiguration applies cfg. Reconfiguring resets the session.
func (h *Handler) SetConfiguration(cfg Config) error {
	if cfg.QueueDepth <= 0 {
		return ErrInvalidQueueDepth
	}
	h.config = cfg
	h.queue = fifo.New[FrameData](cfg.QueueDepth)
	h.Reset()
	return nil
}

// Reset starts a new decode session: accounting state, queued frame
// data and sine start envelopes are cleared.
func (h *Handler) Reset() {
	h.session.Reset()
	h.queue.Clear()
	h.started = false
	h.counterPrevious = 0
	h.fractionPrevious = 0
	for ch := range h.sineStart {
		h.sineStart[ch] = aspx.NewSineStartEnvelopes()
	}
}

// Session returns a copy of the current accounting state.
func (h *Handler) Session() Session {
	return h.session
}

// Process handles one incoming frame and queues its frame data.
//
// Frames must be passed in increasing sequence counter order. The first
// frame of a session is treated as following a frame with the same
// frame rate fraction.
func (h *Handler) Process(fi FrameInfo) (Decision, error) {
	if !cch.IsValidFraction(fi.FrameRateFraction) {
		return Decision{}, ErrInvalidFrameRateFraction
	}
	if h.started && fi.SequenceCounter <= h.counterPrevious {
		return Decision{}, ErrSequenceOrder
	}
	if h.queue.Len() == h.queue.Cap() {
		return Decision{}, ErrQueueFull
	}

	fractionPrevious := h.fractionPrevious
	if !h.started {
		fractionPrevious = fi.FrameRateFraction
	}

	res := cch.ProcessFrame(cch.Input{
		SequenceCounter:           fi.SequenceCounter,
		FrameRateFractionPrevious: fractionPrevious,
		FrameRateFractionCurrent:  fi.FrameRateFraction,
		LengthFrameDelayed:        fi.DelayedFrameLength,
		LengthFrameCurrent:        fi.FrameLength,
		ConfigChange:              fi.ConfigChange,
	}, &h.session)

	// The previous frame may still wait for the decoder.
	if res.PreviousMarkedDropped {
		if prev := h.queue.Newest(); prev != nil {
			prev.ConfigChange = res.Previous
		}
	}
	h.queue.Push(res.Frame)

	h.started = true
	h.counterPrevious = fi.SequenceCounter
	h.fractionPrevious = fi.FrameRateFraction

	return Decision{
		FrameData:             res.Frame,
		DroppedLastSlice:      res.DroppedLastSlice,
		PreviousMarkedDropped: res.PreviousMarkedDropped,
	}, nil
}

// Len returns the number of queued frame data records.
func (h *Handler) Len() int {
	return h.queue.Len()
}

// Pop removes and returns the oldest queued frame data.
func (h *Handler) Pop() (FrameData, bool) {
	return h.queue.Pop()
}

// Peek returns the oldest queued frame data without removing it.
func (h *Handler) Peek() (FrameData, bool) {
	return h.queue.Peek()
}

// UpdateSineStart computes the sine start envelopes of the current frame
// for A-SPX channel ch from the channel's previous frame.
func (h *Handler) UpdateSineStart(ch int, p HarmonicParams) (SineStartEnvelopes, error) {
	if ch < 0 || ch >= aspx.MaxNumASPXInstChannels {
		return SineStartEnvelopes{}, ErrInvalidChannel
	}
	if err := p.Validate(); err != nil {
		if errors.Is(err, aspx.ErrTSGPointerRange) {
			return SineStartEnvelopes{}, ErrTSGPointerRange
		}
		return SineStartEnvelopes{}, ErrSubbandRange
	}

	h.sineStart[ch] = h.sineStart[ch].Next(p)
	return h.sineStart[ch], nil
}

// SineStart returns the sine start envelopes last computed for A-SPX
// channel ch.
func (h *Handler) SineStart(ch int) (SineStartEnvelopes, error) {
	if ch < 0 || ch >= aspx.MaxNumASPXInstChannels {
		return SineStartEnvelopes{}, ErrInvalidChannel
	}
	return h.sineStart[ch], nil
}
