package ac4

import (
	"github.com/llehouerou/go-ac4/internal/aspx"
	"github.com/llehouerou/go-ac4/internal/cch"
)

// ConfigEvent is the configuration event of a config change code.
type ConfigEvent = cch.ConfigEvent

// Configuration events.
const (
	ConfigEventUndefined = cch.ConfigEventUndefined
	NoChange             = cch.NoChange
	Seamless             = cch.Seamless
	Gapless              = cch.Gapless
	Clean                = cch.Clean
	Splice               = cch.Splice
)

// FrameEvent is the frame event of a config change code.
type FrameEvent = cch.FrameEvent

// Frame events.
const (
	FrameEventUndefined = cch.FrameEventUndefined
	FrameEventNone      = cch.FrameEventNone
	FrameDrop           = cch.FrameDrop
	FrameRepetition     = cch.FrameRepetition
)

// ConfigChange pairs a configuration event with a frame event.
// Byte and ParseConfigChange convert to and from the single byte form
// used in upstream signalling.
type ConfigChange = cch.ConfigChange

// UndefinedConfigChange is the config change before any frame was handled.
var UndefinedConfigChange = cch.Undefined

// ParseConfigChange decodes the single byte form of a config change code.
func ParseConfigChange(b byte) (ConfigChange, error) {
	return cch.ParseConfigChange(b)
}

// FrameData is the per-frame record queued for the decoder.
type FrameData = cch.FrameData

// Session is the accounting state of one decode session.
type Session = cch.Session

// SineStartEnvelopes holds the sine start envelope per subband group.
type SineStartEnvelopes = aspx.SineStartEnvelopes

// HarmonicParams describes the sinusoid signalling of one A-SPX frame.
type HarmonicParams = aspx.HarmonicParams

// A-SPX limits relevant to callers.
const (
	MaxNumASPXInstChannels = aspx.MaxNumASPXInstChannels
	MaxNumSBGSigHiRes      = aspx.MaxNumSBGSigHiRes
	MaxNumATSGSig          = aspx.MaxNumATSGSig
	NoSine                 = aspx.NoSine
	NoTransient            = aspx.NoTransient
)

// OctaveStep returns a quarter of the octave distance between subbands a
// and b (scaled by 1/8) as a Q15 value. a and b must be in [1, 64].
func OctaveStep(a, b uint32) uint32 {
	return aspx.OctaveStep(a, b)
}

// DefaultQueueDepth is the default capacity of the frame data queue.
const DefaultQueueDepth = 16

// Config contains handler configuration options.
type Config struct {
	// QueueDepth is the number of frame data records the handler can
	// queue before the decoder has to Pop them.
	QueueDepth int
}

// DefaultConfig returns the default handler configuration.
func DefaultConfig() Config {
	return Config{QueueDepth: DefaultQueueDepth}
}

// FrameInfo carries the metadata of one incoming frame. Lengths are in
// short frame equivalents, i.e. a long frame has the length 4.
type FrameInfo struct {
	SequenceCounter    uint32
	FrameRateFraction  uint32 // Slices per frame, a power of two
	FrameLength        uint32
	DelayedFrameLength uint32 // Length of the frame at the pipeline delay
	ConfigChange       ConfigChange
}

// Decision is the handler's verdict for one frame.
type Decision struct {
	FrameData

	// DroppedLastSlice is set when the last slice of the previous EHFR
	// frame was dropped.
	DroppedLastSlice bool

	// PreviousMarkedDropped is set when the previous frame's config
	// change was updated with FRAME_DROP.
	PreviousMarkedDropped bool
}
