package cch

import "strings"

// ConfigEvent is the configuration event carried in the low nibble of a
// config change code.
type ConfigEvent int8

// Configuration events. The order matters: later events are less
// seamless than earlier ones.
const (
	ConfigEventUndefined ConfigEvent = -1
	NoChange             ConfigEvent = 0x0 // Nothing changed, normal processing
	Seamless             ConfigEvent = 0x1 // Perfect transition between frame rate multiples
	Gapless              ConfigEvent = 0x2 // No silence gap in between
	Clean                ConfigEvent = 0x3 // Better than Gapless, worse than Seamless
	Splice               ConfigEvent = 0x4 // Always introduces a silence gap
)

func (e ConfigEvent) String() string {
	switch e {
	case ConfigEventUndefined:
		return "UNDEFINED"
	case NoChange:
		return "NO_CHANGE"
	case Seamless:
		return "SEAMLESS"
	case Gapless:
		return "GAPLESS"
	case Clean:
		return "CLEAN"
	case Splice:
		return "SPLICE"
	default:
		return "RESERVED"
	}
}

// FrameEvent is the frame event carried in the high nibble of a config
// change code.
type FrameEvent int8

// Frame events.
const (
	FrameEventUndefined FrameEvent = -1
	FrameEventNone      FrameEvent = 0x0
	FrameDrop           FrameEvent = 0x1 // 0x10 on the wire
	FrameRepetition     FrameEvent = 0x2 // 0x20 on the wire
)

func (e FrameEvent) String() string {
	switch e {
	case FrameEventUndefined:
		return "UNDEFINED"
	case FrameEventNone:
		return "NONE"
	case FrameDrop:
		return "FRAME_DROP"
	case FrameRepetition:
		return "FRAME_REPETITION"
	default:
		return "RESERVED"
	}
}

// undefinedNibble is the wire value of an undefined event.
const undefinedNibble = 0xF

// ConfigChange is a configuration change code: a configuration event
// and a frame event that are always read and written independently.
type ConfigChange struct {
	Config ConfigEvent
	Frame  FrameEvent
}

// Undefined is the config change value before any frame was handled.
var Undefined = ConfigChange{Config: ConfigEventUndefined, Frame: FrameEventUndefined}

// WithConfig returns c with the configuration event replaced.
func (c ConfigChange) WithConfig(e ConfigEvent) ConfigChange {
	c.Config = e
	return c
}

// WithFrame returns c with the frame event replaced.
func (c ConfigChange) WithFrame(e FrameEvent) ConfigChange {
	c.Frame = e
	return c
}

// Byte packs c into its single byte wire form: the configuration event
// in the low nibble and the frame event in the high nibble. Undefined
// events encode as 0xF.
func (c ConfigChange) Byte() byte {
	return frameNibble(c.Frame)<<4 | configNibble(c.Config)
}

func configNibble(e ConfigEvent) byte {
	if e == ConfigEventUndefined {
		return undefinedNibble
	}
	return byte(e) & 0x0F
}

func frameNibble(e FrameEvent) byte {
	if e == FrameEventUndefined {
		return undefinedNibble
	}
	return byte(e) & 0x0F
}

// ParseConfigChange unpacks the single byte wire form of a config change
// code.
func ParseConfigChange(b byte) (ConfigChange, error) {
	var c ConfigChange

	switch lo := b & 0x0F; {
	case lo == undefinedNibble:
		c.Config = ConfigEventUndefined
	case lo <= byte(Splice):
		c.Config = ConfigEvent(lo)
	default:
		return ConfigChange{}, ErrReservedConfigEvent
	}

	switch hi := b >> 4; {
	case hi == undefinedNibble:
		c.Frame = FrameEventUndefined
	case hi <= byte(FrameRepetition):
		c.Frame = FrameEvent(hi)
	default:
		return ConfigChange{}, ErrReservedFrameEvent
	}

	return c, nil
}

// String renders c as "CONFIG|FRAME", omitting a frame event of NONE.
func (c ConfigChange) String() string {
	var sb strings.Builder
	sb.WriteString(c.Config.String())
	if c.Frame != FrameEventNone {
		sb.WriteByte('|')
		sb.WriteString(c.Frame.String())
	}
	return sb.String()
}
