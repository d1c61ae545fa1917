package cch

import "errors"

// Config change code errors.
var (
	// ErrReservedConfigEvent indicates a low nibble value above SPLICE.
	ErrReservedConfigEvent = errors.New("cch: reserved configuration event")

	// ErrReservedFrameEvent indicates a high nibble value above FRAME_REPETITION.
	ErrReservedFrameEvent = errors.New("cch: reserved frame event")
)
