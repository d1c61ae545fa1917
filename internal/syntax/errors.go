// Package syntax implements AC-4 bitstream syntax parsing for the
// elements that carry frame sequencing information.
package syntax

import "errors"

// TOC errors.
var (
	// ErrTruncated indicates the bitstream ended inside a syntax element.
	ErrTruncated = errors.New("syntax: bitstream truncated")

	// ErrReservedFrameRate indicates a reserved fs_index / frame_rate_index pair.
	ErrReservedFrameRate = errors.New("syntax: reserved frame rate index")
)
