package aspx

import "errors"

// Harmonic parameter errors.
var (
	// ErrSubbandRange indicates an active subband group range beyond
	// MaxNumSBGSigHiRes.
	ErrSubbandRange = errors.New("aspx: subband group range out of bounds")

	// ErrTSGPointerRange indicates a TSG pointer outside
	// [NoTransient, MaxNumATSGSig].
	ErrTSGPointerRange = errors.New("aspx: TSG pointer out of range")
)
