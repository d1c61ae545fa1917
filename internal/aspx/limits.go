package aspx

// A-SPX limits.
const (
	MaxNumASPXInstChannels = 2  // Maximum number of A-SPX channels per instance
	MaxNumATSGSig          = 5  // Maximum signal time slot groups (signal envelopes) per frame
	MaxNumATSGNoise        = 2  // Maximum noise time slot groups (noise envelopes) per frame
	MaxNumSBGSigHiRes      = 22 // Maximum signal subband groups, high resolution
	MaxNumSBGSigLoRes      = 11 // Maximum signal subband groups, low resolution
	MaxNumSBGNoise         = 5  // Maximum noise subband groups
	MaxNumSBASPX           = 44 // Maximum QMF subbands in the A-SPX range
)

// NoSine marks a subband group without a sinusoid.
const NoSine = MaxNumATSGSig

// NoTransient is the TSG pointer value signalling that the frame has no
// envelope border pointing at a transient.
const NoTransient = -1
