package aspx

import "fmt"

// SineStartEnvelopes holds, per high resolution subband group, the
// envelope index at which a sinusoid starts. NoSine means no sinusoid
// is present in that subband group.
type SineStartEnvelopes [MaxNumSBGSigHiRes]uint8

// NewSineStartEnvelopes returns a snapshot without any sinusoids, the
// state at the start of a decode session.
func NewSineStartEnvelopes() SineStartEnvelopes {
	var s SineStartEnvelopes
	for i := range s {
		s[i] = NoSine
	}
	return s
}

// HarmonicParams describes the sinusoid signalling of one A-SPX frame.
type HarmonicParams struct {
	NumSBG   int // Number of high resolution subband groups
	SBGStart int // First active subband group
	TSGPtr   int // Envelope border pointer, NoTransient if absent

	// AddHarmonic holds one flag per active subband group, MSB first:
	// bit 63 belongs to subband group SBGStart.
	AddHarmonic uint64
}

// AddHarmonicAt reports whether a sinusoid is added in the i-th active
// subband group.
func (p HarmonicParams) AddHarmonicAt(i int) bool {
	return p.AddHarmonic&(1<<(63-uint(i))) != 0
}

// Validate reports whether p describes a subband group range and TSG
// pointer that Next accepts.
func (p HarmonicParams) Validate() error {
	if p.NumSBG < 0 || p.SBGStart < 0 || p.SBGStart+p.NumSBG > MaxNumSBGSigHiRes {
		return fmt.Errorf("%w: [%d, %d) exceeds %d",
			ErrSubbandRange, p.SBGStart, p.SBGStart+p.NumSBG, MaxNumSBGSigHiRes)
	}
	if p.TSGPtr < NoTransient || p.TSGPtr > MaxNumATSGSig {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			ErrTSGPointerRange, p.TSGPtr, NoTransient, MaxNumATSGSig)
	}
	return nil
}

func (p HarmonicParams) check() {
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}
}

// Next computes the sine start envelopes of the current frame from the
// previous frame's snapshot s.
//
// Subband groups outside [SBGStart, SBGStart+NumSBG) carry no sinusoid.
// Inside that range a flagged sinusoid starts at envelope 0 when the
// frame has no transient pointer or when the same subband group already
// held a sinusoid in the previous frame; otherwise it starts at the
// envelope given by TSGPtr.
//
// Next panics if the active range exceeds MaxNumSBGSigHiRes or TSGPtr
// is outside [NoTransient, MaxNumATSGSig].
//
// Ported from: function_b() in media/libstagefright/omx/generic_source.c:160-211
func (s SineStartEnvelopes) Next(p HarmonicParams) SineStartEnvelopes {
	p.check()

	next := NewSineStartEnvelopes()
	stop := p.SBGStart + p.NumSBG
	for sbg := p.SBGStart; sbg < stop; sbg++ {
		if !p.AddHarmonicAt(sbg - p.SBGStart) {
			continue
		}
		if p.TSGPtr == NoTransient || s[sbg] != NoSine {
			next[sbg] = 0
		} else {
			next[sbg] = uint8(p.TSGPtr)
		}
	}
	return next
}

// HasSine reports whether subband group sbg carries a sinusoid.
func (s SineStartEnvelopes) HasSine(sbg int) bool {
	return s[sbg] != NoSine
}
