package cch

// FrameData is the per-frame record handed to the decoder.
type FrameData struct {
	ConfigChange    ConfigChange
	FrameComplete   bool // Frame is complete and can be decoded
	CollectionFrame bool // Frame is collected, not processed
}

// Input carries the per-frame values consumed by ProcessFrame. Frame
// lengths are in short frame equivalents, i.e. a long frame has the
// length 4.
type Input struct {
	SequenceCounter           uint32
	FrameRateFractionPrevious uint32
	FrameRateFractionCurrent  uint32
	LengthFrameDelayed        uint32 // Length of the delayed frame
	LengthFrameCurrent        uint32
	ConfigChange              ConfigChange
}

// Result is the outcome of ProcessFrame.
type Result struct {
	Frame FrameData

	// DroppedLastSlice is set when the last slice of the previous EHFR
	// frame was dropped.
	DroppedLastSlice bool

	// PreviousMarkedDropped is set when the frame drop was attributed
	// to the previous frame. Previous then holds its updated code.
	PreviousMarkedDropped bool
	Previous              ConfigChange
}

// ProcessFrame determines the frame data of the current frame, complements
// its config change with frame events at EHFR boundaries, and updates the
// session accounting.
//
// ProcessFrame panics if either frame rate fraction is not a power of two.
//
// Ported from: function_c() in media/libstagefright/omx/generic_source.c:266-392
func ProcessFrame(in Input, s *Session) Result {
	checkFraction(in.FrameRateFractionPrevious)
	checkFraction(in.FrameRateFractionCurrent)

	var (
		maxSliceIndexPrevious = in.FrameRateFractionPrevious - 1
		sliceIndexPrevious    = (in.SequenceCounter - 1) & maxSliceIndexPrevious
		sliceIndexCurrent     = in.SequenceCounter & (in.FrameRateFractionCurrent - 1)
		cc                    = in.ConfigChange
		res                   Result
	)

	// A splice, or a drop hitting the last slice of a released frame,
	// discards what was collected so far.
	if cc.Config == Splice ||
		(cc.Frame == FrameDrop && !s.CollectionFramePrevious && sliceIndexCurrent == 0) {
		s.LengthFramesCollected = 0
	}
	if s.LengthFramesCollected == 0 {
		s.NumFramesCollected = 0
	}

	if cc.Frame == FrameRepetition {
		res.Frame = FrameData{
			ConfigChange:    cc,
			FrameComplete:   in.FrameRateFractionCurrent == 1,
			CollectionFrame: in.LengthFrameDelayed > in.LengthFrameCurrent || s.CollectionFramePrevious,
		}
		return s.advance(res)
	}

	var droppedFirstSlice bool
	res.Frame.FrameComplete, droppedFirstSlice = FrameComplete(
		in.SequenceCounter, in.FrameRateFractionCurrent, cc, &s.NumSlicesAvailable)

	// Only the first decodable slice of a frame adds to the collection.
	available := s.NumSlicesAvailable
	if droppedFirstSlice {
		available--
	}
	if available == 1 {
		s.LengthFramesCollected += in.LengthFrameCurrent
		s.NumFramesCollected++
	}

	res.Frame.CollectionFrame = s.LengthFramesCollected < in.LengthFrameDelayed

	// Leaving the collection phase. NumFramesCollected is still needed
	// downstream and is cleared on the next call instead.
	if !res.Frame.CollectionFrame && res.Frame.FrameComplete {
		s.LengthFramesCollected = 0
	}

	if cc.Frame == FrameDrop {
		ehfrPrevious := in.FrameRateFractionPrevious > 1
		ehfrCurrent := in.FrameRateFractionCurrent > 1

		switch {
		case ehfrPrevious && ehfrCurrent:
			cc = cc.WithFrame(FrameDrop)
			if sliceIndexPrevious == maxSliceIndexPrevious {
				res.DroppedLastSlice = true
			}
		case ehfrPrevious && !ehfrCurrent && sliceIndexPrevious < maxSliceIndexPrevious:
			// The self-contained frame reveals that the previous EHFR
			// frame never completed.
			s.ConfigChangePrevious = s.ConfigChangePrevious.WithFrame(FrameDrop)
			res.PreviousMarkedDropped = true
		case !ehfrPrevious && ehfrCurrent && sliceIndexCurrent > 0:
			cc = cc.WithFrame(FrameDrop)
		}
	}

	res.Frame.ConfigChange = cc
	return s.advance(res)
}

// advance records res as the previous frame for the next call.
func (s *Session) advance(res Result) Result {
	res.Previous = s.ConfigChangePrevious
	s.ConfigChangePrevious = res.Frame.ConfigChange
	s.CollectionFramePrevious = res.Frame.CollectionFrame
	return res
}
