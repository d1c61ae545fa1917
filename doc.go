// Package ac4 provides the configuration change handler (CCH) of an AC-4
// decoder pipeline.
//
// The handler performs the per-frame accounting that decides whether an
// incoming frame is complete and decodable, whether it is collected
// towards the pipeline's buffering delay, and how frame drops and
// repetitions propagate across frame rate changes. In EHFR (extended
// high frame rate) modes a logical frame arrives as several slices; the
// handler counts them and only reports the frame complete on its last
// slice.
//
// The handler operates on frame metadata only. It never touches sample
// buffers.
//
// # Basic Usage
//
// Feed every frame to the handler in sequence counter order:
//
//	h := ac4.NewHandler()
//
//	for _, f := range frames {
//	    d, err := h.Process(ac4.FrameInfo{
//	        SequenceCounter:    f.Counter,
//	        FrameRateFraction:  f.Fraction,
//	        FrameLength:        f.Length,
//	        DelayedFrameLength: f.DelayedLength,
//	        ConfigChange:       f.ConfigChange,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if d.DroppedLastSlice {
//	        // conceal the previous frame
//	    }
//	}
//
//	// The decoder consumes the queued frame data.
//	for fd, ok := h.Pop(); ok; fd, ok = h.Pop() {
//	    if fd.FrameComplete && !fd.CollectionFrame {
//	        // decode
//	    }
//	}
//
// Sequence counters and frame rate fractions can be taken from the
// bitstream with ParseTOC and ParseFrameRateFraction.
//
// # Sine Start Envelopes
//
// UpdateSineStart keeps, per A-SPX channel, the envelope index at which a
// sinusoid starts in every subband group, so that harmonic synthesis
// continues across frames whose subband group layout changes.
//
// # Thread Safety
//
// Handler instances are NOT safe for concurrent use. The accounting
// depends on strict call order; each decode session owns one Handler.
package ac4
