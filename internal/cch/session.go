package cch

// Session holds the accounting state of one decode session. It persists
// across all frames and is only reset when the session starts or the
// decoder is reconfigured.
type Session struct {
	// LengthFramesCollected is the overall length of frames collected
	// but not yet released, in short frame equivalents.
	LengthFramesCollected uint32

	// NumFramesCollected is the number of frames contributing to
	// LengthFramesCollected. It survives the end of a collection phase
	// and is cleared on the next frame.
	NumFramesCollected uint32

	// NumSlicesAvailable counts the slices of the current EHFR frame.
	NumSlicesAvailable uint32

	ConfigChangePrevious    ConfigChange // Code assigned to the previous frame
	CollectionFramePrevious bool         // Previous frame was a collection frame
}

// NewSession returns the state of a freshly started session.
func NewSession() Session {
	return Session{ConfigChangePrevious: Undefined}
}

// Reset restores the state of a freshly started session.
func (s *Session) Reset() {
	*s = NewSession()
}
