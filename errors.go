package ac4

// Error represents a configuration change handler error code.
type Error int

// Error codes.
const (
	ErrNone                     Error = 0
	ErrInvalidFrameRateFraction Error = 1
	ErrSequenceOrder            Error = 2
	ErrQueueFull                Error = 3
	ErrInvalidChannel           Error = 4
	ErrInvalidQueueDepth        Error = 5
	ErrSubbandRange             Error = 6
	ErrTSGPointerRange          Error = 7
)

var errMessages = [8]string{
	"No error",
	"Frame rate fraction is not a power of two",
	"Sequence counter did not increase",
	"Frame data queue is full",
	"A-SPX channel index out of range",
	"Queue depth must be positive",
	"Subband group range exceeds maximum number of subband groups",
	"TSG pointer out of range",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
