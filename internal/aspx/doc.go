// Package aspx implements the parts of A-SPX (advanced spectral
// extension) processing that only depend on frame metadata: the octave
// distance used by the frequency scale calculation and the sine start
// envelope continuity across frames.
package aspx
