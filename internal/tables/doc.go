// Package tables contains lookup tables for AC-4 decoding.
//
// This includes the scaled log-dualis table used by the A-SPX
// frequency scale calculation and the frame rate table used to
// interpret TOC signalling.
package tables
