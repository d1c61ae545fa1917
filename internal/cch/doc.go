// Package cch implements the AC-4 configuration change handler: the
// per-frame accounting that decides whether an incoming frame (or EHFR
// slice) is complete, whether it belongs to a collection phase, and how
// frame drops and repetitions propagate across frame rate changes.
//
// All functions operate on frame metadata only. Calls must be made once
// per frame in increasing sequence counter order; the transitions are
// not idempotent.
package cch
