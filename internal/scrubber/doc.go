// Package scrubber implements the alphabetic fast-scroll strip: the letter
// index over the displayed rows, the pointer-to-letter geometry, the
// snap/fine gesture state machine and the per-letter bulge deformation.
//
// Everything here is synchronous and runs on the caller's event loop. The
// host feeds pointer events and item snapshots into a Scrubber and reacts to
// the events it publishes.
package scrubber
