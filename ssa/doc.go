// File: doc.go
// Role: Package documentation for the triangle SSA ambiguity detector.

// Package ssa recognizes the triangle side-side-angle pattern and enumerates
// its zero, one, or two valid completions (spec §4.9). Unlike the
// propagation engine in core/triangle, which is wired to pick a single
// branch via the law of sines, Solutions surfaces every geometrically valid
// completion so the caller can decide which (or both) to keep.
//
// It operates on a plain {name -> value} snapshot rather than a *core.Network,
// since it is a standalone check the caller runs before or instead of
// feeding a network (spec §6: "a free function over a caller-supplied
// mapping").
package ssa
