// Package layout holds the design-space geometry used by the safe-area engine.
//
// All coordinates are float64 design-space units. [Rect], [Size], [Point] and
// [Padding] are plain values; every function here returns new values and never
// mutates its inputs, with the single exception of [Place], which writes the
// position of a [Positionable].
//
// Anchors name the nine normalized reference points of a rectangle. The main
// entry points are [AnchorPoint] and [Place].
package layout
