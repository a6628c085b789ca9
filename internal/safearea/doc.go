// Package safearea derives the nested safe rectangles of a display surface.
//
// A [Manager] owns the rectangle model for one rendering surface:
//
//	Design      the whole design canvas, fixed for the process lifetime
//	View        the visible part of the canvas under the resolution policy
//	DesignSafe  View shrunk by the authored percentage margins
//	DeviceSafe  View shrunk by the device hardware insets
//	FinalSafe   View shrunk by the larger of the two per side, then relaxed
//	            so it is at least MinSafeArea wherever the view allows
//
// The model is recomputed as a whole on every resize or orientation change
// and published as an immutable [Snapshot]. FinalSafe ⊆ View ⊆ Design holds
// for every input; degenerate input degrades to FinalSafe == View instead
// of failing.
//
// Thread Safety Rules:
//   - Getters are safe to call from any goroutine and return copies
//   - Compute and the host event handlers run on the host's event goroutine
//   - Subscribers run synchronously after the new snapshot is stored
package safearea
