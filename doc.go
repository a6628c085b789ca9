// Package safearea keeps UI inside the usable part of a display.
//
// A fixed design canvas is mapped onto the real display by a resolution
// policy. Device insets (notches, rounded corners, home indicators) and
// authored percentage margins are merged into one final safe rectangle,
// which is recomputed on every resize and orientation change. Nodes
// registered with a [Surface] are re-anchored to it automatically.
//
// Users import this single package for the public API: surfaces, geometry
// types, anchors and the host contract.
//
//	host := myPlatformHost()
//	s, err := safearea.NewSurface(host, safearea.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer s.Destroy()
//
//	s.AddWithAnchor("close", closeButton, safearea.TopRight, -24, 24)
package safearea
