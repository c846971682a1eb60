package ui

import (
	"image/color"

	"centipede/game/types"
)

// Canvas is the drawing surface a backend hands to the Renderer. All
// coordinates are in world units with the origin at the top-left corner.
// A Canvas keeps its pixels between frames; Overlay is what fades them.
type Canvas interface {
	Size() types.Bounds
	// Overlay blends c over the whole surface.
	Overlay(c color.NRGBA)
	FillCircle(center types.Point, r float64, p Paint)
	// FillCapsule fills every point within r of the segment a-b.
	FillCapsule(a, b types.Point, r float64, p Paint)
	// StrokePolyline draws round-capped lines through pts.
	StrokePolyline(pts []types.Point, width float64, c color.NRGBA)
}
