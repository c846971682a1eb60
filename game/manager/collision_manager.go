package manager

import "centipede/game/types"

// CollisionManager answers geometric questions about the visible area:
// circle overlap and where new food may appear.
type CollisionManager struct {
	bounds types.Bounds
	margin float64
}

func NewCollisionManager(bounds types.Bounds, margin float64) *CollisionManager {
	return &CollisionManager{
		bounds: bounds,
		margin: margin,
	}
}

// Overlaps reports whether two circles touch or intersect.
func (cm *CollisionManager) Overlaps(a types.Point, ra float64, b types.Point, rb float64) bool {
	return types.Distance(a, b) <= ra+rb
}

// SpawnArea returns the corners of the visible area inset by the margin.
// An axis too small for the margin collapses to its centre.
func (cm *CollisionManager) SpawnArea() (min, max types.Point) {
	min.X, max.X = insetAxis(cm.bounds.Width, cm.margin)
	min.Y, max.Y = insetAxis(cm.bounds.Height, cm.margin)
	return min, max
}

func insetAxis(size, margin float64) (lo, hi float64) {
	if size-2*margin < 0 {
		return size * 0.5, size * 0.5
	}
	return margin, size - margin
}

// ValidateSpawnPosition checks if a position is inside the spawn area
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point) bool {
	min, max := cm.SpawnArea()
	return pos.X >= min.X && pos.X <= max.X && pos.Y >= min.Y && pos.Y <= max.Y
}

func (cm *CollisionManager) Resize(bounds types.Bounds) {
	cm.bounds = bounds
}

func (cm *CollisionManager) Bounds() types.Bounds {
	return cm.bounds
}
