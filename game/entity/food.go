package entity

import "centipede/game/types"

// Food represents a consumable target
type Food struct {
	ID     string
	Pos    types.Point
	Radius float64
	Hue    float64 // degrees, cosmetic only
}

// DistanceTo returns distance from food to a point
func (f Food) DistanceTo(p types.Point) float64 {
	return types.Distance(f.Pos, p)
}
