package types

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a position or a displacement in world units (pixels).
type Point = r2.Point

// Bounds represents the visible area, origin at the top-left corner
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the visible area
func (b Bounds) Center() Point {
	return Point{X: b.Width * 0.5, Y: b.Height * 0.5}
}

// Contains reports whether p lies inside the area, edges included
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Game constants
const (
	Tau = 2 * math.Pi

	TailRadiusRatio = 0.55 // tail radius as a fraction of the base radius
	GrowRadiusRatio = 0.98 // new tail radius relative to the current tail
)

// FromAngle returns the vector of length l pointing along angle a.
func FromAngle(a, l float64) Point {
	return Point{X: math.Cos(a) * l, Y: math.Sin(a) * l}
}

// Heading returns the angle of v, or fallback when v has no direction.
func Heading(v Point, fallback float64) float64 {
	if v.X == 0 && v.Y == 0 {
		return fallback
	}
	return math.Atan2(v.Y, v.X)
}

// Distance returns the euclidean distance between a and b
func Distance(a, b Point) float64 {
	return a.Sub(b).Norm()
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle normalizes a to [-π, π].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= Tau
	}
	for a < -math.Pi {
		a += Tau
	}
	return a
}
