package ui

import (
	"image/color"
	"math"

	"centipede/game/types"
)

// Strip is a line across a capsule, painted in one colour.
type Strip struct {
	From, To types.Point
	Color    color.NRGBA
}

// CapsuleStrips slices the capsule a-b of radius r into chords perpendicular
// to its axis, step world units apart, each coloured by p at its midpoint.
// GPU backends without gradient fills draw these as thick lines.
func CapsuleStrips(a, b types.Point, r float64, p Paint, step float64) []Strip {
	if r <= 0 || step <= 0 {
		return nil
	}

	axis := b.Sub(a)
	if axis.Norm() == 0 {
		if g, ok := p.(LinearGradient); ok {
			axis = g.To.Sub(g.From)
		}
		if axis.Norm() == 0 {
			axis = types.Point{X: 1}
		}
	}
	dir := axis.Normalize()
	normal := dir.Ortho()

	center := a.Add(b).Mul(0.5)
	half := types.Distance(a, b) / 2
	reach := half + r

	n := int(math.Ceil(2 * reach / step))
	strips := make([]Strip, 0, n+1)
	for i := 0; i <= n; i++ {
		d := -reach + float64(i)*2*reach/float64(max(n, 1))
		w := r
		if over := math.Abs(d) - half; over > 0 {
			w = math.Sqrt(math.Max(0, r*r-over*over))
		}
		if w == 0 {
			continue
		}
		mid := center.Add(dir.Mul(d))
		strips = append(strips, Strip{
			From:  mid.Sub(normal.Mul(w)),
			To:    mid.Add(normal.Mul(w)),
			Color: p.ColorAt(mid),
		})
	}
	return strips
}

// Ring is an annulus of the given mid radius and width.
type Ring struct {
	Radius, Width float64
	Color         color.NRGBA
}

// CircleRings splits a disc of radius r into non-overlapping rings about
// step wide, each coloured by p along the +X radius.
func CircleRings(center types.Point, r float64, p Paint, step float64) []Ring {
	if r <= 0 || step <= 0 {
		return nil
	}
	n := max(1, int(math.Ceil(r/step)))
	w := r / float64(n)

	rings := make([]Ring, n)
	for i := range rings {
		mid := (float64(i) + 0.5) * w
		rings[i] = Ring{
			Radius: mid,
			Width:  w,
			Color:  p.ColorAt(center.Add(types.Point{X: mid})),
		}
	}
	return rings
}
