package terminal

import (
	"image/color"
	"math"

	"centipede/game/types"
	"centipede/ui"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the top pixel as foreground and the bottom as background.
const halfBlock = '▀'

var background = color.NRGBA{A: 255}

// Raster is a ui.Canvas backed by a pixel grid two pixels tall per
// terminal cell. Each pixel covers scale world units.
type Raster struct {
	cols, rows int
	scale      float64
	pix        []color.NRGBA
}

func NewRaster(cols, rows int, scale float64) *Raster {
	r := &Raster{scale: scale}
	r.Resize(cols, rows)
	return r
}

// Resize reallocates the grid for a cols x rows terminal and clears it.
func (r *Raster) Resize(cols, rows int) {
	r.cols, r.rows = max(cols, 0), max(rows, 0)
	r.pix = make([]color.NRGBA, r.cols*r.rows*2)
	for i := range r.pix {
		r.pix[i] = background
	}
}

func (r *Raster) Size() types.Bounds {
	return types.Bounds{
		Width:  float64(r.cols) * r.scale,
		Height: float64(r.rows*2) * r.scale,
	}
}

// CellToWorld returns the world position at the centre of a terminal cell.
func (r *Raster) CellToWorld(x, y int) types.Point {
	return types.Point{
		X: (float64(x) + 0.5) * r.scale,
		Y: float64(2*y+1) * r.scale,
	}
}

// Pixel returns the colour at pixel (x, y); y counts half-cells.
func (r *Raster) Pixel(x, y int) color.NRGBA {
	return r.pix[y*r.cols+x]
}

func (r *Raster) Overlay(c color.NRGBA) {
	for i := range r.pix {
		r.pix[i] = ui.Over(r.pix[i], c)
	}
}

func (r *Raster) FillCircle(center types.Point, rad float64, p ui.Paint) {
	rad = r.minRadius(rad)
	r.fill(center, center, rad, func(q types.Point) bool {
		return types.Distance(q, center) <= rad
	}, p.ColorAt)
}

func (r *Raster) FillCapsule(a, b types.Point, rad float64, p ui.Paint) {
	rad = r.minRadius(rad)
	r.fill(a, b, rad, func(q types.Point) bool {
		return segmentDistance(q, a, b) <= rad
	}, p.ColorAt)
}

// StrokePolyline blends each covered pixel once even where lines meet.
func (r *Raster) StrokePolyline(pts []types.Point, width float64, c color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	half := r.minRadius(width / 2)

	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = types.Point{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = types.Point{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}

	r.fill(lo, hi, half, func(q types.Point) bool {
		if len(pts) == 1 {
			return types.Distance(q, pts[0]) <= half
		}
		for i := 1; i < len(pts); i++ {
			if segmentDistance(q, pts[i-1], pts[i]) <= half {
				return true
			}
		}
		return false
	}, func(types.Point) color.NRGBA { return c })
}

// Present copies the grid to the screen. The caller shows it.
func (r *Raster) Present(screen tcell.Screen) {
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			top, bottom := r.Pixel(x, 2*y), r.Pixel(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(toColor(top)).
				Background(toColor(bottom))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func (r *Raster) minRadius(rad float64) float64 {
	return math.Max(rad, r.scale/2)
}

// fill blends colorAt into every pixel whose centre passes inside, looking
// only at the box spanning a and b grown by pad.
func (r *Raster) fill(a, b types.Point, pad float64, inside func(types.Point) bool, colorAt func(types.Point) color.NRGBA) {
	if r.cols == 0 || r.rows == 0 {
		return
	}
	x0 := r.clampCol(math.Floor((math.Min(a.X, b.X) - pad) / r.scale))
	x1 := r.clampCol(math.Ceil((math.Max(a.X, b.X) + pad) / r.scale))
	y0 := r.clampRow(math.Floor((math.Min(a.Y, b.Y) - pad) / r.scale))
	y1 := r.clampRow(math.Ceil((math.Max(a.Y, b.Y) + pad) / r.scale))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			q := types.Point{X: (float64(x) + 0.5) * r.scale, Y: (float64(y) + 0.5) * r.scale}
			if inside(q) {
				i := y*r.cols + x
				r.pix[i] = ui.Over(r.pix[i], colorAt(q))
			}
		}
	}
}

func (r *Raster) clampCol(v float64) int {
	return int(types.Clamp(v, 0, float64(r.cols-1)))
}

func (r *Raster) clampRow(v float64) int {
	return int(types.Clamp(v, 0, float64(r.rows*2-1)))
}

func segmentDistance(q, a, b types.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return types.Distance(q, a)
	}
	t := types.Clamp(q.Sub(a).Dot(ab)/l2, 0, 1)
	return types.Distance(q, a.Add(ab.Mul(t)))
}

func toColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
