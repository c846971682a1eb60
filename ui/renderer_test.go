package ui

import (
	"image/color"
	"math"
	"testing"

	"centipede/game"
	"centipede/game/entity"
	"centipede/game/input"
	"centipede/game/types"
)

type call struct {
	kind   string
	points []types.Point
	radius float64
	paint  Paint
	color  color.NRGBA
}

// recorder is a Canvas that remembers every primitive it was asked for.
type recorder struct {
	size  types.Bounds
	calls []call
}

func (r *recorder) Size() types.Bounds { return r.size }

func (r *recorder) Overlay(c color.NRGBA) {
	r.calls = append(r.calls, call{kind: "overlay", color: c})
}

func (r *recorder) FillCircle(center types.Point, rad float64, p Paint) {
	r.calls = append(r.calls, call{kind: "circle", points: []types.Point{center}, radius: rad, paint: p})
}

func (r *recorder) FillCapsule(a, b types.Point, rad float64, p Paint) {
	r.calls = append(r.calls, call{kind: "capsule", points: []types.Point{a, b}, radius: rad, paint: p})
}

func (r *recorder) StrokePolyline(pts []types.Point, width float64, c color.NRGBA) {
	r.calls = append(r.calls, call{kind: "polyline", points: pts, radius: width, color: c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func newGame(t *testing.T, cfg types.Config) *game.Game {
	t.Helper()
	g, err := game.New(cfg, types.Bounds{Width: 800, Height: 600}, input.Fixed{X: 400, Y: 300}, types.NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDrawPrimitives(t *testing.T) {
	g := newGame(t, types.DefaultConfig())
	rec := &recorder{size: g.Bounds()}

	NewRenderer().Draw(rec, g)

	if len(rec.calls) == 0 || rec.calls[0].kind != "overlay" {
		t.Fatalf("calls = %+v, want overlay first", rec.calls)
	}
	if rec.calls[0].color != trailOverlay {
		t.Errorf("overlay = %v, want %v", rec.calls[0].color, trailOverlay)
	}
	// 4 food glows and cores, 2 eyes and 2 pupils
	if n := rec.count("circle"); n != 12 {
		t.Errorf("circles = %d, want 12", n)
	}
	if n := rec.count("capsule"); n != 30 {
		t.Errorf("capsules = %d, want 30", n)
	}
	// two legs per segment plus two antennas
	if n := rec.count("polyline"); n != 62 {
		t.Errorf("polylines = %d, want 62", n)
	}
}

func TestDrawOrder(t *testing.T) {
	g := newGame(t, types.DefaultConfig())
	rec := &recorder{size: g.Bounds()}
	NewRenderer().Draw(rec, g)

	// food comes straight after the overlay
	for i := 1; i <= 8; i++ {
		if rec.calls[i].kind != "circle" {
			t.Fatalf("call %d = %s, want food circle", i, rec.calls[i].kind)
		}
	}

	// the last capsule is the head, drawn on top of the body
	segs := g.Creature().Segments()
	var last call
	for _, c := range rec.calls {
		if c.kind == "capsule" {
			last = c
		}
	}
	mid := last.points[0].Add(last.points[1]).Mul(0.5)
	if types.Distance(mid, segs[0].Pos) > 1e-9 {
		t.Errorf("last capsule centred at %v, want head %v", mid, segs[0].Pos)
	}
	if last.radius != segs[0].Radius {
		t.Errorf("last capsule radius = %v, want %v", last.radius, segs[0].Radius)
	}

	// eyes and antennas close the frame
	tail := rec.calls[len(rec.calls)-6:]
	kinds := []string{"circle", "circle", "circle", "circle", "polyline", "polyline"}
	for i, c := range tail {
		if c.kind != kinds[i] {
			t.Errorf("tail call %d = %s, want %s", i, c.kind, kinds[i])
		}
	}
}

func TestLegsEvery(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Segments = 10
	cfg.LegsEvery = 3
	g := newGame(t, cfg)
	rec := &recorder{size: g.Bounds()}
	NewRenderer().Draw(rec, g)

	// segments 0, 3, 6, 9 carry legs
	if n := rec.count("polyline"); n != 4*2+2 {
		t.Errorf("polylines = %d, want 10", n)
	}
}

func TestSingleSegmentDraws(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Segments = 1
	g := newGame(t, cfg)
	rec := &recorder{size: g.Bounds()}
	NewRenderer().Draw(rec, g)

	if n := rec.count("capsule"); n != 1 {
		t.Fatalf("capsules = %d, want 1", n)
	}
}

func TestCapsuleGeometry(t *testing.T) {
	cfg := types.DefaultConfig()
	rec := &recorder{}
	s := entity.Segment{Pos: types.Point{X: 100, Y: 50}, Angle: 0, Length: 22, Radius: 10}

	drawSegment(rec, s, cfg, 0)

	c := rec.calls[0]
	// 22*1.05/2 - 10 = 1.55 either side of the centre
	if math.Abs(c.points[0].X-98.45) > 1e-9 || math.Abs(c.points[1].X-101.55) > 1e-9 {
		t.Errorf("capsule ends = %v", c.points)
	}

	fat := entity.Segment{Pos: types.Point{}, Radius: 40}
	rec.calls = nil
	drawSegment(rec, fat, cfg, 0)
	if c := rec.calls[0]; c.points[0] != c.points[1] {
		t.Errorf("radius above half length should collapse to a circle, got %v", c.points)
	}
}

func TestBodyGradient(t *testing.T) {
	cfg := types.DefaultConfig()
	s := entity.Segment{Pos: types.Point{X: 10, Y: 10}, Angle: math.Pi / 2, Radius: 10}
	g := BodyGradient(s, cfg, 1)

	half := 22 * 1.15 / 2
	if math.Abs(g.From.Y-(10-half)) > 1e-9 || math.Abs(g.To.Y-(10+half)) > 1e-9 {
		t.Errorf("gradient axis %v..%v", g.From, g.To)
	}
	if got, want := g.Stops[1].Color, HSL(120, 70, 65); got != want {
		t.Errorf("highlight = %v, want %v", got, want)
	}
	if got, want := g.Stops[2].Color, HSL(120, 55, 45); got != want {
		t.Errorf("shadow = %v, want %v", got, want)
	}
}

func TestLegs(t *testing.T) {
	s := entity.Segment{Pos: types.Point{}, Angle: 0, Radius: 10}
	left, right := legs(s, 0, 0)

	if types.Distance(left[0], types.Point{Y: 14}) > 1e-9 {
		t.Errorf("left hip = %v, want (0,14)", left[0])
	}
	if types.Distance(right[0], types.Point{Y: -14}) > 1e-9 {
		t.Errorf("right hip = %v, want (0,-14)", right[0])
	}
	// with no swing the left femur points at -π/2
	if types.Distance(left[1], types.Point{Y: -16}) > 1e-9 {
		t.Errorf("left knee = %v, want (0,-16)", left[1])
	}
	for _, leg := range [][]types.Point{left, right} {
		if d := types.Distance(leg[0], leg[1]); math.Abs(d-30) > 1e-9 {
			t.Errorf("femur = %v, want 30", d)
		}
		if d := types.Distance(leg[1], leg[2]); math.Abs(d-25) > 1e-9 {
			t.Errorf("tibia = %v, want 25", d)
		}
	}

	// the swing phase advances along the body
	a, _ := legs(s, 0, 0.1)
	b, _ := legs(s, 4, 0.1)
	if types.Distance(a[1], b[1]) < 1e-6 {
		t.Error("legs at different indices share a phase")
	}
}

func TestEyesAndAntennas(t *testing.T) {
	h := entity.Segment{Pos: types.Point{}, Angle: 0}
	e := eyes(h, 20)
	if types.Distance(e[0], types.Point{Y: 18}) > 1e-9 || types.Distance(e[1], types.Point{Y: -18}) > 1e-9 {
		t.Errorf("eyes = %v", e)
	}

	ant := antennas(h, 20, 0, 0)
	if types.Distance(ant[0][0], types.Point{Y: 20}) > 1e-9 {
		t.Errorf("left antenna base = %v", ant[0][0])
	}
	tip := types.FromAngle(0.35, 90)
	if types.Distance(ant[0][1], tip) > 1e-9 {
		t.Errorf("left antenna tip = %v, want %v", ant[0][1], tip)
	}

	leaned := antennas(h, 20, 0, 0.2)
	if types.Distance(leaned[1][1], types.FromAngle(-0.15, 90)) > 1e-9 {
		t.Errorf("lean not applied to right antenna: %v", leaned[1][1])
	}
}
