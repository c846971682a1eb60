// Package ebitenview runs the scene with ebiten.
package ebitenview

import (
	"context"
	"image/color"
	"log"
	"time"

	"centipede/game"
	"centipede/game/input"
	"centipede/game/types"
	"centipede/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
)

const (
	stripStep = 1.0
	ringStep  = 1.5
)

type Options struct {
	Width, Height int
	FPS           int
	Title         string
}

type Backend struct {
	opts Options
}

func New(opts Options) *Backend {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.FPS)
	return &Backend{opts: opts}
}

func (b *Backend) Bounds() types.Bounds {
	return types.Bounds{Width: float64(b.opts.Width), Height: float64(b.opts.Height)}
}

// Run blocks in ebiten's loop until the window closes, Escape is pressed
// or ctx is done.
func (b *Backend) Run(ctx context.Context, g *game.Game, tracker *input.Tracker) error {
	v := &view{
		ctx:      ctx,
		game:     g,
		tracker:  tracker,
		renderer: ui.NewRenderer(),
		clock:    game.NewFrameClock(time.Now),
	}
	if err := ebiten.RunGame(v); err != nil {
		return errors.Wrap(err, "ebiten")
	}
	return nil
}

func (b *Backend) Close() {}

// view implements ebiten.Game.
type view struct {
	ctx      context.Context
	game     *game.Game
	tracker  *input.Tracker
	renderer *ui.Renderer
	clock    *game.FrameClock

	// offscreen keeps earlier frames for the trail overlay
	offscreen *ebiten.Image
	canvas    canvas
}

func (v *view) Update() error {
	if v.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	v.tracker.Set(types.Point{X: float64(x), Y: float64(y)})
	v.game.Step(v.clock.Tick())
	return nil
}

func (v *view) Draw(screen *ebiten.Image) {
	if v.offscreen == nil {
		return
	}
	v.renderer.Draw(&v.canvas, v.game)
	screen.DrawImage(v.offscreen, nil)
}

func (v *view) Layout(outsideWidth, outsideHeight int) (int, int) {
	if v.offscreen == nil || v.offscreen.Bounds().Dx() != outsideWidth || v.offscreen.Bounds().Dy() != outsideHeight {
		v.offscreen = ebiten.NewImage(outsideWidth, outsideHeight)
		v.offscreen.Fill(color.Black)
		v.canvas = canvas{dst: v.offscreen}
		v.game.Resize(v.canvas.Size())
		log.Printf("ebiten layout %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// canvas is a ui.Canvas over an ebiten image.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) Size() types.Bounds {
	b := c.dst.Bounds()
	return types.Bounds{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *canvas) Overlay(col color.NRGBA) {
	b := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), col, false)
}

func (c *canvas) FillCircle(center types.Point, r float64, p ui.Paint) {
	if s, ok := p.(ui.Solid); ok {
		vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(r), color.NRGBA(s), true)
		return
	}
	for _, ring := range ui.CircleRings(center, r, p, ringStep) {
		vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(ring.Radius), float32(ring.Width), ring.Color, true)
	}
}

func (c *canvas) FillCapsule(a, b types.Point, r float64, p ui.Paint) {
	if s, ok := p.(ui.Solid); ok {
		col := color.NRGBA(s)
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(2*r), col, true)
		vector.DrawFilledCircle(c.dst, float32(a.X), float32(a.Y), float32(r), col, true)
		vector.DrawFilledCircle(c.dst, float32(b.X), float32(b.Y), float32(r), col, true)
		return
	}
	for _, s := range ui.CapsuleStrips(a, b, r, p, stripStep) {
		vector.StrokeLine(c.dst, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), stripStep*1.5, s.Color, true)
	}
}

func (c *canvas) StrokePolyline(pts []types.Point, width float64, col color.NRGBA) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, true)
	}
	for _, p := range pts {
		vector.DrawFilledCircle(c.dst, float32(p.X), float32(p.Y), float32(width/2), col, true)
	}
}
