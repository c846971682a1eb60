// Package desktop runs the scene in a raylib window.
package desktop

import (
	"context"
	"log"

	"centipede/game"
	"centipede/game/input"
	"centipede/game/types"
	"centipede/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Options struct {
	Width, Height int
	FPS           int
	Title         string
}

// Backend owns the window and an offscreen target that keeps the previous
// frames so the overlay leaves trails.
type Backend struct {
	target   rl.RenderTexture2D
	canvas   *canvas
	renderer *ui.Renderer
}

// Open creates the window. Only one Backend may be open at a time.
func Open(opts Options) *Backend {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))

	b := &Backend{
		canvas:   &canvas{},
		renderer: ui.NewRenderer(),
	}
	b.allocate()
	return b
}

func (b *Backend) Bounds() types.Bounds {
	return b.canvas.Size()
}

// Run steps and draws until the window closes (Escape or the close button)
// or ctx is done.
func (b *Backend) Run(ctx context.Context, g *game.Game, tracker *input.Tracker) error {
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		if rl.IsWindowResized() {
			rl.UnloadRenderTexture(b.target)
			b.allocate()
			g.Resize(b.Bounds())
			log.Printf("window resized to %dx%d", b.canvas.width, b.canvas.height)
		}

		m := rl.GetMousePosition()
		tracker.Set(types.Point{X: float64(m.X), Y: float64(m.Y)})

		g.Step(float64(rl.GetFrameTime()))

		rl.BeginTextureMode(b.target)
		b.renderer.Draw(b.canvas, g)
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		// render textures are stored upside down
		src := rl.NewRectangle(0, 0, float32(b.canvas.width), -float32(b.canvas.height))
		rl.DrawTextureRec(b.target.Texture, src, rl.NewVector2(0, 0), rl.White)
		rl.EndDrawing()
	}
	return nil
}

func (b *Backend) allocate() {
	b.canvas.width = int32(rl.GetScreenWidth())
	b.canvas.height = int32(rl.GetScreenHeight())
	b.target = rl.LoadRenderTexture(b.canvas.width, b.canvas.height)

	rl.BeginTextureMode(b.target)
	rl.ClearBackground(rl.Black)
	rl.EndTextureMode()
}

func (b *Backend) Close() {
	rl.UnloadRenderTexture(b.target)
	rl.CloseWindow()
}
