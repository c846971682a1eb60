// Package terminal draws the scene with half-block characters and steers
// the creature with terminal mouse reporting.
package terminal

import (
	"context"
	"log"
	"time"

	"centipede/game"
	"centipede/game/input"
	"centipede/game/types"
	"centipede/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

type Options struct {
	Scale float64 // world units per pixel
	FPS   int
}

// Backend owns the tcell screen for the lifetime of a session.
type Backend struct {
	screen   tcell.Screen
	raster   *Raster
	renderer *ui.Renderer
	opts     Options
}

// New opens the controlling terminal.
func New(opts Options) (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	return NewWithScreen(screen, opts), nil
}

// NewWithScreen wraps an already initialised screen.
func NewWithScreen(screen tcell.Screen, opts Options) *Backend {
	if opts.Scale <= 0 {
		opts.Scale = 6
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	return &Backend{
		screen:   screen,
		raster:   NewRaster(cols, rows, opts.Scale),
		renderer: ui.NewRenderer(),
		opts:     opts,
	}
}

func (b *Backend) Bounds() types.Bounds {
	return b.raster.Size()
}

// Run drives frames until a quit key, ctx is done or the screen closes.
// Mouse motion is written to tracker from the polling goroutine.
func (b *Backend) Run(ctx context.Context, g *game.Game, tracker *input.Tracker) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	go b.poll(tracker, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(b.opts.FPS))
	defer ticker.Stop()
	clock := game.NewFrameClock(time.Now)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventResize:
				b.screen.Sync()
				cols, rows := b.screen.Size()
				b.raster.Resize(cols, rows)
				g.Resize(b.raster.Size())
				log.Printf("terminal resized to %dx%d", cols, rows)
			}

		case <-ticker.C:
			g.Step(clock.Tick())
			b.renderer.Draw(b.raster, g)
			b.raster.Present(b.screen)
			b.screen.Show()
		}
	}
}

// poll reads screen events until the screen is finalised. Pointer moves
// go straight to the tracker; everything else is forwarded.
func (b *Backend) poll(tracker *input.Tracker, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		if m, ok := ev.(*tcell.EventMouse); ok {
			tracker.Set(b.raster.CellToWorld(m.Position()))
			continue
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	r := ev.Rune()
	return ev.Key() == tcell.KeyRune && (r == 'q' || r == 'Q')
}

// Close restores the terminal.
func (b *Backend) Close() {
	b.screen.Fini()
}
