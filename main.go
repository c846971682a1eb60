package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"centipede/audio"
	"centipede/game"
	"centipede/game/entity"
	"centipede/game/input"
	"centipede/game/types"
	"centipede/ui/desktop"
	"centipede/ui/ebitenview"
	"centipede/ui/terminal"

	"github.com/pkg/errors"
)

const title = "Centipede"

// backend is a window or terminal that can drive the game loop.
type backend interface {
	Bounds() types.Bounds
	Run(ctx context.Context, g *game.Game, tracker *input.Tracker) error
	Close()
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "centipede: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	err = run(opts)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "centipede: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	seed, source, err := resolveSeed(opts.seed, os.Getenv, time.Now)
	if err != nil {
		return err
	}
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := openBackend(opts)
	if err != nil {
		return err
	}
	defer b.Close()
	defer func() {
		if r := recover(); r != nil {
			b.Close()
			fmt.Fprintf(os.Stderr, "centipede crashed: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	tracker := input.NewTracker(b.Bounds().Center())
	g, err := game.New(cfg, b.Bounds(), tracker, types.NewRand(seed))
	if err != nil {
		return err
	}
	log.Printf("session %s: backend %s, bounds %.0fx%.0f, seed %d (%s), %+v",
		g.UUID, opts.backend, b.Bounds().Width, b.Bounds().Height, seed, source, cfg)

	if opts.sound {
		chirper := audio.NewChirper()
		if err := chirper.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer chirper.Close()
			g.OnEat(func(f entity.Food) {
				if err := chirper.Chirp(f.Hue); err != nil {
					log.Printf("chirp: %v", err)
				}
			})
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = b.Run(ctx, g, tracker)
	log.Printf("%s, ran %s", g.Stats(), time.Since(g.StartTime).Round(time.Millisecond))
	return err
}

func openBackend(opts options) (backend, error) {
	switch opts.backend {
	case "desktop":
		return desktop.Open(desktop.Options{Width: opts.width, Height: opts.height, FPS: opts.fps, Title: title}), nil
	case "ebiten":
		return ebitenview.New(ebitenview.Options{Width: opts.width, Height: opts.height, FPS: opts.fps, Title: title}), nil
	case "terminal":
		b, err := terminal.New(terminal.Options{Scale: opts.scale, FPS: opts.fps})
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, errors.Errorf("unknown backend %q", opts.backend)
}
