package main

import (
	"flag"
	"io"
	"strconv"
	"strings"
	"time"

	"centipede/game/types"

	"github.com/pkg/errors"
)

const seedEnv = "CENTIPEDE_SEED"

var backends = []string{"desktop", "ebiten", "terminal"}

type options struct {
	backend       string
	width, height int
	fps           int
	segments      int
	foods         int
	seed          uint64
	scale         float64
	sound         bool
	debug         bool
}

func parseOptions(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("centipede", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.backend, "backend", "desktop", "renderer: "+strings.Join(backends, ", "))
	fs.IntVar(&o.width, "width", 1280, "window width in pixels")
	fs.IntVar(&o.height, "height", 800, "window height in pixels")
	fs.IntVar(&o.fps, "fps", 60, "target frames per second")
	fs.IntVar(&o.segments, "segments", 30, "initial body segments")
	fs.IntVar(&o.foods, "foods", 4, "food items kept on screen")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (0 uses $"+seedEnv+" or the clock)")
	fs.Float64Var(&o.scale, "scale", 6, "terminal backend: world units per half-cell")
	fs.BoolVar(&o.sound, "sound", false, "chirp when food is eaten")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	known := false
	for _, b := range backends {
		known = known || b == o.backend
	}
	switch {
	case !known:
		return o, errors.Errorf("unknown backend %q", o.backend)
	case o.width <= 0 || o.height <= 0:
		return o, errors.Errorf("window size must be positive, got %dx%d", o.width, o.height)
	case o.fps <= 0:
		return o, errors.Errorf("fps must be positive, got %d", o.fps)
	case o.scale <= 0:
		return o, errors.Errorf("scale must be positive, got %g", o.scale)
	}
	return o, nil
}

// config applies the flags to the stock creature.
func (o options) config() types.Config {
	cfg := types.DefaultConfig()
	cfg.Segments = o.segments
	cfg.FoodCount = o.foods
	return cfg
}

// resolveSeed picks the flag seed, then the environment, then the clock,
// and reports which one it used.
func resolveSeed(flagSeed uint64, getenv func(string) string, now func() time.Time) (uint64, string, error) {
	if flagSeed != 0 {
		return flagSeed, "flag", nil
	}
	if v := strings.TrimSpace(getenv(seedEnv)); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, "", errors.Wrapf(err, "parse %s", seedEnv)
		}
		return seed, "env", nil
	}
	return uint64(now().UnixNano()), "clock", nil
}
