package types

import "github.com/pkg/errors"

// ErrInvalidConfig is the cause of every error returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the creature, food and frame tuning.
type Config struct {
	// Body
	Segments      int     // initial segment count
	SegmentLength float64 // link length between neighbours
	BaseRadius    float64
	HeadExtra     float64 // added to BaseRadius for the head
	LegsEvery     int     // draw legs on every Nth segment

	// Colours (hue degrees)
	BodyHue float64
	LegHue  float64

	// Steering
	SteerGain float64 // velocity increment per tick toward the pointer
	MaxSpeed  float64 // px per tick

	// Food
	FoodCount     int
	FoodMargin    float64
	FoodRadiusMin float64
	FoodRadiusMax float64

	// Frame
	MaxFrameDelta float64 // seconds
}

// DefaultConfig returns the stock centipede.
func DefaultConfig() Config {
	return Config{
		Segments:      30,
		SegmentLength: 22,
		BaseRadius:    10,
		HeadExtra:     10,
		LegsEvery:     1,
		BodyHue:       120,
		LegHue:        30,
		SteerGain:     0.16,
		MaxSpeed:      7.2,
		FoodCount:     4,
		FoodMargin:    32,
		FoodRadiusMin: 6,
		FoodRadiusMax: 10,
		MaxFrameDelta: 0.033,
	}
}

// HeadRadius is the collision and drawing radius of the head
func (c Config) HeadRadius() float64 {
	return c.BaseRadius + c.HeadExtra
}

// TailRadius is the smallest radius any segment can have
func (c Config) TailRadius() float64 {
	return c.BaseRadius * TailRadiusRatio
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Segments < 1:
		return errors.Wrapf(ErrInvalidConfig, "segments must be at least 1, got %d", c.Segments)
	case c.SegmentLength <= 0:
		return errors.Wrapf(ErrInvalidConfig, "segment length must be positive, got %g", c.SegmentLength)
	case c.BaseRadius <= 0:
		return errors.Wrapf(ErrInvalidConfig, "base radius must be positive, got %g", c.BaseRadius)
	case c.HeadExtra < 0:
		return errors.Wrapf(ErrInvalidConfig, "head extra must not be negative, got %g", c.HeadExtra)
	case c.LegsEvery < 1:
		return errors.Wrapf(ErrInvalidConfig, "legs every must be at least 1, got %d", c.LegsEvery)
	case c.SteerGain <= 0:
		return errors.Wrapf(ErrInvalidConfig, "steer gain must be positive, got %g", c.SteerGain)
	case c.MaxSpeed <= 0:
		return errors.Wrapf(ErrInvalidConfig, "max speed must be positive, got %g", c.MaxSpeed)
	case c.FoodCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "food count must not be negative, got %d", c.FoodCount)
	case c.FoodMargin < 0:
		return errors.Wrapf(ErrInvalidConfig, "food margin must not be negative, got %g", c.FoodMargin)
	case c.FoodRadiusMin <= 0:
		return errors.Wrapf(ErrInvalidConfig, "food radius min must be positive, got %g", c.FoodRadiusMin)
	case c.FoodRadiusMax < c.FoodRadiusMin:
		return errors.Wrapf(ErrInvalidConfig, "food radius range [%g, %g] is empty", c.FoodRadiusMin, c.FoodRadiusMax)
	case c.MaxFrameDelta <= 0:
		return errors.Wrapf(ErrInvalidConfig, "max frame delta must be positive, got %g", c.MaxFrameDelta)
	}
	return nil
}
