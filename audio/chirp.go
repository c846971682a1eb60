// Package audio plays a short tone whenever the centipede eats.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chirpDuration = 60 * time.Millisecond
	chirpVolume   = -1.5 // log2 gain

	basePitch = 440.0 // Hz at hue 0, one octave up at hue 360
)

// Chirper mixes chirps into the speaker. A Chirper that failed to
// initialise stays silent.
type Chirper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewChirper() *Chirper {
	return &Chirper{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (c *Chirper) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Chirp queues a tone pitched by the food hue.
func (c *Chirper) Chirp(hue float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}
	tone, err := Tone(sampleRate, PitchForHue(hue), chirpDuration, chirpVolume)
	if err != nil {
		return err
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
	return nil
}

func (c *Chirper) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Tone is a sine of freq Hz lasting d, scaled by 2^volume.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0f Hz", freq)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// PitchForHue maps a hue in degrees onto one octave above basePitch.
func PitchForHue(hue float64) float64 {
	h := hue
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return basePitch + h/360*basePitch
}
