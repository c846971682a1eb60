package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, err := Tone(rate, 440, 60*time.Millisecond, -1)
	if err != nil {
		t.Fatal(err)
	}

	want := rate.N(60 * time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := tone.Stream(buf)
		for _, s := range buf[:n] {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	// volume -1 halves the amplitude
	if peak > 0.5+1e-9 || peak < 0.4 {
		t.Errorf("peak amplitude %v, want about 0.5", peak)
	}
}

func TestToneAboveNyquist(t *testing.T) {
	if _, err := Tone(beep.SampleRate(8000), 5000, time.Millisecond, 0); err == nil {
		t.Error("expected an error for a tone above half the sample rate")
	}
}

func TestPitchForHue(t *testing.T) {
	tests := []struct {
		hue, want float64
	}{
		{0, 440},
		{180, 660},
		{359, 440 + 359.0/360*440},
		{360, 440},
		{-90, 770},
	}
	for _, tt := range tests {
		if got := PitchForHue(tt.hue); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PitchForHue(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestChirperWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialised chirper panicked: %v", r)
		}
	}()

	c := NewChirper()
	if err := c.Chirp(120); err != nil {
		t.Errorf("Chirp() before Initialize = %v", err)
	}
	c.Close()
}

func TestChirperInitialize(t *testing.T) {
	c := NewChirper()
	if err := c.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer c.Close()

	if err := c.Initialize(); err != nil {
		t.Errorf("second Initialize() = %v", err)
	}
	if err := c.Chirp(200); err != nil {
		t.Errorf("Chirp() = %v", err)
	}
}
