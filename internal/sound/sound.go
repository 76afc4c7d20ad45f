// Package sound plays short effects for board events.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player is notified of board events.
type Player interface {
	Land()
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Land() {}
func (Nop) Close() {}

// Speaker plays effects through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker initialises the audio device. Callers should fall back to Nop
// when it fails.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Land plays the thud of a piece breaking apart.
func (s *Speaker) Land() {
	streamer, err := LandStreamer(sampleRate)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences all playing effects and releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// LandStreamer builds the landing effect: a short tone over a decaying
// rumble.
func LandStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, 220)
	if err != nil {
		return nil, err
	}
	n := sr.N(120 * time.Millisecond)
	return beep.Mix(scaled(beep.Take(n, tone), toneLevel), beep.Take(n, NewThud(sr))), nil
}

const toneLevel = 0.15

// scaled multiplies s by a linear level. A level of zero or less is silent.
func scaled(s beep.Streamer, level float64) beep.Streamer {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}

// Thud is an exponentially decaying low sine.
type Thud struct {
	sr  beep.SampleRate
	pos int
}

// NewThud creates a thud generator.
func NewThud(sr beep.SampleRate) *Thud { return &Thud{sr: sr} }

func (g *Thud) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.4 * math.Exp(-t*30) * math.Sin(2*math.Pi*70*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Thud) Err() error { return nil }
