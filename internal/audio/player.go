// Package audio plays the short tone cues used for game feedback.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.4
)

// Player plays sine tones through the system speaker. A Player whose Init
// failed stays usable: Tone reports false and the caller falls back to a
// visual or terminal bell cue.
type Player struct {
	mu     sync.Mutex
	ready  bool
	volume float64
}

// NewPlayer creates a player that is silent until Init succeeds.
func NewPlayer() *Player {
	return &Player{volume: defaultVolume}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Tone starts a tone of the given frequency and length without waiting for
// it to finish. It reports whether anything was played.
func (p *Player) Tone(frequency int, d time.Duration) bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return false
	}
	s, err := toneStreamer(sampleRate, frequency, d, p.volume)
	if err != nil {
		return false
	}
	speaker.Play(s)
	return true
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// toneStreamer builds a finite sine tone at the given volume (0..1).
func toneStreamer(rate beep.SampleRate, frequency int, d time.Duration, volume float64) (beep.Streamer, error) {
	if frequency <= 0 || d <= 0 {
		return nil, fmt.Errorf("audio: invalid tone %dHz for %s", frequency, d)
	}
	sine, err := generators.SineTone(rate, float64(frequency))
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	tone := beep.Take(rate.N(d), sine)

	// math.Log2(0) is -Inf, so zero volume is expressed as silence
	if volume <= 0 {
		return &effects.Volume{Streamer: tone, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(volume)}, nil
}
