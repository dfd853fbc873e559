package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const defaultSampleRate = 44100

// Config holds playback settings.
type Config struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int
}

func (c Config) rate() beep.SampleRate {
	if c.SampleRate <= 0 {
		return beep.SampleRate(defaultSampleRate)
	}
	return beep.SampleRate(c.SampleRate)
}

// Player plays sound effects on the speaker. A disabled or closed player
// silently ignores Play, so callers never need to check.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer opens the speaker when cfg.Enabled is set. On error the
// returned player is usable but silent.
func NewPlayer(cfg Config) (*Player, error) {
	p := &Player{cfg: cfg, mixer: &beep.Mixer{}}
	if !cfg.Enabled {
		return p, nil
	}

	rate := cfg.rate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return p, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Enabled reports whether sounds are actually played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts a sound effect without blocking.
func (p *Player) Play(sound SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := GetSoundEffect(sound, p.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
