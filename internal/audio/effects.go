// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundChomp SoundType = iota // pellet eaten
	SoundDeath                  // caught by an adversary
)

func (s SoundType) String() string {
	switch s {
	case SoundChomp:
		return "chomp"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

const (
	chompNoteDuration = 45 * time.Millisecond
	chompAttack       = 3 * time.Millisecond
	chompRelease      = 20 * time.Millisecond

	deathNoteDuration = 90 * time.Millisecond
	deathAttack       = 5 * time.Millisecond
	deathRelease      = 40 * time.Millisecond
	deathSteps        = 8
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of freq Hz lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or negative volume is silent since
// effects.Volume works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateChompSound returns the two-note "waka" played when a pellet is eaten.
func CreateChompSound(cfg Config) beep.Streamer {
	rate := cfg.rate()
	seq := beep.Seq(
		note(392.0, WaveSquare, chompNoteDuration, chompAttack, chompRelease, rate),
		note(523.25, WaveSquare, chompNoteDuration, chompAttack, chompRelease, rate),
	)
	// Square waves are loud; keep them under the death jingle
	return newVolume(seq, 0.4*cfg.Volume)
}

// CreateDeathSound returns a descending jingle for game over.
func CreateDeathSound(cfg Config) beep.Streamer {
	rate := cfg.rate()
	notes := make([]beep.Streamer, 0, deathSteps)
	freq := 880.0
	for i := 0; i < deathSteps; i++ {
		notes = append(notes, note(freq, WaveSine, deathNoteDuration, deathAttack, deathRelease, rate))
		freq *= 0.85
	}
	return newVolume(beep.Seq(notes...), cfg.Volume)
}

// GetSoundEffect returns a fresh streamer for the given sound, or nil for
// an unknown type.
func GetSoundEffect(sound SoundType, cfg Config) beep.Streamer {
	switch sound {
	case SoundChomp:
		return CreateChompSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	default:
		return nil
	}
}
