package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
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
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateCloneSound generates a short square blip for a clone spawn
func CreateCloneSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(660.0, parameter.CloneSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.CloneSoundDuration, parameter.CloneSoundAttack, parameter.CloneSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(core.SoundClone))
}

// CreatePhantomSound generates a rising two-note chime for a phantom spawn
func CreatePhantomSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A5
	n1 := NewOscillator(659.25, parameter.PhantomSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.PhantomSoundNote1Duration, parameter.PhantomSoundAttack, parameter.PhantomSoundNote1Release, rate)

	n2 := NewOscillator(880.0, parameter.PhantomSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.PhantomSoundNote2Duration, parameter.PhantomSoundAttack, parameter.PhantomSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volumeFor(core.SoundPhantom))
}

// CreateExpireSound generates a soft noise swell for an echo disappearing
func CreateExpireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ExpireSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ExpireSoundDuration, parameter.ExpireSoundAttack, parameter.ExpireSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(core.SoundExpire))
}

// GetSoundEffect returns the streamer for st, or nil for unknown types
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case core.SoundClone:
		return CreateCloneSound(cfg)
	case core.SoundPhantom:
		return CreatePhantomSound(cfg)
	case core.SoundExpire:
		return CreateExpireSound(cfg)
	default:
		return nil
	}
}
