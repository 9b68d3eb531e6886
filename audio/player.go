package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/parameter"
	"go.uber.org/zap"
)

// Player is the cue sink used by gameplay code
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioEngine plays cues through the system speaker via a beep mixer
// A device that fails to open leaves the engine running in silent mode
type AudioEngine struct {
	config *AudioConfig
	logger *zap.Logger
	mixer  *beep.Mixer

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64

	mu sync.Mutex
}

// NewAudioEngine creates an engine; nil cfg uses defaults
func NewAudioEngine(cfg *AudioConfig, logger *zap.Logger) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ae := &AudioEngine{
		config: cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start opens the speaker; device failure is logged and playback continues silently
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	rate := beep.SampleRate(ae.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		ae.logger.Warn("audio device unavailable, continuing silently", zap.Error(err))
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return nil
	}

	speaker.Play(ae.mixer)
	ae.running.Store(true)
	ae.logger.Debug("audio started", zap.Int("sample_rate", ae.config.SampleRate))
	return nil
}

// Stop clears queued cues and releases the device
func (ae *AudioEngine) Stop() error {
	if !ae.running.CompareAndSwap(true, false) {
		return nil
	}
	if ae.silentMode.Load() {
		return nil
	}
	speaker.Lock()
	ae.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// Name identifies the engine to the service hub
func (ae *AudioEngine) Name() string { return "audio" }

// Dependencies is empty; audio starts independently of the terminal
func (ae *AudioEngine) Dependencies() []string { return nil }

// Play queues a cue; returns false when it was dropped
func (ae *AudioEngine) Play(st core.SoundType) bool {
	if !ae.running.Load() || ae.muted.Load() || ae.silentMode.Load() {
		ae.dropped.Add(1)
		return false
	}

	ae.mu.Lock()
	s := GetSoundEffect(st, ae.config)
	ae.mu.Unlock()
	if s == nil {
		ae.dropped.Add(1)
		return false
	}

	speaker.Lock()
	ae.mixer.Add(s)
	speaker.Unlock()
	ae.played.Add(1)
	return true
}

// ToggleMute flips mute, returns true if sound is now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsRunning returns true once started, including silent mode
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// IsSilent reports whether the device could not be opened
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (ae *AudioEngine) SetVolume(vol float64) {
	vol = min(max(vol, 0), 1)
	ae.mu.Lock()
	ae.config.MasterVolume = vol
	ae.mu.Unlock()
}

// GetStats returns played and dropped cue counts
func (ae *AudioEngine) GetStats() (played, dropped uint64) {
	return ae.played.Load(), ae.dropped.Load()
}

// NoopPlayer discards every cue; used with --mute and in tests
type NoopPlayer struct {
	muted atomic.Bool
}

func (p *NoopPlayer) Play(core.SoundType) bool { return false }

func (p *NoopPlayer) ToggleMute() bool {
	newMute := !p.muted.Load()
	p.muted.Store(newMute)
	return !newMute
}

func (p *NoopPlayer) IsMuted() bool   { return p.muted.Load() }
func (p *NoopPlayer) IsRunning() bool { return false }
