package audio

import (
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns enabled audio at the default volumes
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundClone:   0.6,
			core.SoundPhantom: 0.6,
			core.SoundExpire:  0.4,
		},
	}
}

// volumeFor returns the effective volume of a sound, clamped to [0, 1]
func (c *AudioConfig) volumeFor(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	v *= c.MasterVolume
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
