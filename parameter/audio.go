package parameter

import "time"

// Audio hardware
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.5
)

// Clone sound
const (
	CloneSoundDuration = 120 * time.Millisecond
	CloneSoundAttack   = 5 * time.Millisecond
	CloneSoundRelease  = 80 * time.Millisecond
)

// Phantom sound
const (
	PhantomSoundNote1Duration = 90 * time.Millisecond
	PhantomSoundNote2Duration = 180 * time.Millisecond
	PhantomSoundAttack        = 5 * time.Millisecond
	PhantomSoundNote1Release  = 40 * time.Millisecond
	PhantomSoundNote2Release  = 140 * time.Millisecond
)

// Expire sound
const (
	ExpireSoundDuration = 250 * time.Millisecond
	ExpireSoundAttack   = 100 * time.Millisecond
	ExpireSoundRelease  = 150 * time.Millisecond
)
