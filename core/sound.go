package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundClone   SoundType = iota // Static duplicate spawned
	SoundPhantom                  // Replay duplicate spawned
	SoundExpire                   // Echo disposed
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundClone:
		return "clone"
	case SoundPhantom:
		return "phantom"
	case SoundExpire:
		return "expire"
	default:
		return "unknown"
	}
}
