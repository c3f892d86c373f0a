package core

// Sound identifies a sound effect triggered by the simulation.
type Sound int

const (
	SoundLaunch Sound = iota
	SoundExplosion
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundLaunch:
		return "launch"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound effects. Play must not block the caller.
type SoundPlayer interface {
	Play(s Sound)
}
