package core

// SoundEvent identifies a sound effect a game wants played.
// Games emit events in StepResult; they never touch audio devices themselves.
type SoundEvent int

const (
	SoundJump    SoundEvent = iota // actor left the ground
	SoundPickup                    // resource or pellet collected
	SoundDrop                      // bridge tile placed
	SoundFall                      // actor fell into a gap
	SoundPowerup                   // power-up collected
	SoundSuccess                   // level completed
)

// String returns a stable name for the sound event.
func (e SoundEvent) String() string {
	switch e {
	case SoundJump:
		return "jump"
	case SoundPickup:
		return "pickup"
	case SoundDrop:
		return "drop"
	case SoundFall:
		return "fall"
	case SoundPowerup:
		return "powerup"
	case SoundSuccess:
		return "success"
	default:
		return "unknown"
	}
}
