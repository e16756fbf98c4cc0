package core

// Event is a fire-and-forget notification for the audio collaborator.
type Event int

const (
	EventFired Event = iota
	EventExplosion
	EventShipDestroyed
	EventMusicStart
	EventMusicStop
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFired:
		return "fired"
	case EventExplosion:
		return "explosion"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventMusicStart:
		return "music_start"
	case EventMusicStop:
		return "music_stop"
	default:
		return "unknown"
	}
}
