package config

// EventID represents something the simulation reports to the presentation layers
type EventID int

const (
	EventNone EventID = iota
	EventStart
	EventJump
	EventFlip
	EventScore
	EventModeSwitch
	EventDeath
	EventNewHighScore
)

func (e EventID) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventJump:
		return "jump"
	case EventFlip:
		return "flip"
	case EventScore:
		return "score"
	case EventModeSwitch:
		return "mode switch"
	case EventDeath:
		return "death"
	case EventNewHighScore:
		return "new high score"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64
	// VolumeMultipliers scales individual effects relative to Volume
	VolumeMultipliers map[EventID]float64
}

// Audio is the global audio configuration
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     0.4,
		VolumeMultipliers: map[EventID]float64{
			EventScore: 0.5,
			EventDeath: 1.2,
		},
	}
}
