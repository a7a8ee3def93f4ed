package config

// BotDifficulty affects how early and how precisely the autopilot reacts
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for the autopilot at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Frames between two control actions
	LookAhead     float64 // Horizontal distance at which obstacles are considered
	AimTolerance  float64 // Pixels the player may sit off the target before acting
}

// BotConfigData holds all autopilot configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration used by headless simulations
var Bot BotConfigData

// ParseBotDifficulty maps a CLI name to a difficulty, defaulting to normal
func ParseBotDifficulty(name string) BotDifficulty {
	switch name {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	}
	return BotDifficultyNormal
}

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 20, // sluggish, dies often
				LookAhead:     120.0,
				AimTolerance:  30.0,
			},
			BotDifficultyNormal: {
				ReactionDelay: 10,
				LookAhead:     200.0,
				AimTolerance:  15.0,
			},
			BotDifficultyHard: {
				ReactionDelay: 4,
				LookAhead:     280.0,
				AimTolerance:  6.0,
			},
		},
	}
}
