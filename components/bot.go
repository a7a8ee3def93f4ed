package components

import (
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/yohamta/donburi"
)

// BotData drives the player during headless simulations
type BotData struct {
	Difficulty cfg.BotDifficulty
	Cooldown   int // frames until the next action is allowed
	Actions    int
}

var Bot = donburi.NewComponentType[BotData]()
