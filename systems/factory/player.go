package factory

import (
	"github.com/automoto/cosmicdash/archetypes"
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player at the fixed start column, vertically centered
func CreatePlayer(w donburi.World, height float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	size := cfg.Player.Size
	obj := resolv.NewObject(cfg.Player.StartX, height/2-size/2, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		VelocityY:  0,
		GravityDir: 1,
	})
	addToSpace(w, obj)

	return player
}

// CreateBot attaches the autopilot to the world
func CreateBot(w donburi.World, difficulty cfg.BotDifficulty) *donburi.Entry {
	bot := archetypes.Bot.Spawn(w)
	components.Bot.SetValue(bot, components.BotData{Difficulty: difficulty})
	return bot
}
