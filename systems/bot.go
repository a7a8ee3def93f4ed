package systems

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/shared/gamemath"
	"github.com/automoto/cosmicdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBot drives the player when an autopilot is attached to the world.
// It only ever uses the primary action, the same control a human has.
func UpdateBot(ecs *ecs.ECS) {
	w := ecs.World
	entry, ok := components.Bot.First(w)
	if !ok {
		return
	}
	bot := components.Bot.Get(entry)
	if bot.Cooldown > 0 {
		bot.Cooldown--
		return
	}

	sim, ok := GetSimulation(w)
	if !ok {
		return
	}
	_, player, obj, ok := getPlayer(w)
	if !ok {
		return
	}

	settings := cfg.Bot.Difficulties[bot.Difficulty]
	ahead, box, found := nextObstacle(w, obj.Rect(), settings.LookAhead)

	var act bool
	switch sim.Mode {
	case cfg.ModeFlap:
		act = shouldFlap(w, sim, player, obj.Rect(), ahead, box, found, settings)
	case cfg.ModeFlip:
		act = shouldFlip(player, ahead, found)
	}

	if act {
		HandlePrimaryAction(w)
		bot.Actions++
		bot.Cooldown = settings.ReactionDelay
	}
}

// nextObstacle finds the closest scoring obstacle that has not yet cleared the
// player and starts within lookAhead of its leading edge
func nextObstacle(w donburi.World, player gamemath.Rect, lookAhead float64) (*components.ObstacleData, gamemath.Rect, bool) {
	var best *components.ObstacleData
	var box gamemath.Rect

	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		if !obstacle.Scoring {
			return
		}
		r := components.Object.Get(e).Rect()
		if r.Right() < player.X || r.X-player.Right() > lookAhead {
			return
		}
		if best == nil || r.X < box.X {
			best = obstacle
			box = r
		}
	})
	return best, box, best != nil
}

// shouldFlap aims the player's center at the middle of the next gap, or at the
// pickup or the screen center when no obstacle is close
func shouldFlap(w donburi.World, sim *components.SimulationData, player *components.PlayerData, r gamemath.Rect, ahead *components.ObstacleData, box gamemath.Rect, found bool, settings cfg.BotDifficultyConfig) bool {
	target := sim.Height / 2
	if found && ahead.Kind == components.ObstacleGapTop {
		target = box.Bottom() + cfg.Spawn.GapSize/2
	} else if e, ok := tags.Pickup.First(w); ok {
		target = components.Object.Get(e).Rect().CenterY()
	}

	// About to fall out of the bottom
	if r.Bottom()+player.VelocityY*2 >= sim.Height {
		return true
	}
	return r.CenterY() > target+settings.AimTolerance && player.VelocityY >= 0
}

// shouldFlip switches sides when the next block sits on the player's side
func shouldFlip(player *components.PlayerData, ahead *components.ObstacleData, found bool) bool {
	if !found {
		return false
	}
	onFloor := player.GravityDir > 0
	return (ahead.Kind == components.ObstacleFloor && onFloor) ||
		(ahead.Kind == components.ObstacleCeiling && !onFloor)
}
