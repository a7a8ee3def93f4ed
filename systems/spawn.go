package systems

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner spawns the active mode's obstacle layout on a fixed frame
// cadence and offers the mode switch pickup once the score allows it.
func UpdateSpawner(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok {
		return
	}
	rng := getRNG(w)

	if cfg.Spawn.ObstacleInterval > 0 && sim.Frame%cfg.Spawn.ObstacleInterval == 0 {
		factory.SpawnObstacleLayout(w, sim.Mode, sim.Width, sim.Height, rng)
	}

	if shouldSpawnPickup(w, sim) {
		size := cfg.Pickup.Size
		minY := sim.Height * 0.25
		maxY := sim.Height*0.75 - size
		y := minY
		if maxY > minY {
			y += rng.Float64() * (maxY - minY)
		}
		factory.CreatePickup(w, sim.Width, y)
	}
}

// shouldSpawnPickup reports whether a pickup may appear this frame: the score
// is a positive multiple of the threshold, the frame is on the pickup cadence
// and no pickup is on screen.
func shouldSpawnPickup(w donburi.World, sim *components.SimulationData) bool {
	if sim.Score <= 0 || cfg.Pickup.ScoreThreshold <= 0 || cfg.Pickup.Cadence <= 0 {
		return false
	}
	if sim.Score%cfg.Pickup.ScoreThreshold != 0 {
		return false
	}
	if sim.Frame%cfg.Pickup.Cadence != 0 {
		return false
	}
	_, exists := components.Pickup.First(w)
	return !exists
}
