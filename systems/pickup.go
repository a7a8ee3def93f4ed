package systems

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/shared/gamemath"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/automoto/cosmicdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects the pickup on contact and discards it once it has
// scrolled off the left edge
func UpdatePickups(ecs *ecs.ECS) {
	w := ecs.World
	_, _, playerObj, ok := getPlayer(w)
	if !ok {
		return
	}

	var collected, missed bool
	tags.Pickup.Each(w, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		switch {
		case gamemath.Overlaps(playerObj.Rect(), r, 0):
			collected = true
		case r.Right() < 0:
			missed = true
		}
	})

	if collected {
		SwitchMode(w)
		return
	}
	if missed {
		removePickups(w)
	}
}

// SwitchMode toggles between the two modes. The player's motion is reset,
// the speed goes up and on-screen obstacles are cleared.
func SwitchMode(w donburi.World) {
	sim, ok := GetSimulation(w)
	if !ok {
		return
	}

	sim.Mode = sim.Mode.Other()
	sim.Shake += cfg.ScreenShake.SwitchJolt
	sim.Speed += cfg.Speed.SwitchIncrement
	sim.Switches++

	if _, player, obj, ok := getPlayer(w); ok {
		player.VelocityY = 0
		player.GravityDir = 1
		player.Rotation = 0
		r := obj.Rect()
		factory.SpawnParticleBurst(w, r.CenterX(), r.CenterY(), cfg.Particles.SwitchCount, cfg.Particles.SwitchColors, getRNG(w))
	}

	clearObstaclesBefore(w, sim.Width*cfg.Spawn.SwitchClearRatio)
	removePickups(w)
	Emit(w, cfg.EventModeSwitch)
}

