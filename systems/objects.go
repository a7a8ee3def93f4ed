package systems

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/automoto/cosmicdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll moves every obstacle and the pickup left by the run speed
func UpdateScroll(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok {
		return
	}

	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.X -= sim.Speed
		obj.Update()
	})

	tags.Pickup.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.X -= sim.Speed
		obj.Update()
		components.Pickup.Get(e).Angle += cfg.Pickup.SpinSpeed
	})
}

// UpdateDespawn removes obstacles whose trailing edge has scrolled well past
// the left edge of the screen
func UpdateDespawn(ecs *ecs.ECS) {
	w := ecs.World
	var gone []*donburi.Entry
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		if components.Object.Get(e).Rect().Right() < -cfg.Spawn.DespawnMargin {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		factory.RemoveObject(w, e)
	}
}

// clearObstaclesBefore removes obstacles starting left of x. Used on a mode
// switch so the new mode's layouts are not mixed with the old ones on screen.
func clearObstaclesBefore(w donburi.World, x float64) {
	var gone []*donburi.Entry
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		if components.Object.Get(e).X < x {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		factory.RemoveObject(w, e)
	}
}

// removePickups removes any pickup in the world
func removePickups(w donburi.World) {
	var gone []*donburi.Entry
	tags.Pickup.Each(w, func(e *donburi.Entry) {
		gone = append(gone, e)
	})
	for _, e := range gone {
		factory.RemoveObject(w, e)
	}
}
