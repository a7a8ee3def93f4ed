package systems

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScoring awards a point the first frame a scoring obstacle's trailing
// edge is left of the player's leading edge
func UpdateScoring(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok {
		return
	}
	_, _, playerObj, ok := getPlayer(w)
	if !ok {
		return
	}

	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		if !obstacle.Scoring || obstacle.Passed {
			return
		}
		if components.Object.Get(e).Rect().Right() < playerObj.X {
			obstacle.Passed = true
			sim.Score++
			Emit(w, cfg.EventScore)
		}
	})
}
