package factory

import (
	"math/rand"

	"github.com/automoto/cosmicdash/archetypes"
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateObstacle spawns a single scrolling block
func CreateObstacle(w donburi.World, x, y, width, height float64, kind components.ObstacleKind, scoring bool, mode cfg.ModeID) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvObstacle)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = obstacle

	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Kind:    kind,
		Scoring: scoring,
		Color:   cfg.Modes[mode].ObstacleColor,
	})
	addToSpace(w, obj)

	return obstacle
}

// SpawnObstacleLayout spawns the active mode's layout just past the right edge.
// Mode A gets a gapped pair worth one point; mode B a single block flush to
// the floor or the ceiling.
func SpawnObstacleLayout(w donburi.World, mode cfg.ModeID, viewW, viewH float64, rng *rand.Rand) []*donburi.Entry {
	x := viewW
	width := cfg.Spawn.ObstacleWidth

	if mode == cfg.ModeFlap {
		span := viewH - cfg.Spawn.GapSize - 2*cfg.Spawn.GapMargin
		if span < 0 {
			span = 0
		}
		gapY := cfg.Spawn.GapMargin + rng.Float64()*span
		top := CreateObstacle(w, x, 0, width, gapY, components.ObstacleGapTop, true, mode)
		bottomY := gapY + cfg.Spawn.GapSize
		bottom := CreateObstacle(w, x, bottomY, width, viewH-bottomY, components.ObstacleGapBottom, false, mode)
		return []*donburi.Entry{top, bottom}
	}

	height := cfg.Spawn.BlockMinHeight + rng.Float64()*(cfg.Spawn.BlockMaxHeight-cfg.Spawn.BlockMinHeight)
	if rng.Intn(2) == 0 {
		return []*donburi.Entry{CreateObstacle(w, x, viewH-height, width, height, components.ObstacleFloor, true, mode)}
	}
	return []*donburi.Entry{CreateObstacle(w, x, 0, width, height, components.ObstacleCeiling, true, mode)}
}
