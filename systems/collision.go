package systems

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/shared/gamemath"
	"github.com/automoto/cosmicdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions ends the run when the player touches an obstacle. The
// collision space narrows the candidates and the exact test shrinks both
// boxes by the forgiveness margin, so grazing contact is survived.
func UpdateCollisions(ecs *ecs.ECS) {
	w := ecs.World
	_, _, obj, ok := getPlayer(w)
	if !ok {
		return
	}

	player := obj.Rect()
	for _, other := range nearby(obj.Object, tags.ResolvObstacle) {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if gamemath.Overlaps(player, components.Object.Get(entry).Rect(), cfg.Collision.Margin) {
			KillPlayer(w)
			return
		}
	}
}

// nearby returns the objects sharing a collision cell with obj
func nearby(obj *resolv.Object, tag string) []*resolv.Object {
	if obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tag)
}
