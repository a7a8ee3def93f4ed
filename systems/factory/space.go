package factory

import (
	"github.com/automoto/cosmicdash/archetypes"
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the collision space for a viewport. The space extends
// past the right edge so freshly spawned obstacles are registered too.
func CreateSpace(w donburi.World, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, newSpace(width, height))
	return space
}

// ResizeSpace replaces the collision space and re-registers every object in it
func ResizeSpace(w donburi.World, width, height float64) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		CreateSpace(w, width, height)
		return
	}
	components.Space.Set(spaceEntry, newSpace(width, height))
	space := components.Space.Get(spaceEntry)

	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Space = nil
		space.Add(obj.Object)
	})
}

func newSpace(width, height float64) *resolv.Space {
	cell := cfg.Collision.CellSize
	return resolv.NewSpace(int(width)+cfg.Collision.SpacePad, int(height), cell, cell)
}

// addToSpace registers an object with the world's collision space, if any
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// RemoveObject removes an entity and its collision object
func RemoveObject(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
