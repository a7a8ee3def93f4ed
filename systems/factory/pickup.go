package factory

import (
	"github.com/automoto/cosmicdash/archetypes"
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePickup spawns the mode switch token off-screen to the right
func CreatePickup(w donburi.World, x, y float64) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(w)

	size := cfg.Pickup.Size
	obj := resolv.NewObject(x, y, size, size, tags.ResolvPickup)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = pickup

	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	components.Pickup.SetValue(pickup, components.PickupData{})
	addToSpace(w, obj)

	return pickup
}
