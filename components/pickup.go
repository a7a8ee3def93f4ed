package components

import "github.com/yohamta/donburi"

// PickupData is the mode switch token. At most one exists at a time.
type PickupData struct {
	Angle float64
}

var Pickup = donburi.NewComponentType[PickupData]()
