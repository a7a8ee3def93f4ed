package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Pickup   = donburi.NewTag().SetName("Pickup")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for collision queries
const (
	ResolvPlayer   = "player"
	ResolvObstacle = "obstacle"
	ResolvPickup   = "pickup"
)
