package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, drawn in ascending order
const (
	// LayerWorld is the background and every entity, offset by screen shake
	LayerWorld ecs.LayerID = iota
	// LayerHUD is drawn unshaken on top of the world
	LayerHUD
)
