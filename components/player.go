package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	VelocityY  float64
	GravityDir float64 // +1 pulls toward the floor, -1 toward the ceiling
	Rotation   float64 // cosmetic only
}

var Player = donburi.NewComponentType[PlayerData]()
