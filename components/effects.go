package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is a visual-only point. It never takes part in collisions.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 at spawn, removed once it reaches 0
	Size   float64
	Color  color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
