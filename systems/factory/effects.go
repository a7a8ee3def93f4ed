package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/cosmicdash/archetypes"
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/yohamta/donburi"
)

// SpawnParticleBurst emits count particles radiating from (x, y)
func SpawnParticleBurst(w donburi.World, x, y float64, count int, colors []color.RGBA, rng *rand.Rand) {
	if len(colors) == 0 {
		colors = []color.RGBA{cfg.White}
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64() * cfg.Particles.MaxSpeed

		p := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(p, components.ParticleData{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1.0,
			Size:  cfg.Particles.MinSize + rng.Float64()*(cfg.Particles.MaxSize-cfg.Particles.MinSize),
			Color: colors[rng.Intn(len(colors))],
		})
	}
}

// SpawnTrail emits a short puff behind the player, used on jump and flip
func SpawnTrail(w donburi.World, x, y float64, c color.RGBA, rng *rand.Rand) {
	for i := 0; i < cfg.Particles.JumpCount; i++ {
		p := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(p, components.ParticleData{
			X:     x,
			Y:     y,
			VX:    -1 - rng.Float64()*2,
			VY:    (rng.Float64() - 0.5) * 2,
			Life:  1.0,
			Size:  cfg.Particles.MinSize,
			Color: c,
		})
	}
}
