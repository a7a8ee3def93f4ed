package systems

import (
	"math"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles ages and moves every particle and removes the expired ones.
// Runs every frame, including after death, so bursts finish playing.
func UpdateParticles(ecs *ecs.ECS) {
	w := ecs.World
	var expired []*donburi.Entry

	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Life -= cfg.Particles.LifeDecrement
		p.X += p.VX
		p.Y += p.VY
		if p.Life <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		w.Remove(e.Entity())
	}
}

// UpdateScreenShake decays the shake magnitude toward zero
func UpdateScreenShake(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok {
		return
	}
	sim.Shake = gamemath.Decay(sim.Shake, cfg.ScreenShake.Decay, cfg.ScreenShake.Floor)
}

// UpdateStarfield scrolls the background stars at a fraction of the run speed
func UpdateStarfield(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok || !sim.Running {
		return
	}
	entry, ok := components.Starfield.First(w)
	if !ok {
		return
	}
	sf := components.Starfield.Get(entry)
	sf.Scroll += sim.Speed * cfg.Starfield.Parallax
}

// SeedStarfield scatters the stars over the viewport. Only the first call
// has an effect; later resizes keep the existing stars.
func SeedStarfield(w donburi.World, width, height float64) {
	entry, ok := components.Starfield.First(w)
	if !ok {
		return
	}
	sf := components.Starfield.Get(entry)
	if sf.Seeded {
		return
	}

	rng := getRNG(w)
	sf.Stars = make([]components.Star, cfg.Starfield.Count)
	for i := range sf.Stars {
		sf.Stars[i] = components.Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Size:  cfg.Starfield.MinSize + rng.Float64()*(cfg.Starfield.MaxSize-cfg.Starfield.MinSize),
			Phase: rng.Float64() * 2 * math.Pi,
		}
	}
	sf.Seeded = true
}
