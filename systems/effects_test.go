package systems

import (
	"math"
	"testing"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/yohamta/donburi"
)

func TestParticleLifeDecreasesUntilRemoved(t *testing.T) {
	w := newRunningWorld(t)
	factory.SpawnParticleBurst(w, 10, 10, 4, cfg.Particles.DeathColors, getRNG(w))

	prev := 1.0
	frames := 0
	for count(w, components.Particle) > 0 {
		step(w, UpdateParticles)
		frames++

		components.Particle.Each(w, func(e *donburi.Entry) {
			p := components.Particle.Get(e)
			if p.Life <= 0 {
				t.Errorf("Expected only live particles to remain, got life %v", p.Life)
			}
			if math.Abs(prev-cfg.Particles.LifeDecrement-p.Life) > 1e-9 {
				t.Errorf("Expected life %v, got %v", prev-cfg.Particles.LifeDecrement, p.Life)
			}
		})
		prev -= cfg.Particles.LifeDecrement

		if frames > 1000 {
			t.Fatal("Particles never expired")
		}
	}

	want := int(math.Round(1 / cfg.Particles.LifeDecrement))
	if frames < want || frames > want+1 {
		t.Errorf("Expected particles to live about %d frames, got %d", want, frames)
	}
}

func TestParticlesKeepAgingAfterDeath(t *testing.T) {
	w := newRunningWorld(t)
	KillPlayer(w)
	before := count(w, components.Particle)
	if before != cfg.Particles.DeathCount {
		t.Fatalf("Expected %d death particles, got %d", cfg.Particles.DeathCount, before)
	}

	step(w, UpdateParticles)

	components.Particle.Each(w, func(e *donburi.Entry) {
		if life := components.Particle.Get(e).Life; life >= 1 {
			t.Errorf("Expected particles to age while not running, got life %v", life)
		}
	})
}

func TestScreenShakeDecays(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)
	sim.Shake = 20

	step(w, UpdateScreenShake)
	if want := 20 * cfg.ScreenShake.Decay; sim.Shake != want {
		t.Errorf("Expected shake %v, got %v", want, sim.Shake)
	}

	for i := 0; i < 200; i++ {
		step(w, UpdateScreenShake)
	}
	if sim.Shake != 0 {
		t.Errorf("Expected shake to settle at 0, got %v", sim.Shake)
	}
}

func TestSeedStarfieldOnlyOnce(t *testing.T) {
	w := newRunningWorld(t)
	SeedStarfield(w, testWidth, testHeight)

	entry, _ := components.Starfield.First(w)
	sf := components.Starfield.Get(entry)
	if len(sf.Stars) != cfg.Starfield.Count {
		t.Fatalf("Expected %d stars, got %d", cfg.Starfield.Count, len(sf.Stars))
	}
	first := sf.Stars[0]

	SeedStarfield(w, testWidth*2, testHeight*2)
	if sf.Stars[0] != first {
		t.Errorf("Expected stars to be kept, got %+v instead of %+v", sf.Stars[0], first)
	}
}
