package systems

import (
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/yohamta/donburi"
)

// KillPlayer ends the run. It stops the simulation, shakes the screen, bursts
// the player into particles and folds the score into the high score.
// Calling it on a finished run is a no-op.
func KillPlayer(w donburi.World) {
	sim, ok := GetSimulation(w)
	if !ok || !sim.Running {
		return
	}

	sim.Running = false
	sim.GameOver = true
	sim.Shake = cfg.ScreenShake.DeathIntensity

	if _, _, obj, ok := getPlayer(w); ok {
		r := obj.Rect()
		factory.SpawnParticleBurst(w, r.CenterX(), r.CenterY(), cfg.Particles.DeathCount, cfg.Particles.DeathColors, getRNG(w))
	}

	if sim.Score > sim.HighScore {
		sim.HighScore = sim.Score
		sim.NewHighScore = true
		Emit(w, cfg.EventNewHighScore)
	}
	Emit(w, cfg.EventDeath)
}
