package factory

import (
	"math/rand"

	"github.com/automoto/cosmicdash/archetypes"
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/yohamta/donburi"
)

// CreateSimulation creates the run singleton with default state: mode A,
// score zero, initial speed and no pickup history.
func CreateSimulation(w donburi.World, runID string, width, height float64, highScore int, rng *rand.Rand) *donburi.Entry {
	sim := archetypes.Simulation.Spawn(w)
	components.Simulation.SetValue(sim, components.SimulationData{
		RunID:     runID,
		Mode:      cfg.ModeFlap,
		Speed:     cfg.Speed.Initial,
		HighScore: highScore,
		Width:     width,
		Height:    height,
	})
	components.RNG.SetValue(sim, components.RNGData{Rand: rng})
	return sim
}

// CreateStarfield creates the (unseeded) background singleton carrying over
// any stars from a previous world
func CreateStarfield(w donburi.World, prev components.StarfieldData) *donburi.Entry {
	sf := archetypes.Starfield.Spawn(w)
	components.Starfield.SetValue(sf, prev)
	return sf
}
