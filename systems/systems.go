package systems

import (
	"math/rand"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithRunningCheck wraps a system so it only runs while a run is in progress.
// The check happens per system, so a death earlier in the frame stops the rest.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		sim, ok := GetSimulation(ecs.World)
		if !ok || !sim.Running {
			return
		}
		system(ecs)
	}
}

// GetSimulation returns the run singleton
func GetSimulation(w donburi.World) (*components.SimulationData, bool) {
	entry, ok := components.Simulation.First(w)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}

// getRNG returns the run's random source
func getRNG(w donburi.World) *rand.Rand {
	entry, ok := components.RNG.First(w)
	if !ok {
		return rand.New(rand.NewSource(1))
	}
	return components.RNG.Get(entry).Rand
}

// Emit queues an event for the presentation layers
func Emit(w donburi.World, id cfg.EventID) {
	entry, ok := components.Events.First(w)
	if !ok {
		return
	}
	events := components.Events.Get(entry)
	events.Pending = append(events.Pending, id)
}

// DrainEvents returns and clears the queued events
func DrainEvents(w donburi.World) []cfg.EventID {
	entry, ok := components.Events.First(w)
	if !ok {
		return nil
	}
	events := components.Events.Get(entry)
	if len(events.Pending) == 0 {
		return nil
	}
	out := make([]cfg.EventID, len(events.Pending))
	copy(out, events.Pending)
	events.Pending = events.Pending[:0]
	return out
}

// AdvanceFrame increments the frame counter. Runs first in a running frame.
func AdvanceFrame(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok {
		return
	}
	sim.Frame++
}

// getPlayer returns the player entry and its components
func getPlayer(w donburi.World) (*donburi.Entry, *components.PlayerData, *components.ObjectData, bool) {
	entry, ok := components.Player.First(w)
	if !ok {
		return nil, nil, nil, false
	}
	return entry, components.Player.Get(entry), components.Object.Get(entry), true
}
