package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 800.0
	testHeight = 450.0
)

// newRunningWorld builds a world the way the engine does and starts the run
func newRunningWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, testWidth, testHeight)
	factory.CreateSimulation(w, "test-run", testWidth, testHeight, 0, rand.New(rand.NewSource(1)))
	factory.CreateStarfield(w, components.StarfieldData{})
	factory.CreatePlayer(w, testHeight)

	sim := mustSim(t, w)
	sim.Running = true
	return w
}

// step runs the given systems once, in order, against w
func step(w donburi.World, systems ...ecs.System) {
	e := ecs.NewECS(w)
	for _, s := range systems {
		e.AddSystem(s)
	}
	e.Update()
}

func mustSim(t *testing.T, w donburi.World) *components.SimulationData {
	t.Helper()
	sim, ok := GetSimulation(w)
	if !ok {
		t.Fatal("Expected a simulation entity")
	}
	return sim
}

func mustPlayer(t *testing.T, w donburi.World) (*components.PlayerData, *components.ObjectData) {
	t.Helper()
	_, player, obj, ok := getPlayer(w)
	if !ok {
		t.Fatal("Expected a player entity")
	}
	return player, obj
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func hasEvent(events []cfg.EventID, id cfg.EventID) bool {
	for _, e := range events {
		if e == id {
			return true
		}
	}
	return false
}
