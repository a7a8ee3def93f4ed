package systems

import (
	"testing"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/automoto/cosmicdash/tags"
	"github.com/yohamta/donburi"
)

func TestGappedPairScoresOnce(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)
	_, playerObj := mustPlayer(t, w)

	factory.SpawnObstacleLayout(w, cfg.ModeFlap, testWidth, testHeight, getRNG(w))

	// Put the pair just behind the player
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.X = playerObj.X - obj.W - 1
		obj.Update()
	})

	for i := 0; i < 3; i++ {
		step(w, UpdateScoring)
	}

	if sim.Score != 1 {
		t.Errorf("Expected score 1 for one pair, got %d", sim.Score)
	}
	if n := len(DrainEvents(w)); n != 1 {
		t.Errorf("Expected 1 score event, got %d", n)
	}
}

func TestScoringWaitsForTrailingEdge(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)
	_, playerObj := mustPlayer(t, w)

	// Trailing edge exactly at the player's leading edge does not count yet
	factory.CreateObstacle(w, playerObj.X-50, 0, 50, 40, components.ObstacleCeiling, true, cfg.ModeFlip)

	step(w, UpdateScoring)
	if sim.Score != 0 {
		t.Errorf("Expected score 0, got %d", sim.Score)
	}

	step(w, UpdateScroll)
	step(w, UpdateScoring)
	if sim.Score != 1 {
		t.Errorf("Expected score 1 once the edge has passed, got %d", sim.Score)
	}
}
