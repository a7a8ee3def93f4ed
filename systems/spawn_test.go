package systems

import (
	"testing"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/automoto/cosmicdash/tags"
	"github.com/yohamta/donburi"
)

func TestSpawnerCadence(t *testing.T) {
	tests := []struct {
		name  string
		mode  cfg.ModeID
		frame int
		want  int
	}{
		{"flap pair on cadence", cfg.ModeFlap, cfg.Spawn.ObstacleInterval, 2},
		{"flip block on cadence", cfg.ModeFlip, cfg.Spawn.ObstacleInterval * 2, 1},
		{"nothing off cadence", cfg.ModeFlap, cfg.Spawn.ObstacleInterval + 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newRunningWorld(t)
			sim := mustSim(t, w)
			sim.Mode = tt.mode
			sim.Frame = tt.frame

			step(w, UpdateSpawner)

			if n := count(w, tags.Obstacle); n != tt.want {
				t.Errorf("Expected %d obstacles, got %d", tt.want, n)
			}
			tags.Obstacle.Each(w, func(e *donburi.Entry) {
				if x := components.Object.Get(e).X; x != testWidth {
					t.Errorf("Expected spawn at the right edge %v, got %v", testWidth, x)
				}
			})
		})
	}
}

func TestPickupSpawnRules(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)
	cadence := cfg.Pickup.Cadence

	// Score zero never offers a pickup
	sim.Frame = cadence
	step(w, UpdateSpawner)
	if n := count(w, tags.Pickup); n != 0 {
		t.Fatalf("Expected no pickup at score 0, got %d", n)
	}

	sim.Score = cfg.Pickup.ScoreThreshold
	sim.Frame = cadence + 1
	step(w, UpdateSpawner)
	if n := count(w, tags.Pickup); n != 0 {
		t.Fatalf("Expected no pickup off cadence, got %d", n)
	}

	sim.Frame = cadence * 2
	step(w, UpdateSpawner)
	if n := count(w, tags.Pickup); n != 1 {
		t.Fatalf("Expected 1 pickup, got %d", n)
	}

	e, _ := tags.Pickup.First(w)
	r := components.Object.Get(e).Rect()
	if r.X != testWidth {
		t.Errorf("Expected pickup at the right edge, got x=%v", r.X)
	}
	if r.Y < testHeight*0.25 || r.Bottom() > testHeight*0.75 {
		t.Errorf("Expected pickup in the middle band, got y=%v", r.Y)
	}

	// Never two at once
	sim.Frame = cadence * 3
	step(w, UpdateSpawner)
	if n := count(w, tags.Pickup); n != 1 {
		t.Errorf("Expected pickup count to stay 1, got %d", n)
	}

	// A missed pickup is offered again on the next cadence frame
	factory.RemoveObject(w, e)
	sim.Frame = cadence * 4
	step(w, UpdateSpawner)
	if n := count(w, tags.Pickup); n != 1 {
		t.Errorf("Expected a new pickup at the same score, got %d", n)
	}
}

func TestPickupRespawnsAfterMiss(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)
	sim.Score = cfg.Pickup.ScoreThreshold
	sim.Frame = cfg.Pickup.Cadence

	step(w, UpdateSpawner)
	e, ok := tags.Pickup.First(w)
	if !ok {
		t.Fatal("Expected a pickup on the first cadence frame")
	}

	// Scroll it off without collecting it
	components.Object.Get(e).X = -cfg.Pickup.Size - 1
	step(w, UpdatePickups)
	if n := count(w, tags.Pickup); n != 0 {
		t.Fatalf("Expected the missed pickup to be discarded, got %d", n)
	}

	sim.Frame += cfg.Pickup.Cadence
	step(w, UpdateSpawner)
	if n := count(w, tags.Pickup); n != 1 {
		t.Errorf("Expected a pickup on the next cadence frame, got %d", n)
	}
	if sim.Switches != 0 {
		t.Errorf("Expected no mode switch from a missed pickup, got %d", sim.Switches)
	}
}

func TestDespawnPastLeftEdge(t *testing.T) {
	w := newRunningWorld(t)
	margin := cfg.Spawn.DespawnMargin

	factory.CreateObstacle(w, -margin-50-1, 0, 50, 40, components.ObstacleCeiling, true, cfg.ModeFlip)
	factory.CreateObstacle(w, -margin-50+1, 0, 50, 40, components.ObstacleCeiling, true, cfg.ModeFlip)

	step(w, UpdateDespawn)

	if n := count(w, tags.Obstacle); n != 1 {
		t.Errorf("Expected 1 obstacle left, got %d", n)
	}
}
