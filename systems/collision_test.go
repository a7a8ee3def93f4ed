package systems

import (
	"testing"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
)

func TestCollisionRespectsMargin(t *testing.T) {
	tests := []struct {
		name     string
		overlap  float64 // how far the obstacle reaches into the player horizontally
		wantDead bool
	}{
		{"grazing contact is forgiven", cfg.Collision.Margin, false},
		{"deep contact kills", cfg.Collision.Margin + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newRunningWorld(t)
			_, obj := mustPlayer(t, w)
			r := obj.Rect()

			factory.CreateObstacle(w, r.Right()-tt.overlap, r.Y-20, 50, r.H+40, components.ObstacleGapBottom, false, cfg.ModeFlap)

			step(w, UpdateCollisions)

			if got := mustSim(t, w).GameOver; got != tt.wantDead {
				t.Errorf("Expected game over %v, got %v", tt.wantDead, got)
			}
		})
	}
}

func TestCollisionIgnoresDistantObstacles(t *testing.T) {
	w := newRunningWorld(t)
	factory.CreateObstacle(w, 600, 0, 50, testHeight, components.ObstacleGapTop, true, cfg.ModeFlap)

	step(w, UpdateCollisions)

	if mustSim(t, w).GameOver {
		t.Error("Expected no collision with a far away obstacle")
	}
}

func TestCollisionAfterScroll(t *testing.T) {
	w := newRunningWorld(t)
	_, obj := mustPlayer(t, w)
	sim := mustSim(t, w)

	// A wall that reaches the player after a few frames of scrolling
	factory.CreateObstacle(w, obj.X+obj.W+20, 0, 50, testHeight, components.ObstacleGapTop, true, cfg.ModeFlap)

	for i := 0; i < 10 && sim.Running; i++ {
		step(w, UpdateScroll)
		step(w, UpdateCollisions)
	}

	if !sim.GameOver {
		t.Error("Expected the scrolled wall to end the run")
	}
}
