package systems

import (
	"testing"

	cfg "github.com/automoto/cosmicdash/config"
	"github.com/yohamta/donburi/ecs"
)

func TestFlapGravityIntegrates(t *testing.T) {
	w := newRunningWorld(t)
	player, obj := mustPlayer(t, w)
	startY := obj.Y

	step(w, UpdatePhysics)

	gravity := cfg.Modes[cfg.ModeFlap].Gravity
	if player.VelocityY != gravity {
		t.Errorf("Expected velocity %v, got %v", gravity, player.VelocityY)
	}
	if obj.Y != startY+gravity {
		t.Errorf("Expected y %v, got %v", startY+gravity, obj.Y)
	}
}

func TestFlapLeavingScreenIsDeath(t *testing.T) {
	tests := []struct {
		name      string
		y         float64
		velocityY float64
	}{
		{"through the floor", testHeight - cfg.Player.Size - 1, 5},
		{"through the ceiling", 1, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newRunningWorld(t)
			player, obj := mustPlayer(t, w)
			obj.Y = tt.y
			player.VelocityY = tt.velocityY

			step(w, UpdatePhysics)

			sim := mustSim(t, w)
			if sim.Running || !sim.GameOver {
				t.Errorf("Expected game over, got running=%v gameOver=%v", sim.Running, sim.GameOver)
			}
		})
	}
}

func TestFlipClampsInsteadOfKilling(t *testing.T) {
	tests := []struct {
		name       string
		y          float64
		velocityY  float64
		gravityDir float64
		wantY      float64
	}{
		{"floor", testHeight - cfg.Player.Size - 2, 10, 1, testHeight - cfg.Player.Size},
		{"ceiling", 2, -10, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newRunningWorld(t)
			sim := mustSim(t, w)
			sim.Mode = cfg.ModeFlip
			player, obj := mustPlayer(t, w)
			obj.Y = tt.y
			player.VelocityY = tt.velocityY
			player.GravityDir = tt.gravityDir

			step(w, UpdatePhysics)

			if obj.Y != tt.wantY {
				t.Errorf("Expected y %v, got %v", tt.wantY, obj.Y)
			}
			if player.VelocityY != 0 {
				t.Errorf("Expected velocity reset to 0, got %v", player.VelocityY)
			}
			if !sim.Running {
				t.Error("Expected run to continue after touching the boundary")
			}
		})
	}
}

func TestFlipStaysWithinBounds(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)
	sim.Mode = cfg.ModeFlip
	player, obj := mustPlayer(t, w)

	for i := 0; i < 300; i++ {
		if i%37 == 0 {
			player.GravityDir = -player.GravityDir
		}
		step(w, UpdatePhysics)
		if obj.Y < 0 || obj.Y > testHeight-obj.H {
			t.Fatalf("Frame %d: expected y within [0, %v], got %v", i, testHeight-obj.H, obj.Y)
		}
	}
}

func TestSpeedRamp(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)

	sim.Frame = cfg.Speed.RampInterval - 1
	step(w, UpdateSpeedRamp)
	if sim.Speed != cfg.Speed.Initial {
		t.Errorf("Expected no ramp off cadence, got speed %v", sim.Speed)
	}

	sim.Frame = cfg.Speed.RampInterval
	step(w, UpdateSpeedRamp)
	if want := cfg.Speed.Initial + cfg.Speed.RampIncrement; sim.Speed != want {
		t.Errorf("Expected speed %v, got %v", want, sim.Speed)
	}

	sim.Speed = cfg.Speed.RampMax
	step(w, UpdateSpeedRamp)
	if sim.Speed != cfg.Speed.RampMax {
		t.Errorf("Expected ramp capped at %v, got %v", cfg.Speed.RampMax, sim.Speed)
	}
}

func TestWithRunningCheck(t *testing.T) {
	w := newRunningWorld(t)
	calls := 0
	system := WithRunningCheck(func(*ecs.ECS) { calls++ })

	step(w, system)
	mustSim(t, w).Running = false
	step(w, system)

	if calls != 1 {
		t.Errorf("Expected system to run once, got %d", calls)
	}
}
