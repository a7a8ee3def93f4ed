package systems

import (
	"math"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies the active mode's gravity, integrates the player and
// enforces the mode's boundary policy: leaving the screen ends a FLAP run,
// while FLIP clamps to the floor/ceiling and zeroes the velocity on contact.
func UpdatePhysics(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok {
		return
	}
	_, player, obj, ok := getPlayer(w)
	if !ok {
		return
	}

	mode := cfg.Modes[sim.Mode]

	switch sim.Mode {
	case cfg.ModeFlap:
		player.VelocityY = gamemath.ApplyGravity(player.VelocityY, mode.Gravity, 1)
		obj.Y += player.VelocityY
		player.Rotation = gamemath.ClampAbs(player.VelocityY*mode.RotationFactor, mode.MaxRotation)
		obj.Update()

		if gamemath.OutOfBounds(obj.Y, obj.H, sim.Height) {
			KillPlayer(w)
		}

	case cfg.ModeFlip:
		player.VelocityY = gamemath.ApplyGravity(player.VelocityY, mode.Gravity, player.GravityDir)
		y, touched := gamemath.ClampVertical(obj.Y+player.VelocityY, obj.H, sim.Height)
		obj.Y = y
		if touched != 0 {
			player.VelocityY = 0
		}
		player.Rotation = flipRotation(player)
		obj.Update()
	}
}

// flipRotation turns the player upside down while gravity points at the ceiling
func flipRotation(player *components.PlayerData) float64 {
	if player.GravityDir < 0 {
		return math.Pi
	}
	return 0
}

// UpdateSpeedRamp raises the scroll speed on a fixed frame cadence up to a cap.
// Mode switch increments are applied elsewhere and are not capped.
func UpdateSpeedRamp(ecs *ecs.ECS) {
	w := ecs.World
	sim, ok := GetSimulation(w)
	if !ok || cfg.Speed.RampInterval <= 0 {
		return
	}
	if sim.Frame%cfg.Speed.RampInterval != 0 {
		return
	}
	if sim.Speed+cfg.Speed.RampIncrement <= cfg.Speed.RampMax {
		sim.Speed += cfg.Speed.RampIncrement
	}
}
