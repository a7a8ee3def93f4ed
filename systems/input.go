package systems

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/yohamta/donburi"
)

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// HandlePrimaryAction applies the single control input to the player: a jump
// in FLAP, a gravity flip in FLIP. It does nothing unless a run is in progress.
func HandlePrimaryAction(w donburi.World) {
	sim, ok := GetSimulation(w)
	if !ok || !sim.Running {
		return
	}
	_, player, obj, ok := getPlayer(w)
	if !ok {
		return
	}

	mode := cfg.Modes[sim.Mode]
	switch sim.Mode {
	case cfg.ModeFlap:
		player.VelocityY = mode.JumpImpulse
		Emit(w, cfg.EventJump)
	case cfg.ModeFlip:
		player.GravityDir = -player.GravityDir
		player.VelocityY = 0
		Emit(w, cfg.EventFlip)
	}

	r := obj.Rect()
	factory.SpawnTrail(w, r.X, r.CenterY(), mode.PlayerColor, getRNG(w))
}
