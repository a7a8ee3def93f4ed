package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// tuningFile mirrors the gameplay sections that may be overridden from disk.
// Keys absent from the file keep their current values.
type tuningFile struct {
	Player      *PlayerConfig      `toml:"player"`
	Flap        *ModeConfig        `toml:"flap"`
	Flip        *ModeConfig        `toml:"flip"`
	Spawn       *SpawnConfig       `toml:"spawn"`
	Pickup      *PickupConfig      `toml:"pickup"`
	Speed       *SpeedConfig       `toml:"speed"`
	Collision   *CollisionConfig   `toml:"collision"`
	ScreenShake *ScreenShakeConfig `toml:"screen_shake"`
	Particles   *ParticleConfig    `toml:"particles"`
}

// LoadTuning overlays a TOML tuning file onto the global configuration
func LoadTuning(path string) error {
	f := tuningFile{
		Player:      &Player,
		Flap:        Modes[ModeFlap],
		Flip:        Modes[ModeFlip],
		Spawn:       &Spawn,
		Pickup:      &Pickup,
		Speed:       &Speed,
		Collision:   &Collision,
		ScreenShake: &ScreenShake,
		Particles:   &Particles,
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown tuning keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return Validate()
}

// Validate rejects configurations the simulation cannot run with
func Validate() error {
	if Spawn.ObstacleInterval <= 0 {
		return fmt.Errorf("spawn.obstacle_interval must be positive, got %d", Spawn.ObstacleInterval)
	}
	if Pickup.ScoreThreshold <= 0 {
		return fmt.Errorf("pickup.score_threshold must be positive, got %d", Pickup.ScoreThreshold)
	}
	if Pickup.Cadence <= 0 {
		return fmt.Errorf("pickup.cadence must be positive, got %d", Pickup.Cadence)
	}
	if Player.Size <= 0 {
		return fmt.Errorf("player.size must be positive, got %v", Player.Size)
	}
	if Collision.Margin < 0 || Collision.Margin*2 >= Player.Size {
		return fmt.Errorf("collision.margin %v must be in [0, player.size/2)", Collision.Margin)
	}
	if Collision.CellSize <= 0 {
		return fmt.Errorf("collision.cell_size must be positive, got %d", Collision.CellSize)
	}
	if ScreenShake.Decay < 0 || ScreenShake.Decay >= 1 {
		return fmt.Errorf("screen_shake.decay must be in [0, 1), got %v", ScreenShake.Decay)
	}
	if Particles.LifeDecrement <= 0 {
		return fmt.Errorf("particles.life_decrement must be positive, got %v", Particles.LifeDecrement)
	}
	return nil
}
