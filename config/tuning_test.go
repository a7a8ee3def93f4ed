package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write tuning file: %v", err)
	}
	return path
}

// snapshot restores the tunable globals after a test
func snapshot(t *testing.T) {
	t.Helper()
	player, spawn, pickup, speed := Player, Spawn, Pickup, Speed
	collision, shake, particles := Collision, ScreenShake, Particles
	flap, flip := *Modes[ModeFlap], *Modes[ModeFlip]
	t.Cleanup(func() {
		Player, Spawn, Pickup, Speed = player, spawn, pickup, speed
		Collision, ScreenShake, Particles = collision, shake, particles
		*Modes[ModeFlap], *Modes[ModeFlip] = flap, flip
	})
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	snapshot(t)
	prevWidth := Spawn.ObstacleWidth

	path := writeTuning(t, `
[spawn]
obstacle_interval = 120

[flap]
gravity = 0.6

[speed]
switch_increment = 2.5
`)

	if err := LoadTuning(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if Spawn.ObstacleInterval != 120 {
		t.Errorf("Expected obstacle interval 120, got %d", Spawn.ObstacleInterval)
	}
	if Spawn.ObstacleWidth != prevWidth {
		t.Errorf("Expected obstacle width to stay %v, got %v", prevWidth, Spawn.ObstacleWidth)
	}
	if Modes[ModeFlap].Gravity != 0.6 {
		t.Errorf("Expected flap gravity 0.6, got %v", Modes[ModeFlap].Gravity)
	}
	if Speed.SwitchIncrement != 2.5 {
		t.Errorf("Expected switch increment 2.5, got %v", Speed.SwitchIncrement)
	}
}

func TestLoadTuningRejectsUnknownKeys(t *testing.T) {
	snapshot(t)
	path := writeTuning(t, `
[spawn]
obstacle_intervall = 10
`)

	err := LoadTuning(path)
	if err == nil {
		t.Fatal("Expected an error for an unknown key")
	}
	if !strings.Contains(err.Error(), "obstacle_intervall") {
		t.Errorf("Expected error to name the key, got %v", err)
	}
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	snapshot(t)
	path := writeTuning(t, `
[collision]
margin = 40.0
`)

	if err := LoadTuning(path); err == nil {
		t.Error("Expected a validation error for an oversized margin")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	snapshot(t)
	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestModeOther(t *testing.T) {
	if ModeFlap.Other() != ModeFlip {
		t.Errorf("Expected FLAP to switch to FLIP, got %v", ModeFlap.Other())
	}
	if ModeFlip.Other() != ModeFlap {
		t.Errorf("Expected FLIP to switch to FLAP, got %v", ModeFlip.Other())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("Expected default configuration to validate, got %v", err)
	}
}
