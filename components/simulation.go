package components

import (
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/yohamta/donburi"
)

// SimulationData is the singleton holding the run's scalar state
type SimulationData struct {
	RunID string

	Mode     cfg.ModeID
	Score    int
	Speed    float64
	Frame    int
	Running  bool
	GameOver bool
	Shake    float64 // screen shake magnitude in pixels

	HighScore    int
	NewHighScore bool // set when the finished run beat HighScore

	Switches int

	// Viewport, kept in sync with the render surface
	Width  float64
	Height float64
}

var Simulation = donburi.NewComponentType[SimulationData]()
