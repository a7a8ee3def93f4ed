package components

import "github.com/yohamta/donburi"

// Star is one background point
type Star struct {
	X, Y  float64
	Size  float64
	Phase float64 // twinkle phase offset
}

// StarfieldData is seeded once, on the first resize, and survives restarts
type StarfieldData struct {
	Stars  []Star
	Seeded bool
	Scroll float64 // accumulated parallax offset
}

var Starfield = donburi.NewComponentType[StarfieldData]()
