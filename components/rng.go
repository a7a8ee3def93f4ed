package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RNGData carries the run's random source so a seed reproduces a run.
// Jitter feeds the screen shake only, so drawing never disturbs the run.
type RNGData struct {
	*rand.Rand
	Jitter *rand.Rand
}

var RNG = donburi.NewComponentType[RNGData]()
