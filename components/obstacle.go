package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ObstacleKind describes where an obstacle sits in its layout
type ObstacleKind int

const (
	ObstacleGapTop ObstacleKind = iota
	ObstacleGapBottom
	ObstacleFloor
	ObstacleCeiling
)

// ObstacleData tracks scoring for a scrolling block.
// Only Scoring obstacles award a point; the lower half of a gapped pair does not,
// so a pair is worth exactly one point.
type ObstacleData struct {
	Kind    ObstacleKind
	Scoring bool
	Passed  bool
	Color   color.RGBA
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
