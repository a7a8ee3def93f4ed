// Package render draws a run. It only reads the world; all state changes
// happen in the systems. Register hooks the renderers into an engine's layers.
package render

import (
	"image/color"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// whitePixel is scaled and tinted to draw solid shapes
	whitePixel *ebiten.Image

	// scene holds the world layer so screen shake can offset it in one draw
	scene *ebiten.Image

	// ticks drives animations that continue on the menu and game over screens
	ticks int
)

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Renderers is implemented by the engine, which keeps the registrations
// across runs
type Renderers interface {
	AddRenderer(layer ecs.LayerID, fn any)
}

// Register adds the world and HUD renderers
func Register(r Renderers) {
	r.AddRenderer(cfg.LayerWorld, DrawWorld)
	r.AddRenderer(cfg.LayerHUD, DrawHUD)
}

// DrawWorld renders the background and every entity, offset by screen shake
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	ticks++

	w := ecs.World
	sim, ok := systems.GetSimulation(w)
	if !ok {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if scene == nil || scene.Bounds().Dx() != sw || scene.Bounds().Dy() != sh {
		if scene != nil {
			scene.Deallocate()
		}
		scene = ebiten.NewImage(sw, sh)
	}
	scene.Clear()

	mode := cfg.Modes[sim.Mode]
	drawGradient(scene, mode.BackgroundTop, mode.BackgroundBase)
	drawStarfield(w, scene)
	if sim.Mode == cfg.ModeFlip {
		drawGrid(scene, sim)
	}
	drawObstacles(w, scene)
	drawPickup(w, scene)
	if !sim.GameOver {
		drawPlayer(w, scene, mode)
	}
	drawParticles(w, scene)

	screen.Fill(mode.BackgroundBase)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	dx, dy := shakeOffset(w, sim)
	drawOp.GeoM.Translate(dx, dy)
	screen.DrawImage(scene, drawOp)
}

// DrawHUD renders the readouts while a run is in progress or just ended
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sim, ok := systems.GetSimulation(ecs.World)
	if !ok || !(sim.Running || sim.GameOver) {
		return
	}
	drawHUD(screen, sim)
}

// shakeOffset picks a random offset in [-Shake/2, Shake/2] on both axes
// from the run's jitter source
func shakeOffset(w donburi.World, sim *components.SimulationData) (float64, float64) {
	if sim.Shake <= 0 {
		return 0, 0
	}
	entry, ok := components.RNG.First(w)
	if !ok {
		return 0, 0
	}
	jitter := components.RNG.Get(entry).Jitter
	if jitter == nil {
		return 0, 0
	}
	return (jitter.Float64() - 0.5) * sim.Shake, (jitter.Float64() - 0.5) * sim.Shake
}

// fillRect draws a solid rectangle rotated by angle around its center
func fillRect(dst *ebiten.Image, x, y, w, h, angle float64, c color.Color) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(w, h)
	if angle != 0 {
		drawOp.GeoM.Translate(-w/2, -h/2)
		drawOp.GeoM.Rotate(angle)
		drawOp.GeoM.Translate(w/2, h/2)
	}
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.ScaleWithColor(c)
	dst.DrawImage(whitePixel, drawOp)
}

// drawGradient fills dst with a vertical two color gradient
func drawGradient(dst *ebiten.Image, top, bottom color.RGBA) {
	w, h := float32(dst.Bounds().Dx()), float32(dst.Bounds().Dy())

	vertex := func(x, y float32, c color.RGBA) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255,
		}
	}

	vertices := []ebiten.Vertex{
		vertex(0, 0, top),
		vertex(w, 0, top),
		vertex(0, h, bottom),
		vertex(w, h, bottom),
	}
	indices := []uint16{0, 1, 2, 1, 2, 3}
	dst.DrawTriangles(vertices, indices, whitePixel, nil)
}
