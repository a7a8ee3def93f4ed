package render

import (
	"image/color"
	"log"
	"math"

	"github.com/automoto/cosmicdash/assets"
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	gridOp       = &ebiten.DrawRectShaderOptions{}
	shaderFailed bool
)

func drawStarfield(w donburi.World, dst *ebiten.Image) {
	entry, ok := components.Starfield.First(w)
	if !ok {
		return
	}
	sf := components.Starfield.Get(entry)
	width := float64(dst.Bounds().Dx())
	if width <= 0 {
		return
	}

	base := cfg.Starfield.Color
	for _, star := range sf.Stars {
		x := math.Mod(star.X-sf.Scroll, width)
		if x < 0 {
			x += width
		}
		twinkle := 0.6 + 0.4*math.Sin(star.Phase+float64(ticks)*cfg.Starfield.TwinkleRate)
		c := color.RGBA{
			R: uint8(float64(base.R) * twinkle),
			G: uint8(float64(base.G) * twinkle),
			B: uint8(float64(base.B) * twinkle),
			A: uint8(float64(base.A) * twinkle),
		}
		vector.DrawFilledCircle(dst, float32(x), float32(star.Y), float32(star.Size), c, true)
	}
}

// drawGrid overlays the scrolling FLIP grid. The shader is compiled lazily and
// a vector fallback is used when it is unavailable.
func drawGrid(dst *ebiten.Image, sim *components.SimulationData) {
	offset := math.Mod(float64(sim.Frame)*sim.Speed, cfg.Grid.Spacing)

	if assets.GridShader == nil && !shaderFailed {
		if err := assets.LoadShaders(); err != nil {
			log.Printf("Warning: Could not load grid shader, using vector grid: %v", err)
			shaderFailed = true
		}
	}

	if assets.GridShader != nil {
		c := cfg.Grid.Color
		gridOp.Uniforms = map[string]any{
			"Spacing":   float32(cfg.Grid.Spacing),
			"Offset":    float32(offset),
			"Thickness": float32(1),
			"LineColor": []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255},
		}
		dst.DrawRectShader(dst.Bounds().Dx(), dst.Bounds().Dy(), assets.GridShader, gridOp)
		return
	}

	drawVectorGrid(dst, offset)
}

func drawVectorGrid(dst *ebiten.Image, offset float64) {
	width, height := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())
	spacing := cfg.Grid.Spacing
	c := cfg.Grid.Color

	for x := spacing - offset; x < width; x += spacing {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(height), 1, c, false)
	}
	for y := 0.0; y < height; y += spacing {
		vector.StrokeLine(dst, 0, float32(y), float32(width), float32(y), 1, c, false)
	}
}
