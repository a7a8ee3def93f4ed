package render

import (
	"image/color"
	"math"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

func drawPlayer(w donburi.World, dst *ebiten.Image, mode *cfg.ModeConfig) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	r := components.Object.Get(entry).Rect()

	// Soft glow behind the body
	c := mode.PlayerColor
	glow := color.RGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: 64}
	fillRect(dst, r.X-4, r.Y-4, r.W+8, r.H+8, player.Rotation, glow)
	fillRect(dst, r.X, r.Y, r.W, r.H, player.Rotation, mode.PlayerColor)

	// Eye, so the rotation reads
	eye := r.W / 5
	fillRect(dst, r.X+r.W-eye*2, r.Y+eye, eye, eye, player.Rotation, cfg.DeepSpace)
}

func drawObstacles(w donburi.World, dst *ebiten.Image) {
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		c := components.Obstacle.Get(e).Color

		vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, cfg.White, false)
	})
}

func drawPickup(w donburi.World, dst *ebiten.Image) {
	tags.Pickup.Each(w, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		angle := components.Pickup.Get(e).Angle

		pulse := 1 + 0.1*math.Sin(float64(ticks)*0.15)
		size := r.W * pulse
		x := r.CenterX() - size/2
		y := r.CenterY() - size/2

		fillRect(dst, x, y, size, size, angle+math.Pi/4, cfg.Pickup.Color)
		inner := size / 2
		fillRect(dst, r.CenterX()-inner/2, r.CenterY()-inner/2, inner, inner, -angle, cfg.White)
	})
}

func drawParticles(w donburi.World, dst *ebiten.Image) {
	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		c := p.Color
		alpha := math.Max(0, math.Min(1, p.Life))
		faded := color.RGBA{
			R: uint8(float64(c.R) * alpha),
			G: uint8(float64(c.G) * alpha),
			B: uint8(float64(c.B) * alpha),
			A: uint8(float64(c.A) * alpha),
		}
		vector.FillRect(dst, float32(p.X-p.Size/2), float32(p.Y-p.Size/2), float32(p.Size), float32(p.Size), faded, false)
	})
}
