package render

import (
	"fmt"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// drawHUD renders the score and mode readouts. It is drawn after the shake
// offset so the numbers stay readable.
func drawHUD(screen *ebiten.Image, sim *components.SimulationData) {
	if !fonts.Loaded(fonts.HUD) || !fonts.Loaded(fonts.Big) || !fonts.Loaded(fonts.Small) {
		return
	}
	width := screen.Bounds().Dx()
	margin := int(cfg.HUD.Margin)
	gap := int(cfg.HUD.LineGap)

	big := fonts.Big.Get()
	small := fonts.HUD.Get()

	score := fmt.Sprintf("%d", sim.Score)
	text.Draw(screen, score, big, margin, margin+gap, cfg.HUD.TextColor)

	best := fmt.Sprintf("BEST %d", sim.HighScore)
	text.Draw(screen, best, small, margin, margin+gap*2, cfg.HUD.DimColor)

	mode := cfg.Modes[sim.Mode]
	label := fmt.Sprintf("%s  x%.2f", mode.Label, sim.Speed)
	labelWidth := text.BoundString(small, label).Dx()
	text.Draw(screen, label, small, width-margin-labelWidth, margin+gap, mode.PlayerColor)

	if sim.Switches > 0 {
		tiny := fonts.Small.Get()
		switches := fmt.Sprintf("SWITCHES %d", sim.Switches)
		switchesWidth := text.BoundString(tiny, switches).Dx()
		text.Draw(screen, switches, tiny, width-margin-switchesWidth, margin+gap*2, cfg.HUD.DimColor)
	}
}
