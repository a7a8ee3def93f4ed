package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/cosmicdash/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay is the panel shown over the idle world: the title menu before the
// first run and the game over screen after each one
type Overlay struct {
	UI *ebitenui.UI

	OnPrimary func()
	OnQuit    func()

	conf        *cfg.OverlayConfig
	primaryText string

	scoreLabel *widget.Label
	bestLabel  *widget.Label
	badgeLabel *widget.Label

	fade  *gween.Tween
	alpha float32

	blink   *gween.Sequence
	newBest bool

	layer  *ebiten.Image
	drawOp *ebiten.DrawImageOptions

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenu builds the title screen
func NewMenu(onStart, onQuit func()) *Overlay {
	return newOverlay(&cfg.Menu, "Play", onStart, onQuit)
}

// NewGameOver builds the game over screen
func NewGameOver(onRetry, onQuit func()) *Overlay {
	return newOverlay(&cfg.GameOver, "Retry", onRetry, onQuit)
}

func newOverlay(conf *cfg.OverlayConfig, primaryText string, onPrimary, onQuit func()) *Overlay {
	o := &Overlay{
		OnPrimary:   onPrimary,
		OnQuit:      onQuit,
		conf:        conf,
		primaryText: primaryText,
		drawOp:      &ebiten.DrawImageOptions{},
	}
	o.loadFonts()
	o.buildUI()
	o.buildTweens()
	return o
}

func (o *Overlay) loadFonts() {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	o.titleFace = &text.GoTextFace{Source: boldSource, Size: 36}
	o.normalFace = &text.GoTextFace{Source: regularSource, Size: 16}
	o.smallFace = &text.GoTextFace{Source: regularSource, Size: 12}
}

func (o *Overlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(o.conf.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(o.conf.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(o.conf.Title, &o.titleFace, &widget.LabelColor{
			Idle: o.conf.TitleColor,
		}),
	))

	o.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.normalFace, &widget.LabelColor{
			Idle: o.conf.TextColor,
		}),
	)
	contentContainer.AddChild(o.scoreLabel)

	o.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.DimColor,
		}),
	)
	contentContainer.AddChild(o.bestLabel)

	o.badgeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.normalFace, &widget.LabelColor{
			Idle: cfg.Gold,
		}),
	)
	contentContainer.AddChild(o.badgeLabel)

	contentContainer.AddChild(o.buildButtons())

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(o.conf.Hint, &o.smallFace, &widget.LabelColor{
			Idle: cfg.HUD.DimColor,
		}),
	))

	rootContainer.AddChild(contentContainer)

	o.UI = &ebitenui.UI{Container: rootContainer}
}

func (o *Overlay) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(o.newButton(o.primaryText, func() {
		if o.OnPrimary != nil {
			o.OnPrimary()
		}
	}))
	container.AddChild(o.newButton("Quit", func() {
		if o.OnQuit != nil {
			o.OnQuit()
		}
	}))

	return container
}

func (o *Overlay) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(o.conf.ButtonIdle),
			Hover:   image.NewNineSliceColor(o.conf.ButtonHover),
			Pressed: image.NewNineSliceColor(o.conf.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &o.normalFace, &widget.ButtonTextColor{
			Idle:    o.conf.TextColor,
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: cfg.HUD.DimColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (o *Overlay) buildTweens() {
	o.fade = gween.New(0, 1, o.conf.FadeSeconds, ease.OutQuad)

	o.blink = gween.NewSequence()
	o.blink.Add(
		gween.New(0, 1, 0.4, ease.Linear),
		gween.New(1, 0, 0.4, ease.Linear),
	)
}

// Show restarts the fade in
func (o *Overlay) Show() {
	o.fade.Reset()
	o.blink.Reset()
	o.alpha = 0
}

// SetScores fills in the score lines. A negative score hides the score line.
func (o *Overlay) SetScores(score, best int, newBest bool) {
	if score < 0 {
		o.scoreLabel.Label = ""
	} else {
		o.scoreLabel.Label = fmt.Sprintf("Score %d", score)
	}
	o.bestLabel.Label = fmt.Sprintf("Best %d", best)
	o.newBest = newBest
	o.badgeLabel.Label = ""
}

func (o *Overlay) Update() {
	dt := float32(1) / float32(cfg.C.TPS)

	alpha, _ := o.fade.Update(dt)
	o.alpha = alpha

	if o.newBest {
		v, _, done := o.blink.Update(dt)
		if done {
			o.blink.Reset()
		}
		if v > 0.5 {
			o.badgeLabel.Label = "NEW BEST!"
		} else {
			o.badgeLabel.Label = ""
		}
	}

	o.UI.Update()
}

// Draw renders the panel with the current fade applied
func (o *Overlay) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if o.layer == nil || o.layer.Bounds().Dx() != w || o.layer.Bounds().Dy() != h {
		o.layer = ebiten.NewImage(w, h)
	}
	o.layer.Clear()
	o.UI.Draw(o.layer)

	o.drawOp.ColorScale.Reset()
	o.drawOp.ColorScale.ScaleAlpha(o.alpha)
	screen.DrawImage(o.layer, o.drawOp)
}
