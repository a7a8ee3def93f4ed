package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/engine"
	"github.com/automoto/cosmicdash/fonts"
	"github.com/automoto/cosmicdash/input"
	"github.com/automoto/cosmicdash/persistence"
	"github.com/automoto/cosmicdash/render"
	"github.com/automoto/cosmicdash/sound"
	"github.com/automoto/cosmicdash/systems"
	"github.com/automoto/cosmicdash/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// DashScene is the only scene: the engine plus the menu and game over
// overlays drawn on top of the idle world
type DashScene struct {
	engine   *engine.Engine
	settings persistence.SettingsStore
	once     sync.Once

	input    components.InputData
	menu     *ui.Overlay
	gameOver *ui.Overlay
	sound    *sound.Player

	wasGameOver bool
	quit        bool
}

// NewDashScene creates the scene. settings may be nil.
func NewDashScene(e *engine.Engine, settings persistence.SettingsStore) *DashScene {
	render.Register(e)
	return &DashScene{engine: e, settings: settings}
}

func (ds *DashScene) configure() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD fonts: %v", err)
	}

	ds.sound = sound.Default()
	ds.sound.Preload()
	ds.applySettings()

	ds.menu = ui.NewMenu(ds.start, ds.requestQuit)
	ds.gameOver = ui.NewGameOver(ds.start, ds.requestQuit)
	ds.menu.SetScores(-1, ds.engine.HighScore(), false)
	ds.menu.Show()
}

func (ds *DashScene) applySettings() {
	if ds.settings == nil {
		return
	}
	saved, err := ds.settings.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return
	}
	if saved == nil {
		return
	}
	if saved.Muted != ds.sound.Muted() {
		ds.sound.ToggleMute()
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

func (ds *DashScene) saveSettings() {
	if ds.settings == nil {
		return
	}
	s := &persistence.Settings{
		Muted:      ds.sound.Muted(),
		Fullscreen: ebiten.IsFullscreen(),
	}
	if err := ds.settings.SaveSettings(s); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// start begins a run unless one is already in progress. Both the primary
// action and the overlay buttons land here.
func (ds *DashScene) start() {
	if ds.engine.Running() {
		return
	}
	ds.engine.Start()
}

func (ds *DashScene) requestQuit() {
	ds.quit = true
}

func (ds *DashScene) Update() error {
	ds.once.Do(ds.configure)

	input.Poll(&ds.input)

	if systems.GetAction(&ds.input, cfg.ActionQuit).JustPressed || ds.quit {
		ds.saveSettings()
		return ebiten.Termination
	}
	if systems.GetAction(&ds.input, cfg.ActionMute).JustPressed {
		ds.sound.ToggleMute()
		ds.saveSettings()
	}

	primary := systems.GetAction(&ds.input, cfg.ActionPrimary).JustPressed
	switch {
	case primary && ds.engine.Running():
		ds.engine.HandleInput()
	case primary && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		// Clicks on the overlay belong to its buttons
		ds.start()
	case systems.GetAction(&ds.input, cfg.ActionStart).JustPressed:
		ds.start()
	}

	if ds.engine.Update() {
		ds.sound.Play(ds.engine.Events())
	}

	ds.updateOverlays()
	return nil
}

func (ds *DashScene) updateOverlays() {
	over := ds.engine.GameOver()
	if over && !ds.wasGameOver {
		state := ds.engine.State()
		ds.gameOver.SetScores(state.Score, ds.engine.HighScore(), state.NewHighScore)
		ds.gameOver.Show()
	}
	ds.wasGameOver = over

	if ds.engine.Running() {
		return
	}
	if over {
		ds.gameOver.Update()
	} else {
		ds.menu.Update()
	}
}

func (ds *DashScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	ds.engine.Draw(screen)

	if ds.menu == nil || ds.engine.Running() {
		return
	}
	if ds.engine.GameOver() {
		ds.gameOver.Draw(screen)
	} else {
		ds.menu.Draw(screen)
	}
}

// Resize forwards the window size to the engine
func (ds *DashScene) Resize(width, height int) {
	ds.engine.Resize(float64(width), float64(height))
}
