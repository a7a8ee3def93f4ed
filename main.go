package main

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/engine"
	"github.com/automoto/cosmicdash/persistence"
	"github.com/automoto/cosmicdash/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the playfield always fills it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

type playOptions struct {
	width, height int
	seed          int64
	tuning        string
	noSave        bool
}

func main() {
	opts := playOptions{}

	root := &cobra.Command{
		Use:          "cosmicdash",
		Short:        "Endless two-mode arcade runner",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.tuning == "" {
				return nil
			}
			return config.LoadTuning(opts.tuning)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.tuning, "tuning", "", "TOML file overriding gameplay tuning")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	root.Flags().IntVar(&opts.width, "width", config.C.Width, "initial window width")
	root.Flags().IntVar(&opts.height, "height", config.C.Height, "initial window height")
	root.Flags().BoolVar(&opts.noSave, "no-save", false, "keep the high score in memory only")

	root.AddCommand(newSimulateCmd(&opts))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func play(opts playOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", opts.width, opts.height)
	}

	store := persistence.Open(opts.noSave)
	settings, ok := store.(persistence.SettingsStore)
	if !ok {
		log.Printf("Warning: store %T cannot keep settings", store)
	}

	e := engine.New(engine.Options{
		Width:  float64(opts.width),
		Height: float64(opts.height),
		Seed:   opts.seed,
		Store:  store,
	})

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(opts.width, opts.height)
	if config.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	}
	ebiten.SetWindowSizeLimits(config.Window.MinWidth, config.Window.MinHeight, -1, -1)
	ebiten.SetTPS(config.C.TPS)

	g := &Game{scene: scenes.NewDashScene(e, settings)}
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
