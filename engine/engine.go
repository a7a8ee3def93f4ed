// Package engine owns the run state and advances it one frame at a time.
// It has no graphics dependency so runs can be stepped headlessly.
package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/persistence"
	"github.com/automoto/cosmicdash/systems"
	"github.com/automoto/cosmicdash/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a new Engine
type Options struct {
	Width, Height float64
	// Seed makes runs reproducible. Zero picks a time based seed.
	Seed  int64
	Store persistence.Store

	// Autopilot attaches a bot that plays every run
	Autopilot  bool
	Difficulty cfg.BotDifficulty
}

// Engine holds the current run's world and the state that outlives it:
// the high score, the starfield and the loop scheduler.
type Engine struct {
	opts      Options
	ecs       *ecs.ECS
	store     persistence.Store
	scheduler *Scheduler
	seeds     *rand.Rand

	width, height float64
	resized       bool

	highScore int
	persisted bool
	runs      int

	renderers []renderer
	events    []cfg.EventID
}

type renderer struct {
	layer ecs.LayerID
	fn    any
}

// New creates an engine showing an idle run (the menu state) and arms the
// loop. The high score is read from the store exactly once, here.
func New(opts Options) *Engine {
	if opts.Width <= 0 {
		opts.Width = float64(cfg.C.Width)
	}
	if opts.Height <= 0 {
		opts.Height = float64(cfg.C.Height)
	}
	if opts.Store == nil {
		opts.Store = persistence.NewMemoryStore(0)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		opts:      opts,
		store:     opts.Store,
		scheduler: &Scheduler{},
		seeds:     rand.New(rand.NewSource(seed)),
		width:     opts.Width,
		height:    opts.Height,
		highScore: persistence.LoadOrZero(opts.Store),
	}
	e.ecs = e.newECS()
	e.scheduler.Schedule()
	return e
}

// newECS builds a fresh, idle run and registers its systems in execution
// order. Shake and particles keep animating after death so the game over
// screen still moves. The starfield is carried over.
func (e *Engine) newECS() *ecs.ECS {
	var stars components.StarfieldData
	if e.ecs != nil {
		if entry, ok := components.Starfield.First(e.ecs.World); ok {
			stars = *components.Starfield.Get(entry)
		}
	}

	w := donburi.NewWorld()
	rng := rand.New(rand.NewSource(e.seeds.Int63()))

	factory.CreateSpace(w, e.width, e.height)
	sim := factory.CreateSimulation(w, uuid.NewString(), e.width, e.height, e.highScore, rng)
	components.RNG.Get(sim).Jitter = rand.New(rand.NewSource(e.seeds.Int63()))
	factory.CreateStarfield(w, stars)
	factory.CreatePlayer(w, e.height)
	if e.opts.Autopilot {
		factory.CreateBot(w, e.opts.Difficulty)
	}
	if e.resized {
		systems.SeedStarfield(w, e.width, e.height)
	}

	run := ecs.NewECS(w)
	run.AddSystem(systems.UpdateScreenShake)
	run.AddSystem(systems.WithRunningCheck(systems.AdvanceFrame))
	run.AddSystem(systems.WithRunningCheck(systems.UpdateBot))
	run.AddSystem(systems.WithRunningCheck(systems.UpdatePhysics))
	run.AddSystem(systems.WithRunningCheck(systems.UpdateSpeedRamp))
	run.AddSystem(systems.WithRunningCheck(systems.UpdateSpawner))
	run.AddSystem(systems.WithRunningCheck(systems.UpdateScroll))
	run.AddSystem(systems.WithRunningCheck(systems.UpdateCollisions))
	run.AddSystem(systems.WithRunningCheck(systems.UpdateScoring))
	run.AddSystem(systems.WithRunningCheck(systems.UpdatePickups))
	run.AddSystem(systems.WithRunningCheck(systems.UpdateDespawn))
	run.AddSystem(systems.UpdateParticles)
	run.AddSystem(systems.UpdateStarfield)

	for _, r := range e.renderers {
		run.AddRenderer(r.layer, r.fn)
	}
	return run
}

// AddRenderer registers a draw function, func(*ecs.ECS, T), on the current
// run and on every run started after it
func (e *Engine) AddRenderer(layer ecs.LayerID, fn any) {
	e.renderers = append(e.renderers, renderer{layer: layer, fn: fn})
	e.ecs.AddRenderer(layer, fn)
}

// Draw runs the registered renderers whose argument type matches target
func (e *Engine) Draw(target any) {
	e.ecs.Draw(target)
}

// Start discards the current run and begins a new one from defaults. It is
// safe to call from the menu, after a game over or mid-run; the loop is
// re-armed rather than duplicated.
func (e *Engine) Start() {
	e.scheduler.Cancel()

	e.ecs = e.newECS()
	e.persisted = false
	e.runs++

	sim := e.simulation()
	sim.Running = true
	systems.Emit(e.ecs.World, cfg.EventStart)
	log.Printf("Run %s started", sim.RunID)

	e.scheduler.Schedule()
}

// Stop disarms the loop. The current state is kept for drawing.
func (e *Engine) Stop() {
	e.scheduler.Cancel()
}

// HandleInput applies the primary action to a running game
func (e *Engine) HandleInput() {
	systems.HandlePrimaryAction(e.ecs.World)
}

// Update is the display callback: it steps at most once per call and only
// while the loop is armed
func (e *Engine) Update() bool {
	return e.scheduler.Fire(e.Tick)
}

// Tick advances the simulation by exactly one frame
func (e *Engine) Tick() {
	e.events = e.events[:0]
	e.ecs.Update()
	e.events = append(e.events, systems.DrainEvents(e.ecs.World)...)
	e.finishRun()
}

// finishRun records the result of a run that just ended, once
func (e *Engine) finishRun() {
	sim := e.simulation()
	if !sim.GameOver || e.persisted {
		return
	}
	e.persisted = true
	log.Printf("Run %s ended with score %d", sim.RunID, sim.Score)

	if sim.HighScore <= e.highScore {
		return
	}
	e.highScore = sim.HighScore
	if err := e.store.SaveHighScore(e.highScore); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
	}
}

// Resize follows the render surface. The starfield is seeded on the first
// call only and repeating the current size is a no-op.
func (e *Engine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if e.resized && width == e.width && height == e.height {
		return
	}
	e.width, e.height = width, height

	sim := e.simulation()
	sim.Width, sim.Height = width, height
	factory.ResizeSpace(e.ecs.World, width, height)

	e.resized = true
	systems.SeedStarfield(e.ecs.World, width, height)
}

func (e *Engine) simulation() *components.SimulationData {
	sim, _ := systems.GetSimulation(e.ecs.World)
	return sim
}

// World exposes the current run for drawing and tests
func (e *Engine) World() donburi.World { return e.ecs.World }

// Scheduler exposes the loop flag
func (e *Engine) Scheduler() *Scheduler { return e.scheduler }

// Events returns what happened during the last tick
func (e *Engine) Events() []cfg.EventID { return e.events }

// State returns a copy of the run's scalar state
func (e *Engine) State() components.SimulationData { return *e.simulation() }

// Running reports whether a run is in progress
func (e *Engine) Running() bool { return e.simulation().Running }

// GameOver reports whether the last run has ended
func (e *Engine) GameOver() bool { return e.simulation().GameOver }

// HighScore returns the best score known to the engine
func (e *Engine) HighScore() int { return e.highScore }

// Runs returns how many runs have been started
func (e *Engine) Runs() int { return e.runs }

// Size returns the current viewport size
func (e *Engine) Size() (float64, float64) { return e.width, e.height }
