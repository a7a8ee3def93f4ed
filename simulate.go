package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/engine"
	"github.com/automoto/cosmicdash/persistence"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)

	reportStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("51")).
		Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
)

type simulateOptions struct {
	frames     int
	runs       int
	tickRate   int
	autopilot  bool
	difficulty string
	quiet      bool
}

func newSimulateCmd(play *playOptions) *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play runs headlessly and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.frames < 0 {
				return fmt.Errorf("frames must not be negative, got %d", opts.frames)
			}
			if opts.runs <= 0 {
				return fmt.Errorf("runs must be positive, got %d", opts.runs)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return simulate(ctx, play.seed, opts)
		},
	}

	cmd.Flags().IntVar(&opts.frames, "frames", 3600, "frame limit per run (0 for no limit)")
	cmd.Flags().IntVar(&opts.runs, "runs", 1, "number of runs to play")
	cmd.Flags().IntVar(&opts.tickRate, "tps", 0, "steps per second (0 runs unpaced)")
	cmd.Flags().BoolVar(&opts.autopilot, "autopilot", true, "let the bot play")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "normal", "bot difficulty: easy, normal or hard")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "only print the final report")
	return cmd
}

func simulate(ctx context.Context, seed int64, opts simulateOptions) error {
	store := persistence.NewMemoryStore(0)
	e := engine.New(engine.Options{
		Seed:       seed,
		Store:      store,
		Autopilot:  opts.autopilot,
		Difficulty: config.ParseBotDifficulty(opts.difficulty),
	})
	e.Resize(float64(config.C.Width), float64(config.C.Height))

	for run := 0; run < opts.runs; run++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulation interrupted: %w", err)
		}

		e.Start()
		driver := engine.NewDriver(e, opts.tickRate)
		driver.StopOnGameOver = true
		if !opts.quiet {
			driver.OnFrame = printEvents
		}

		frames := driver.Run(ctx, opts.frames)
		fmt.Println(renderReport(e, frames))
	}

	saved, err := store.LoadHighScore()
	if err != nil {
		return fmt.Errorf("failed to read high score: %w", err)
	}
	accent.Printf("Best over %d run(s): %d\n", opts.runs, saved)
	return nil
}

func printEvents(e *engine.Engine) {
	state := e.State()
	for _, ev := range e.Events() {
		line := fmt.Sprintf("[%5d] %-14s score=%d mode=%s speed=%.2f", state.Frame, ev, state.Score, state.Mode, state.Speed)
		switch ev {
		case config.EventStart:
			accent.Println(line)
		case config.EventDeath:
			danger.Println(line)
		case config.EventNewHighScore:
			success.Println(line)
		case config.EventModeSwitch:
			warn.Println(line)
		case config.EventScore:
			neutral.Println(line)
		}
	}
}

func renderReport(e *engine.Engine, frames int) string {
	state := e.State()
	outcome := "survived"
	if state.GameOver {
		outcome = "crashed"
	}

	row := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(k), valueStyle.Render(v))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Run %d  %s", e.Runs(), state.RunID)),
		row("outcome", outcome),
		row("frames", strconv.Itoa(frames)),
		row("score", strconv.Itoa(state.Score)),
		row("mode", state.Mode.String()),
		row("speed", strconv.FormatFloat(state.Speed, 'f', 2, 64)),
		row("switches", strconv.Itoa(state.Switches)),
		row("high score", strconv.Itoa(e.HighScore())),
	)
	return reportStyle.Render(body)
}
