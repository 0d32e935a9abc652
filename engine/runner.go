package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

// Sounds receives the audio cues of a run
type Sounds interface {
	PlayEat()
	PlayDeath()
	ToggleMute() bool
}

type silentSounds struct{}

func (silentSounds) PlayEat()         {}
func (silentSounds) PlayDeath()       {}
func (silentSounds) ToggleMute() bool { return true }

// Options tune the driver, zero values fall back to the defaults
type Options struct {
	TickInterval  time.Duration
	BlinkCount    int
	BlinkInterval time.Duration

	Sounds Sounds
	Keys   *input.KeyTable
	Logger *log.Logger
}

const (
	DefaultTickInterval  = 100 * time.Millisecond
	DefaultBlinkInterval = 500 * time.Millisecond

	eventBufferSize = 100
)

// Runner drives one game on a terminal screen
type Runner struct {
	// ===== Immutable After Init =====
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	sounds   Sounds
	logger   *log.Logger
	opts     Options
	session  string

	// ===== Channels =====
	// Written by the event pump only
	events chan tcell.Event

	// ===== Run-Loop Exclusive =====
	// Every call into game happens on the goroutine executing Run
	game *game.Game
}

// NewRunner wires a game to an initialized screen
func NewRunner(screen tcell.Screen, g *game.Game, opts Options) *Runner {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.BlinkCount > 0 && opts.BlinkInterval <= 0 {
		opts.BlinkInterval = DefaultBlinkInterval
	}
	if opts.Sounds == nil {
		opts.Sounds = silentSounds{}
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Runner{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		keys:     opts.Keys,
		sounds:   opts.Sounds,
		logger:   opts.Logger,
		opts:     opts,
		session:  uuid.NewString(),
		events:   make(chan tcell.Event, eventBufferSize),
		game:     g,
	}
}

// Session identifies this run in logs
func (r *Runner) Session() string {
	return r.session
}

// Run ticks the game until it ends, a quit key is pressed or ctx is cancelled.
// Only a failed tick is reported as an error.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	core.Go(func() { r.pumpEvents(ctx) })

	r.logf("start: board %dx%d, tick %s", r.game.Board().Rows, r.game.Board().Columns, r.opts.TickInterval)
	r.game.Render(r.renderer)

	ticker := time.NewTicker(r.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logf("cancelled: %v", ctx.Err())
			return nil

		case ev := <-r.events:
			if !r.handleEvent(ev) {
				r.logf("quit at length %d", r.game.Snake().Len())
				return nil
			}

		case <-ticker.C:
			if err := r.step(); err != nil {
				return err
			}
			if r.game.IsOver() {
				r.logf("game over at %v, length %d", r.game.Snake().Head(), r.game.Snake().Len())
				r.mourn(ctx)
				return nil
			}
		}
	}
}

// step advances one tick and redraws
func (r *Runner) step() error {
	outcome, err := r.game.Tick()
	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}

	switch outcome {
	case game.OutcomeAte:
		r.logf("ate, head %v, pending growth %d", r.game.Snake().Head(), r.game.Snake().PendingGrowth())
		r.sounds.PlayEat()
	case game.OutcomeDied:
		r.sounds.PlayDeath()
	}

	r.game.Render(r.renderer)
	return nil
}

// handleEvent applies an input event, returns false when the player quits
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := r.keys.Translate(ev)
		switch intent.Type {
		case input.IntentQuit:
			return false
		case input.IntentToggleEffectMute:
			r.logf("muted: %v", r.sounds.ToggleMute())
		case input.IntentTurn:
			if err := r.game.SetDirection(intent.Direction); err != nil {
				r.logf("turn rejected: %v", err)
			}
		}

	case *tcell.EventResize:
		r.renderer.Sync()
		r.game.Render(r.renderer)
	}
	return true
}

// mourn blinks the final board, then leaves it on screen under a banner
func (r *Runner) mourn(ctx context.Context) {
	banner := fmt.Sprintf(" GAME OVER  length %d ", r.game.Snake().Len())
	bannerRow := r.game.Board().Rows / 2

	for iter := 0; iter < r.opts.BlinkCount; iter++ {
		r.renderer.Clear()
		r.renderer.Show()
		if !r.wait(ctx, r.opts.BlinkInterval) {
			return
		}

		r.game.Render(r.renderer)
		r.renderer.DrawBanner(bannerRow, banner)
		r.renderer.Show()
		if !r.wait(ctx, r.opts.BlinkInterval) {
			return
		}
	}

	r.game.Render(r.renderer)
	r.renderer.DrawBanner(bannerRow, banner)
	r.renderer.Show()
}

// wait sleeps for d, returns false if cut short by cancellation or a quit key
func (r *Runner) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			return true
		case ev := <-r.events:
			if key, ok := ev.(*tcell.EventKey); ok && r.keys.Translate(key).Type == input.IntentQuit {
				return false
			}
		}
	}
}

// pumpEvents forwards terminal events to the run loop until the screen is finalized or ctx ends
func (r *Runner) pumpEvents(ctx context.Context) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) logf(format string, args ...any) {
	r.logger.Printf("[%s] "+format, append([]any{r.session[:8]}, args...)...)
}
