package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/game"
)

// cliFlags holds command-line overrides, applied on top of file and environment config
type cliFlags struct {
	configPath string
	rows       int
	cols       int
	tick       time.Duration
	seed       uint64
	mute       bool
	debug      bool

	set map[string]bool
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Path to an HCL config file")
	fs.IntVar(&f.rows, "rows", game.DefaultRows, "Board rows")
	fs.IntVar(&f.cols, "cols", game.DefaultColumns, "Board columns")
	fs.DurationVar(&f.tick, "tick", engine.DefaultTickInterval, "Time between ticks")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed for apple placement (0 = time based)")
	fs.BoolVar(&f.mute, "mute", false, "Disable sound")
	fs.BoolVar(&f.debug, "debug", false, "Write debug logs to logs/snake.log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overrides cfg with flags given explicitly on the command line
func (f *cliFlags) apply(cfg *config.Config) {
	if f.set["rows"] {
		cfg.Rows = f.rows
	}
	if f.set["cols"] {
		cfg.Columns = f.cols
	}
	if f.set["tick"] {
		cfg.TickInterval = f.tick
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["mute"] {
		cfg.Sound = !f.mute
	}
	if f.set["debug"] {
		cfg.Debug = f.debug
	}
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cli, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		exitf("%v", err)
	}

	cfg, err := config.Load(cli.configPath)
	if err != nil {
		exitf("%v", err)
	}
	cli.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		exitf("%v", err)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	g, err := run(cfg)
	if err != nil {
		exitf("%v", err)
	}

	if g.IsOver() {
		fmt.Printf("Game over. Final length: %d\n", g.Snake().Len())
	}
}

// run owns the terminal for the duration of one game
func run(cfg config.Config) (*game.Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	sounds := audio.NewSoundManager()
	if cfg.Sound {
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(cfg.Board(), game.NewRandom(cfg.Seed))
	runner := engine.NewRunner(screen, g, engine.Options{
		TickInterval:  cfg.TickInterval,
		BlinkCount:    cfg.BlinkCount,
		BlinkInterval: cfg.BlinkInterval,
		Sounds:        sounds,
		Logger:        log.Default(),
	})
	log.Printf("session %s seed %d", runner.Session(), cfg.Seed)

	if err := runner.Run(ctx); err != nil {
		return g, err
	}
	return g, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
