package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/vitrum/engine"
	"github.com/spaghettifunk/vitrum/engine/config"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/platform"
	"github.com/spaghettifunk/vitrum/engine/renderer/headless"
	"github.com/spaghettifunk/vitrum/showcase"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "assets/config.toml", "path to the TOML configuration")
	headlessFlag := flag.Bool("headless", false, "run without a window")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until quit)")
	seed := flag.Uint64("seed", 0, "seed for the per-part velocities, overrides app.seed (0 keeps the configured seed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("No configuration at %s, using defaults.", *configPath)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		core.LogFatal("failed to load configuration: %s", err)
	}
	if *headlessFlag {
		cfg.App.Headless = true
	}
	if *frames > 0 {
		cfg.App.MaxFrames = *frames
	}

	if *seed != 0 {
		cfg.App.Seed = *seed
	}

	var rng *rand.Rand
	if cfg.App.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.App.Seed))
	}

	var p platform.Platform
	if cfg.App.Headless {
		p = platform.NewHeadless(func(t float64) (float32, float32) {
			return math32.Sin(float32(t) * 0.7), 0.6 * math32.Sin(float32(t)*0.5)
		})
	} else {
		p = platform.NewWindow()
	}

	game := showcase.NewCoinGame(cfg)
	e, err := engine.New(game.Game, p, headless.New(uint64(cfg.App.TargetFPS)), rng)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	// capture sigterm and other system calls here
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	if runErr != nil {
		core.LogError(runErr.Error())
		os.Exit(1)
	}
}
