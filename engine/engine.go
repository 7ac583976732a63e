package engine

import (
	"context"
	"fmt"

	"github.com/spaghettifunk/vitrum/engine/assets"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/platform"
	"github.com/spaghettifunk/vitrum/engine/renderer"
	"github.com/spaghettifunk/vitrum/engine/systems"
	"golang.org/x/exp/rand"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	platform      platform.Platform
	assetManager  *assets.AssetManager
	systemManager *systems.SystemManager
	renderer      *renderer.Renderer
	width         uint32
	height        uint32
	clock         *core.Clock
	lastTime      float64
	frameNumber   uint64
}

// Option tweaks an engine before it is initialized.
type Option func(e *Engine)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c *core.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// New builds an engine for g on top of the given platform and renderer
// backend. rng seeds the per-part velocities and may be nil.
func New(g *Game, p platform.Platform, backend renderer.RendererBackend, rng *rand.Rand, opts ...Option) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil || g.ApplicationConfig.Config == nil {
		return nil, fmt.Errorf("%w: game has no application config", core.ErrInvalidConfig)
	}
	cfg := g.ApplicationConfig.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	sm, err := systems.NewSystemManager(cfg, am, rng)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	g.SystemManager = sm

	e := &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		clock:         core.NewClock(),
		platform:      p,
		assetManager:  am,
		systemManager: sm,
		renderer:      renderer.New(backend),
		isRunning:     false,
		isSuspended:   false,
		width:         cfg.App.Width,
		height:        cfg.App.Height,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig.Config

	level, err := core.ParseLogLevel(cfg.App.LogLevel)
	if err != nil {
		return err
	}
	core.SetLogLevel(level)

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	if err := e.platform.Startup(e.gameInstance.ApplicationConfig.Name,
		cfg.App.PosX, cfg.App.PosY, cfg.App.Width, cfg.App.Height); err != nil {
		return err
	}

	// initialize subsystems
	if err := e.assetManager.Initialize(cfg.Assets.Dir, cfg.Assets.Watch); err != nil {
		return err
	}
	e.assetManager.OnChange(e.systemManager.SceneSystem.OnAssetChanged)

	if err := e.renderer.Initialize(cfg.ToRenderConfig()); err != nil {
		return err
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	if cfg.Assets.Scene != "" {
		e.systemManager.SceneSystem.Load(cfg.Assets.Scene)
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run drives the frame loop until the platform closes, a quit event fires,
// ctx is cancelled or the configured frame count is reached.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrNotInitialized
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true

	cfg := e.gameInstance.ApplicationConfig.Config
	targetFrameSeconds := 1.0 / float64(cfg.App.TargetFPS)

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning {
		if ctx.Err() != nil {
			core.LogInfo("Context cancelled, stopping.")
			break
		}
		if !e.platform.PumpMessages() {
			e.isRunning = false
			break
		}
		if e.isSuspended {
			e.platform.Sleep(targetFrameSeconds * 1000)
			// Time spent minimized is not animated.
			e.clock.Update()
			e.lastTime = e.clock.Elapsed()
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStartTime := e.platform.GetAbsoluteTime()

		x, y := core.InputGetPointer()
		if err := e.systemManager.Update(currentTime, delta, x, y); err != nil {
			return err
		}

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("Game update failed, shutting down.")
				return err
			}
		}

		packet := e.systemManager.BuildPacket(e.frameNumber, currentTime, delta)

		// Call the game's render routine.
		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(packet, delta); err != nil {
				core.LogError("Game render failed, shutting down.")
				return err
			}
		}

		if err := e.renderer.DrawFrame(packet); err != nil {
			return err
		}

		// Figure out how long the frame took and, if below the target, give the rest back to the OS.
		frameElapsedTime := e.platform.GetAbsoluteTime() - frameStartTime
		core.MetricsUpdate(frameElapsedTime)
		if remainingSeconds := targetFrameSeconds - frameElapsedTime; remainingSeconds > 0 && cfg.App.LimitFrames {
			e.platform.Sleep(remainingSeconds*1000 - 1)
		}

		// Input is the last thing to be updated before this frame ends.
		core.InputUpdate(delta)

		e.lastTime = currentTime
		e.frameNumber++
		if cfg.App.MaxFrames > 0 && e.frameNumber >= cfg.App.MaxFrames {
			e.isRunning = false
		}
	}
	e.isRunning = false
	return nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	// The watcher submits reloads to the job system, so it stops first.
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageUninitialized
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// FrameNumber is the number of frames completed so far.
func (e *Engine) FrameNumber() uint64 {
	return e.frameNumber
}

func (e *Engine) onEvent(ctx core.EventContext, listener interface{}) bool {
	if ctx.Type == core.EVENT_CODE_APPLICATION_QUIT {
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(ctx core.EventContext, listener interface{}) bool {
	ke, ok := ctx.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", ctx.Type)
		return false
	}
	switch ke.KeyCode {
	case core.KEY_ESCAPE:
		// Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		return true
	case core.KEY_R:
		if name := e.systemManager.SceneSystem.Current(); name != "" {
			core.LogInfo("Reloading scene %s.", name)
			e.systemManager.SceneSystem.Load(name)
		}
		return true
	}
	return false
}

func (e *Engine) onResized(ctx core.EventContext, listener interface{}) bool {
	re, ok := ctx.Data.(*core.ResizeEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", ctx.Type)
		return false
	}
	width, height := re.Width, re.Height
	if width == e.width && height == e.height {
		return false
	}
	e.width, e.height = width, height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return false
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return false
}
