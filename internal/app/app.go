// Package app runs the interactive shatterbox window: input, tick, present.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shatterbox/internal/config"
	"github.com/Faultbox/shatterbox/internal/engine/debug"
	"github.com/Faultbox/shatterbox/internal/engine/input"
	"github.com/Faultbox/shatterbox/internal/engine/scene"
	"github.com/Faultbox/shatterbox/internal/engine/shatter"
	"github.com/Faultbox/shatterbox/internal/engine/surface/glsurface"
	"github.com/Faultbox/shatterbox/internal/engine/window"
	"github.com/Faultbox/shatterbox/internal/logger"
)

// App is the windowed application.
type App struct {
	cfg     *config.Config
	running bool

	window     *window.Window
	surface    *glsurface.Surface
	input      *input.Input
	controller *input.Controller
	scene      *scene.Scene
	shots      *debug.ScreenshotCapture
	stats      *StatsLogger
	log        *zap.Logger
}

// New creates the window, GL surface and scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	rng, seed := shatter.NewSource(cfg.Shatter.Seed)
	sc, err := scene.New(cfg.SceneConfig(), rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	a.scene = sc

	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Surface needs the GL context created by the window
	w, h := a.window.DrawableSize()
	a.surface, err = glsurface.New(w, h)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create surface: %w", err)
	}

	a.input = input.New()
	a.controller = input.NewController(sc, sc.Main.Color)
	a.shots = debug.NewScreenshotCapture("screenshots", "shatterbox")
	a.stats = NewStatsLogger(a.log, time.Second)

	a.log.Info("app initialized",
		zap.Uint64("seed", seed),
		zap.Int("divisions", cfg.Shatter.Divisions),
		zap.Int("width", w),
		zap.Int("height", h),
	)
	return a, nil
}

// Run starts the main loop. It returns when the window is closed.
func (a *App) Run() error {
	a.running = true
	a.log.Info("starting main loop")

	for a.running {
		screenshot := false

		quit := a.input.Update()
		for _, event := range a.input.Events() {
			switch a.controller.Handle(event) {
			case input.ActionQuit:
				a.running = false
			case input.ActionResize:
				a.surface.Resize(a.window.DrawableSize())
			case input.ActionScreenshot:
				screenshot = true
			}
		}
		if quit || !a.running {
			break
		}

		frame := a.scene.Tick(a.surface)
		a.surface.Flush()

		if screenshot {
			a.capture()
		}

		a.window.SwapBuffers()
		a.stats.Add(frame, time.Now())
	}

	return nil
}

func (a *App) capture() {
	w, h := a.surface.Size()
	path, err := a.shots.CaptureFromPixels(a.surface.ReadPixels(), w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases window and GL resources.
func (a *App) Close() {
	a.log.Info("closing app")

	if a.surface != nil {
		a.surface.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
