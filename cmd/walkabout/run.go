package main

import (
	"fmt"
	"os"
	"time"

	"walkabout/internal/config"
	"walkabout/internal/debug"
	"walkabout/internal/graphics"
	"walkabout/internal/hud"
	"walkabout/internal/input"
	"walkabout/internal/logger"
	"walkabout/internal/render"
	"walkabout/internal/scene"
	"walkabout/internal/sim"
	"walkabout/internal/texgen"
)

func run(cfg config.Config) error {
	log := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Console: os.Stdout,
	})
	defer log.Close()

	bindings, err := input.NewBindings(cfg.Keys.Forward, cfg.Keys.Backward, cfg.Keys.Left, cfg.Keys.Right)
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	world := scene.Build(cfg)
	stone := texgen.Stone(texgen.Options{
		Size:     cfg.Texture.Size,
		Speckles: cfg.Texture.Speckles,
		Streaks:  cfg.Texture.Streaks,
		Seed:     cfg.Texture.Seed,
	})
	log.Info().
		Int("columns", len(world.Columns)).
		Int("texture", stone.Bounds().Dx()).
		Msg("scene built")

	state := sim.New(cfg, log.Logger)
	loop := sim.NewLoop(state, cfg.Movement.MaxFrameDelta)
	pointer := graphics.NewPointer(state, bindings)
	renderer := render.New(world, stone)
	overlay := hud.New(state, log)
	dbg := debug.New(state, cfg.Debug.ShowFPS, cfg.Debug.ShowMemAlloc, cfg.Debug.ShowRig)

	graphics.Run(cfg.Window, renderer.Background, graphics.Hooks{
		Resize: func(w, h int32) {
			state.Resize(w, h)
			log.Debug().Int32("width", w).Int32("height", h).Msg("viewport resized")
		},
		Update: func() {
			pointer.Update()
			dbg.Update()
			loop.Frame(time.Now())
		},
		Draw: func() {
			renderer.Draw(state)
			overlay.Draw()
			dbg.Draw()
		},
		Close: renderer.Unload,
	})
	log.Info().Msg("window closed")
	return nil
}
