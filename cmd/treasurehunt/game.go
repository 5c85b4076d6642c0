package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/level"
	"github.com/milk9111/treasurehunt/levels"
	"github.com/milk9111/treasurehunt/prefabs"
	"github.com/milk9111/treasurehunt/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	Level     string
	FramesDir string
	Debug     bool
	Watch     bool
	Mute      bool
}

type Game struct {
	opts   Options
	log    *zap.Logger
	layout *level.Layout
	sim    *sim.Simulation
	fx     *effects
	cache  *imageCache

	reloader *reloader
	frames   int
}

func NewGame(opts Options, logger *zap.Logger) (*Game, error) {
	layout, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	var snd *sounds
	if !opts.Mute {
		snd = newSounds()
	}
	g := &Game{
		opts:   opts,
		log:    logger,
		layout: layout,
		fx:     newEffects(logger, snd),
		cache:  newImageCache(),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	if opts.Watch {
		r, err := newReloader(logger)
		if err != nil {
			return nil, fmt.Errorf("watch prefabs: %w", err)
		}
		g.reloader = r
	}
	return g, nil
}

// restart loads every prefab and builds a fresh simulation of the level.
func (g *Game) restart() error {
	specs, err := prefabs.LoadArchetypes(context.Background())
	if err != nil {
		return err
	}
	lib, err := prefabs.BuildLibrary(specs, g.opts.FramesDir)
	if err != nil {
		return err
	}

	s, err := sim.New(sim.Config{
		Layout:  g.layout,
		Specs:   specs,
		Library: lib,
		Effects: g.fx,
		Logger:  g.log,
	})
	if err != nil {
		return err
	}
	g.sim = s
	g.cache.reset()
	g.fx.reset()
	return nil
}

func (g *Game) Close() {
	if g.reloader != nil {
		_ = g.reloader.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.reloader != nil && g.reloader.poll() {
		if err := g.restart(); err != nil {
			g.log.Warn("prefab reload failed", zap.Error(err))
		} else {
			g.log.Info("prefabs reloaded", zap.String("session", g.sim.ID()))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.sim.Outcome() != component.OutcomeNone {
		if err := g.restart(); err != nil {
			return err
		}
	}

	g.sim.Step(1/float64(ebiten.TPS()), readInput())
	g.fx.update()
	return nil
}

func readInput() component.Input {
	return component.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   ebiten.IsKeyPressed(ebiten.KeySpace),
		Attack: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyJ),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := g.camera()
	g.drawLevel(screen, camX, camY)
	g.drawSprites(screen, camX, camY)
	g.fx.draw(screen, camX, camY)
	g.drawHUD(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
