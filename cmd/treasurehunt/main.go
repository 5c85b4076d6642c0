package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/logging"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision boxes and log at debug level")
	levelName := flag.String("level", "treasure", "level name in levels/ (basename, .json optional)")
	framesDir := flag.String("frames", "", "directory of <archetype>/<status>/*.png frames; placeholders fill the gaps")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("treasurehunt")

	game, err := NewGame(Options{
		Level:     *levelName,
		FramesDir: *framesDir,
		Debug:     *debug,
		Watch:     *watch,
		Mute:      *mute,
	}, logger)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
