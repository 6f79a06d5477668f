package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/invaders/config"
)

func main() {
	cfgPath := flag.String("config", "", "tuning file (YAML); edits apply while the game runs")
	debug := flag.Bool("debug", false, "enable debug overlay and verbose logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.String("path", *cfgPath), zap.Error(err))
	}

	var watcher *config.Watcher
	if *cfgPath != "" {
		watcher, err = config.NewWatcher(*cfgPath)
		if err != nil {
			logger.Warn("config watching disabled", zap.Error(err))
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(NewGame(cfg, *cfgPath, logger, watcher, *debug)); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
