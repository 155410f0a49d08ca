package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/OpticalFlyer/canvasdesk/config"
	"github.com/OpticalFlyer/canvasdesk/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "debug logging and overlay")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Development = true
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: cfg.Logging.OutputPaths,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	source := "defaults"
	if *configPath != "" {
		source = *configPath
	}
	logger.Info("starting", zap.String("config", source), zap.Int("windows", len(cfg.Windows)))

	desk, err := newDesk(cfg, logger)
	if err != nil {
		logger.Fatal("setup failed", zap.Error(err))
	}
	desk.debugMode = *debug

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(desk); err != nil {
		logger.Fatal("game loop stopped", zap.Error(err))
	}
}
