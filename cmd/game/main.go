package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/platcore/internal/application/game"
	"github.com/younwookim/platcore/internal/application/replay"
	"github.com/younwookim/platcore/internal/application/scene/playing"
	"github.com/younwookim/platcore/internal/infrastructure/config"
	"github.com/younwookim/platcore/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded file headless and log the final state")
	stageFlag := flag.String("stage", "demo", "Stage to load from configs/stages")
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	watchFlag := flag.Bool("watch", false, "Reload physics.json and the stage on change (needs -config)")
	logFile := flag.String("log", "", "Also write logs to this file, rotated")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel, File: *logFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logging.Sync(logger)

	loader, err := newLoader(*configDir)
	if err != nil {
		logger.Fatal("failed to open configs", zap.Error(err))
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			logger.Fatal("failed to load replay", zap.String("path", *replayFlag), zap.Error(err))
		}
		result, err := runReplay(loader, data, logger)
		if err != nil {
			logger.Fatal("replay failed", zap.Error(err))
		}
		result.Log(logger)
		return
	}

	// Load configurations
	cfg, err := loader.LoadAll(*stageFlag)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	var watcher *config.Watcher
	if *watchFlag {
		if *configDir == "" {
			logger.Fatal("-watch needs -config: embedded configs cannot change")
		}
		watcher, err = config.NewWatcher(*configDir, filepath.Join(*configDir, "stages"))
		if err != nil {
			logger.Fatal("failed to watch configs", zap.Error(err))
		}
	}

	scene, err := playing.New(playing.Options{
		Physics:    cfg.Physics,
		Stage:      cfg.Stage,
		Loader:     loader,
		Watcher:    watcher,
		RecordPath: *recordFlag,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to create scene", zap.Error(err))
	}

	display := cfg.Physics.Display
	g := game.New(scene, game.Options{
		ScreenWidth:  display.ScreenWidth,
		ScreenHeight: display.ScreenHeight,
		TickRate:     display.TickRate,
		Logger:       logger,
	})

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("platcore")
	ebiten.SetTPS(display.TickRate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
