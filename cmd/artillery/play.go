package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-artillery/internal/assets"
	"github.com/vovakirdan/tui-artillery/internal/audio"
	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/core"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery"
	"github.com/vovakirdan/tui-artillery/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS != 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLog, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting",
		"fps", cfg.Display.FPS,
		"seed", flagSeed,
		"enemies", cfg.Game.Enemies,
		"assets", cfg.Assets.Dir,
		"audio", cfg.Audio.Enabled,
	)

	dir, err := config.ExpandHome(cfg.Assets.Dir)
	if err != nil {
		return err
	}
	reg, err := assets.Load(dir)
	if err != nil {
		logger.Error("loading assets", "error", err)
		return err
	}
	logger.Info("assets loaded", "dir", dir, "sample_rate", reg.Format.SampleRate)

	var sounds core.SoundPlayer = audio.Silent{}
	if cfg.Audio.Enabled {
		sp := audio.NewSpeaker(reg, cfg.Audio.Volume, logger)
		if err := sp.Init(); err != nil {
			logger.Error("opening audio device", "error", err)
			return err
		}
		defer sp.Close()
		sounds = sp
		logger.Info("audio ready", "volume", cfg.Audio.Volume)
	}

	game := artillery.New(cfg.Game, artillery.NewResources(reg, sounds), core.SystemClock{})
	game.SetLogger(logger)

	// Get terminal size; Bubble Tea sends the real size on start too
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     flagSeed,
	}
	opts := tui.Options{
		Keys:       tui.NewKeyMapper(cfg.Keys),
		Background: cfg.Display.Background,
		Logger:     logger,
	}

	runErr := tui.Run(game, rc, opts)
	logger.Info("shutdown", "score", game.State().Score, "game_over", game.State().GameOver)
	if runErr != nil {
		logger.Error("running game", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
