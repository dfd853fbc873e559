package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/maps"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var (
	flagMap        string
	flagMapFile    string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game.

Controls:
  Arrows/WASD/hjkl - Move
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit
  R/Enter          - Start over after game over

Difficulty options:
  easy   - Ghosts move a third slower
  normal - Configured speed
  hard   - Ghosts move a third faster

Examples:
  pacman play
  pacman play --map tiny
  pacman play --map-file ./maze.yaml --difficulty hard
  pacman play --config ./my-pacman.yaml --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "", "Built-in map id (see 'pacman maps')")
	playCmd.Flags().StringVar(&flagMapFile, "map-file", "", "Path to a map YAML file")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
}

// runPlay returns errors instead of exiting so the deferred log file and
// speaker cleanup always run.
func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !preset.Valid() {
			return fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	// Command line map selection overrides the config file
	mapID, mapFile := cfg.Map.ID, cfg.Map.File
	if flagMap != "" || flagMapFile != "" {
		mapID, mapFile = flagMap, flagMapFile
	}
	layout, err := maps.Resolve(mapID, mapFile)
	if err != nil {
		return fmt.Errorf("%w (run 'pacman maps' to see available maps)", err)
	}

	game, err := pacman.New(cfg, layout)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sound, err := audio.NewPlayer(audio.Config{
		Enabled:    cfg.Sound.Enabled,
		Volume:     cfg.Sound.Volume,
		SampleRate: cfg.Sound.SampleRate,
	})
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer sound.Close()

	logger.Debug("starting",
		"map", layout.ID,
		"difficulty", cfg.Difficulty,
		"threshold", cfg.EffectiveThreshold(),
		"sound", sound.Enabled(),
	)

	if err := tui.Run(game, rc, tui.Options{Logger: logger, Sound: sound}); err != nil {
		logger.Error("tui exited", "error", err)
		return err
	}
	return nil
}
