package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ledger"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/sound"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up   - Flap (also starts the game)
  P/Esc      - Pause / resume
  R          - Restart (after game over)
  Enter      - Close the open overlay
  T          - Show the best score
  X          - Reset the best score (while an overlay is open)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider gaps at every tier
  normal - Gaps as configured
  hard   - Narrower gaps at every tier
  fixed  - No narrowing, the base gap for the whole game

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("flappy", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: flagTick,
		Seed:         flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		// Continue without storage - game still works
	}

	l := ledger.New(store, gameCfg.Ledger.Key, "", logger)
	player := sound.NewPlayer(sound.Options{
		Volume: gameCfg.Sound.Volume,
		Mute:   flagMute || !gameCfg.Sound.Enabled,
		Logger: logger,
	})

	logger.Info("starting game", "width", width, "height", height, "seed", flagSeed, "difficulty", flagDifficulty)

	runErr := tui.Run(tui.Options{
		Config:        gameCfg,
		Runtime:       rt,
		Ledger:        l,
		Sound:         player,
		Logger:        logger,
		ScreenshotDir: flappyDir("screenshots"),
	})

	// Flush pending writes before closing the store
	player.Close()
	l.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
