package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/ledger"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagReset       bool
	flagPlayer      string
	flagTop         int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and session history",
	Long: `Display the best score and the top sessions of a player.

The local player is the default; players who connected over SSH are
listed by their SSH user name.

Examples:
  flappy scores
  flappy scores --player ssh:alice   # A player who connected over SSH
  flappy scores -i              # Browse all players interactively
  flappy scores --reset         # Clear the best score and history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the player's best score and history")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", ledger.LocalPlayer, "Player name")
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen view")
}

func runScores(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bestKey := func(player string) string {
		return ledger.KeyFor(gameCfg.Ledger.Key, player)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := resetScores(store, bestKey(flagPlayer)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared best score and history for %s\n", flagPlayer)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagPlayer, bestKey, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, bestKey(flagPlayer)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resetScores(store *storage.Store, key string) error {
	if err := store.ClearBestScore(key); err != nil {
		return err
	}
	return store.ClearScores(flagPlayer)
}

func printScores(store *storage.Store, key string) error {
	best, ok, err := store.BestScore(key)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(flagPlayer, flagTop)
	if err != nil {
		return err
	}

	fmt.Printf("Flappy - %s\n", flagPlayer)
	fmt.Println()
	if ok {
		fmt.Printf("Best: %d\n", best)
	} else {
		fmt.Println("Best: -")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.PlayerStats(flagPlayer)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Avg: %.1f\n", stats.Games, stats.AvgScore)
	}
	return nil
}
