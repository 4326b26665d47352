package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mgrishin/arcade-hub/internal/audio"
	"github.com/mgrishin/arcade-hub/internal/core"
	"github.com/mgrishin/arcade-hub/internal/games/bulletbounce"
	"github.com/mgrishin/arcade-hub/internal/games/ghostchase"
	"github.com/mgrishin/arcade-hub/internal/games/stackdash"
	"github.com/mgrishin/arcade-hub/internal/platform/tui"
	"github.com/mgrishin/arcade-hub/internal/registry"
	"github.com/mgrishin/arcade-hub/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D or Left/Right  - Move
  Space/W/Up         - Jump
  P/Esc              - Pause
  M                  - Toggle sound
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play stackdash
  arcade play ghostchase --difficulty easy
  arcade play bulletbounce --difficulty hard
  arcade play stackdash --seed 42
  arcade play stackdash --config ./my-stackdash.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags forwards the config and difficulty flags to the selected
// game package before the game instance is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "stackdash":
		stackdash.SetConfigPath(flagConfig)
		stackdash.SetDifficultyPreset(flagDifficulty)
	case "ghostchase":
		ghostchase.SetConfigPath(flagConfig)
		ghostchase.SetDifficultyPreset(flagDifficulty)
	case "bulletbounce":
		bulletbounce.SetConfigPath(flagConfig)
		bulletbounce.SetDifficultyPreset(flagDifficulty)
	}
}

// newSoundPlayer sets up the audio player for local play. Returns a muted
// player when the audio device is unavailable so games keep working.
func newSoundPlayer() *audio.Player {
	sound := audio.NewPlayer()
	if flagMute {
		sound.SetMuted(true)
		return sound
	}
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		sound.SetMuted(true)
	}
	return sound
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up sound
	sound := newSoundPlayer()

	// Run the game
	runErr := tui.Run(game, store, sound, cfg)

	// Cleanup before potential exit
	sound.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
