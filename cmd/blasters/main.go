// blasters is a pair of terminal arcade shooters: a wrap-around asteroid
// field and a scrolling trench run.
//
// Usage:
//
//	blasters list              - List available games
//	blasters play <game>       - Play a game
//	blasters menu              - Start menu to pick games interactively
//	blasters scores <game>     - Show high scores for a game
//	blasters best <game>       - Print the best score for a game
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.blasters/scores.db)
//	--log <path>        - Log file ("" disables logging)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blasters/internal/config"
	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/games/asteroids"
	"github.com/vovakirdan/tui-blasters/internal/games/trench"
	"github.com/vovakirdan/tui-blasters/internal/intermission"
	"github.com/vovakirdan/tui-blasters/internal/logging"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blasters",
	Short: "Blasters - arcade shooters in your terminal",
	Long: `Blasters is a pair of arcade shooters for the terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores
  best     - Print the best score

Examples:
  blasters list
  blasters play asteroids
  blasters play trench --difficulty hard
  blasters menu
  blasters scores trench`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", logging.DefaultPath, "Log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
}

// openLogger opens the session log. Logging problems never stop play.
func openLogger() (*log.Logger, io.Closer) {
	if flagLogPath == "" {
		return logging.Discard(), io.NopCloser(nil)
	}
	logger, closer, err := logging.New(logging.Options{Path: flagLogPath, Level: flagLogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), closer
	}
	return logger, closer
}

// openStore opens score storage. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame passes the config path and difficulty to the game package
// and returns the break schedule from the game's config.
func configureGame(gameID string) config.BreakConfig {
	switch gameID {
	case asteroids.ID:
		asteroids.SetConfigPath(flagConfig)
		asteroids.SetDifficultyPreset(flagDifficulty)
		if cfg, err := config.LoadAsteroids(flagConfig); err == nil {
			return cfg.Breaks
		}
	case trench.ID:
		trench.SetConfigPath(flagConfig)
		trench.SetDifficultyPreset(flagDifficulty)
		if cfg, err := config.LoadTrench(flagConfig); err == nil {
			return cfg.Breaks
		}
	}
	return config.BreakConfig{}
}

// newBreaks builds the intermission orchestrator for a schedule.
func newBreaks(b config.BreakConfig, logger *log.Logger) *intermission.Orchestrator {
	d := time.Duration(b.Seconds * float64(time.Second))
	return intermission.New(intermission.Timed{Duration: d}, logger)
}
