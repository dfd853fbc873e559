// pacman is a terminal maze game: eat every pellet and stay away from the
// wandering ghosts.
//
// Usage:
//
//	pacman play              - Play on the default map
//	pacman play --map tiny   - Play a built-in map
//	pacman maps              - List built-in maps
//	pacman config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (the game owns the terminal)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "pacman",
	SilenceErrors: true, // main prints them
	SilenceUsage:  true,
	Short: "Pac-Man in your terminal",
	Long: `A terminal maze game. Steer through the maze, eat every pellet and
avoid the ghosts: touching one ends the game.

Available commands:
  play     - Start a game
  maps     - Show built-in maps
  config   - Print the default configuration

Examples:
  pacman play
  pacman play --map open --difficulty hard
  pacman play --map-file ./my-maze.yaml
  pacman --seed 42 --log-file pacman.log play`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. Without a log file everything is
// discarded, since stdout and stderr belong to the TUI while it runs.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           level,
	})
	return logger, closeFn, nil
}
