// paddleball is a terminal ball-and-paddle arena with four rule variants.
//
// Usage:
//
//	paddleball list                 - List variants
//	paddleball play [variant]       - Play a variant, or pick one from a menu
//	paddleball serve                - Serve the menu over SSH
//	paddleball simulate [variant]   - Run the simulation headless
//	paddleball config [variant]     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frames per second (default: 60)
//	--config <path>       - Arena config YAML
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"

	// Registers the variants
	_ "github.com/vovakirdan/paddleball/internal/games/paddleball"
)

var (
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddleball",
	Short: "Paddleball - bounce a ball around a terminal arena",
	Long: `Paddleball is a single-screen ball game: steer the paddle with the mouse
to keep the ball in play and, in the brick variant, break the grid.

Available commands:
  list      - Show all variants
  play      - Play a variant (menu if none given)
  serve     - Start SSH server for remote play
  simulate  - Run a variant without a terminal
  config    - Print the effective configuration

Examples:
  paddleball list
  paddleball play bricks
  paddleball play --config ./arena.yaml
  paddleball serve --ssh :2222
  paddleball simulate momentum --ticks 10000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames per second")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error the way every command reports it and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadArena loads the configuration selected by --config.
func loadArena() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// variantArg resolves an optional variant argument.
func variantArg(args []string) config.Variant {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	v, err := config.ParseVariant(name)
	if err != nil {
		fatal("%v\nRun 'paddleball list' to see available variants.", err)
	}
	return v
}

// newLogger builds the root logger. Logs go to --log-file when set and to
// fallback otherwise; the returned closer releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatal("invalid --log-level %q", flagLogLevel)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fatal("cannot open log file: %v", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer
}
