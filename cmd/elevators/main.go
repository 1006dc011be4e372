// elevators is an incremental building-management game: tips from
// delivered passengers buy floors, elevators and capacity.
//
// Usage:
//
//	elevators play            - Play in the terminal
//	elevators serve           - Start SSH server for remote play
//	elevators web             - Serve the HTTP API and websocket stream
//	elevators tick            - Apply command JSON lines from stdin, print states
//	elevators state [run-id]  - Print a fresh or stored game state
//	elevators runs            - Show the best recorded runs
//	elevators controllers     - List elevator controllers
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible games (0 = time-based)
//	--config <path>      - Game config YAML
//	--preset <name>      - Difficulty preset: easy, normal, hard
//	--controller <id>    - Elevator controller, overrides the config
//	--db <path>          - Run database (default: ~/.elevators/elevators.db)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/universal-elevators/internal/config"
	"github.com/vovakirdan/universal-elevators/internal/storage"

	// Import controllers to register them
	_ "github.com/vovakirdan/universal-elevators/internal/controllers/nearest"
	_ "github.com/vovakirdan/universal-elevators/internal/controllers/random"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagPreset     string
	flagController string
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elevators",
	Short: "Universal Elevators - run a building, one tick at a time",
	Long: `Universal Elevators is an incremental game about a building and its
elevators. Passengers tip when they leave; spend the tips on more floors,
more elevators and more capacity.

Available commands:
  play         - Play in the terminal
  serve        - Start SSH server for remote play
  web          - Serve the game over HTTP and websockets
  tick         - Drive a game with command JSON lines on stdin
  state        - Print a game state
  runs         - View the best recorded runs
  controllers  - List elevator controllers

Examples:
  elevators play
  elevators play --preset easy --controller nearest
  elevators serve --ssh :2222
  elevators web --addr :8080
  echo '{"collect_tips":true,"append_floor":false,"append_elevator":false,"add_floor_capacity":false,"add_elevator_capacity":false}' | elevators tick`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagController, "controller", "", "Elevator controller (see 'elevators controllers')")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.elevators/elevators.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(tickCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(controllersCmd)
}

// loadConfig resolves the game config from --config, --preset and
// --controller.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagController != "" {
		cfg.Controller = flagController
	}
	return cfg, cfg.Validate()
}

// mustLoadConfig is loadConfig for Run funcs.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the run database. Games still run without it, so
// failures are only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
