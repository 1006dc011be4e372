package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/universal-elevators/internal/core"
	"github.com/vovakirdan/universal-elevators/internal/host"
	"github.com/vovakirdan/universal-elevators/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Keys pressed between two ticks all apply on the next tick.

Controls:
  T          - Collect tips from the building
  F          - Buy a floor
  E          - Buy an elevator
  C          - Grow every floor's capacity
  V          - Grow every elevator's capacity
  P/Space    - Pause
  R          - Best runs
  Q/Ctrl+C   - Quit (the run is recorded)

Examples:
  elevators play
  elevators play --preset hard
  elevators play --seed 42 --controller nearest
  elevators play --log-file /tmp/elevators.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := mustLoadConfig()

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "elevators")

	seed := resolveSeed()
	h, err := host.New(gameCfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game started", "run", h.ID(), "seed", seed, "controller", gameCfg.Controller)

	width, height := 80, 24
	if w, ht, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = ht
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: gameCfg.TickRate,
		Seed:     seed,
	}

	store := openStore(logger)
	runErr := tui.Run(h, store, cfg, logger)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	res := h.Result()
	fmt.Printf("Run %s: %d ticks, earned %.2f tips with %d floors and %d elevators.\n",
		res.ID, res.Ticks, res.Earned, res.Floors, res.Elevators)
}
