package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/universal-elevators/internal/game"
	"github.com/vovakirdan/universal-elevators/internal/host"
	"github.com/vovakirdan/universal-elevators/internal/platform/tui"
	"github.com/vovakirdan/universal-elevators/internal/storage"
)

var flagRender bool

var stateCmd = &cobra.Command{
	Use:   "state [run-id]",
	Short: "Print a game state",
	Long: `Without arguments, print the state of a fresh game built from the
current config. With a run ID, print the last state stored for that run.

Examples:
  elevators state
  elevators state --preset easy --render
  elevators state 1f0c6f0e-3c5e-4a53-9b7c-0c1d2e3f4a5b`,
	Args: cobra.MaximumNArgs(1),
	Run:  runState,
}

func init() {
	stateCmd.Flags().BoolVar(&flagRender, "render", false, "Draw the building instead of printing JSON")
}

func runState(_ *cobra.Command, args []string) {
	var state string
	if len(args) == 0 {
		h, err := host.New(mustLoadConfig(), resolveSeed())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		if state, err = h.GetGameState(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
			os.Exit(1)
		}
		snap, err := store.LatestSnapshot(args[0])
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: run %q: %v\n", args[0], err)
			os.Exit(1)
		}
		state = snap.State
	}

	if !flagRender {
		fmt.Println(state)
		return
	}

	var snap game.StateSnapshot
	if err := json.Unmarshal([]byte(state), &snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding state: %v\n", err)
		os.Exit(1)
	}
	height := len(snap.Floors) + 7
	fmt.Println(tui.PlainView(snap, 80, max(height, 12)))
}
