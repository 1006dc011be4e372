package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/universal-elevators/internal/game"
	"github.com/vovakirdan/universal-elevators/internal/host"
	"github.com/vovakirdan/universal-elevators/internal/network"
)

var (
	flagHTTPAddr      string
	flagSnapshotEvery int
	flagManual        bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game over HTTP and websockets",
	Long: `Run one game and expose it over HTTP.

Routes:
  GET  /api/state    - Current state as JSON
  POST /api/tick     - Apply a command JSON object now, returns the new state
  POST /api/command  - Queue a command for the next tick
  GET  /ws           - Websocket stream of states; accepts command objects

The game ticks on its own at the configured tick rate unless --manual is set,
in which case only POST /api/tick advances it. Queued commands, including
those sent over /ws, are merged into that tick.

Examples:
  elevators web
  elevators web --addr :9000 --controller nearest
  elevators web --manual
  curl -s localhost:8080/api/state`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "addr", ":8080", "HTTP listen address")
	webCmd.Flags().IntVar(&flagSnapshotEvery, "snapshot-every", 100, "Store a state snapshot every N ticks (0 disables)")
	webCmd.Flags().BoolVar(&flagManual, "manual", false, "Only advance on POST /api/tick")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "elevators-web")
	gameCfg := mustLoadConfig()

	seed := resolveSeed()
	h, err := host.New(gameCfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game started", "run", h.ID(), "seed", seed, "controller", gameCfg.Controller)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := network.NewHub(logger)
	driver := host.NewDriver(h, gameCfg.TickRate, logger)
	server := network.NewServer(h, driver, hub, logger)

	if store != nil && flagSnapshotEvery > 0 {
		driver.OnTick(func(snap game.StateSnapshot, _ game.TickReport) {
			if snap.Tick%flagSnapshotEvery != 0 {
				return
			}
			data, err := game.MarshalSnapshot(snap)
			if err != nil {
				return
			}
			if _, err := store.SaveSnapshot(h.ID(), snap.Tick, string(data)); err != nil {
				logger.Warn("cannot save snapshot", "tick", snap.Tick, "error", err)
			}
		})
	}

	go hub.Run(ctx)
	if !flagManual {
		go driver.Run(ctx)
	}

	fmt.Printf("Serving run %s on %s\n", h.ID(), flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe(ctx, flagHTTPAddr)
	stop()

	if store != nil && h.Result().Ticks > 0 {
		if err := store.SaveRun(h.Result().Record()); err != nil {
			logger.Warn("cannot save run", "error", err)
		}
	}
	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
