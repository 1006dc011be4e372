package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/universal-elevators/internal/host"
)

var flagSaveRun bool

var tickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Drive a game with command JSON lines on stdin",
	Long: `Read one command object per line from stdin, apply it as one tick and
print the resulting state as one JSON line on stdout. Blank lines are skipped.

A command must carry all five boolean fields:
  {"collect_tips":true,"append_floor":false,"append_elevator":false,
   "add_floor_capacity":false,"add_elevator_capacity":false}

A malformed line stops the game: nothing is applied for it and the command
exits with status 1.

Examples:
  elevators tick --seed 7 < commands.jsonl
  elevators tick --save < commands.jsonl    # record the run`,
	Args: cobra.NoArgs,
	Run:  runTick,
}

func init() {
	tickCmd.Flags().BoolVar(&flagSaveRun, "save", false, "Record the run in the database at the end of input")
}

func runTick(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "elevators")
	gameCfg := mustLoadConfig()

	h, err := host.New(gameCfg, resolveSeed())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	line := 0
	for scanner.Scan() {
		line++
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if _, err := h.UpdateGameState(input); err != nil {
			out.Flush()
			fmt.Fprintf(os.Stderr, "Error: line %d: %v\n", line, err)
			os.Exit(1)
		}
		state, err := h.GetGameState()
		if err != nil {
			out.Flush()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(out, state)
	}
	if err := scanner.Err(); err != nil {
		out.Flush()
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if flagSaveRun {
		store := openStore(logger)
		if store == nil {
			return
		}
		defer store.Close()
		res := h.Result()
		if err := store.SaveRun(res.Record()); err != nil {
			logger.Error("cannot save run", "error", err)
			return
		}
		logger.Info("run saved", "id", res.ID, "ticks", res.Ticks)
	}
}
