package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/universal-elevators/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the best recorded runs",
	Long: `Display the recorded runs with the most tips earned.

Examples:
  elevators runs
  elevators runs --limit 25
  elevators runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
}

func runRuns(_ *cobra.Command, _ []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		color.Red("Error opening run database: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			color.Red("Error clearing runs: %v", err)
			os.Exit(1)
		}
		color.Green("All runs deleted.")
		return
	}

	runs, err := store.TopRuns(flagRunsLimit)
	if err != nil {
		color.Red("Error retrieving runs: %v", err)
		os.Exit(1)
	}

	titleColor.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		infoColor.Println("No runs recorded yet.")
		fmt.Println("Play 'elevators play' and quit to record one.")
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Earned", "Tips", "Ticks", "Floors", "Elevators", "Controller", "Seed", "Date", "ID"}),
	)
	for i, r := range runs {
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", r.Earned),
			fmt.Sprintf("%.2f", r.Tips),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Floors),
			fmt.Sprintf("%d", r.Elevators),
			r.Controller,
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.ID,
		})
	}
	_ = table.Render()

	stats, err := store.GetStats()
	if err != nil {
		return
	}
	fmt.Println()
	infoColor.Printf("%d runs, %d ticks played, best %.2f, average %.2f\n",
		stats.RunsCount, stats.TotalTicks, stats.BestEarned, stats.AvgEarned)
}
