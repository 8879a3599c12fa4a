package commands

import (
	"fmt"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/orchestrator"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	runCmd.Flags().String("date", "", "Target date as YYYYMMDD, defaults to yesterday (UTC+9).")
	runCmd.Flags().Bool("force", false, "Recollect events and rebuild snapshots that already exist.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the pipeline synchronously and prints the execution record.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		force, _ := cmd.Flags().GetBool("force")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		record, runErr := a.Orchestrator.Run(cmd.Context(), orchestrator.Request{
			Date:  date,
			Force: force,
		})
		if record.ID != "" {
			printExecution(record)
		}
		return runErr
	},
}

func printExecution(record model.ExecutionRecord) {
	t := newTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"id", record.ID},
		{"status", record.Status},
		{"phase", record.Phase},
		{"target date", record.TargetDate},
		{"force", record.Force},
		{"started", record.StartedAt.Format("2006-01-02 15:04:05")},
		{"duration", record.DurationHuman},
	})
	if record.Error != "" {
		t.AppendRow(table.Row{"error", record.Error})
	}
	if record.Summary != nil {
		t.AppendRows([]table.Row{
			{"probed events", record.Summary.ProbedEvents},
			{"new events", record.Summary.NewEvents},
			{"collected rows", record.Summary.CollectedRows},
		})
	}
	t.Render()

	if record.Summary != nil && len(record.Summary.Categories) > 0 {
		printCounts(record.Summary.Categories)
	}
	if len(record.Logs) > 0 {
		fmt.Println("logs:")
		for _, line := range record.Logs {
			fmt.Println("  " + line)
		}
	}
}

func printCounts(counts map[model.Category]model.CategoryCounts) {
	t := newTable()
	t.AppendHeader(table.Row{"Category", "Events", "Rankings", "Deckable", "Images", "Snapshot"})
	for _, category := range model.Categories {
		c := counts[category]
		t.AppendRow(table.Row{category, c.Events, c.Rankings, c.Deckable, c.ImageStored, c.Snapshotted})
	}
	t.Render()
}
