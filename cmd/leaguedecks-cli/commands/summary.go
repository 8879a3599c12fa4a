package commands

import (
	"fmt"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/orchestrator"

	"github.com/spf13/cobra"
)

func init() {
	summaryCmd.Flags().String("date", "", "Date as YYYYMMDD, defaults to yesterday (UTC+9).")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Prints the per category counts of a date.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		dateKey, err := orchestrator.TargetDate(date, chrono.NewStandardImpl())
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		counts, err := a.Orchestrator.Counts(cmd.Context(), dateKey)
		if err != nil {
			return err
		}
		fmt.Println("date:", dateKey)
		printCounts(counts)
		return nil
	},
}
