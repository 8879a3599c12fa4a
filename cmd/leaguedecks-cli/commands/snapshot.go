package commands

import (
	"fmt"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/orchestrator"
	"leaguedecks-backend/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	showSnapshotCmd.Flags().String("date", "", "Date as YYYYMMDD, defaults to yesterday (UTC+9).")
	showSnapshotCmd.Flags().String("category", "Open", "One of Open, Senior or Junior.")
	snapshotCmd.AddCommand(showSnapshotCmd)
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspects daily snapshots.",
}

var showSnapshotCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the daily snapshot of a date and category grouped by organizer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		categoryName, _ := cmd.Flags().GetString("category")

		dateKey, err := orchestrator.TargetDate(date, chrono.NewStandardImpl())
		if err != nil {
			return err
		}
		category, err := model.ParseCategory(categoryName)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		snapshot, err := store.GetAs[model.DailySnapshot](
			cmd.Context(),
			a.Store,
			model.SnapshotsCollection,
			model.SnapshotID(dateKey, category),
		)
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", model.SnapshotID(dateKey, category), err)
		}

		fmt.Printf("%s %s (generated %s)\n", snapshot.DateLabel, snapshot.Category, snapshot.GeneratedAt.Format("2006-01-02 15:04"))
		t := newTable()
		t.AppendHeader(table.Row{"Organizer", "Rank", "Player", "Points", "Deck", "Group"})
		for _, group := range snapshot.Groups {
			for _, r := range group.Rankings {
				deck := r.DeckID
				if r.DeckName != "" {
					deck = r.DeckName
				}
				t.AppendRow(table.Row{group.Organizer, r.Rank, r.PlayerLabel, r.Points, deck, r.GroupID})
			}
			t.AppendSeparator()
		}
		t.Render()
		return nil
	},
}
