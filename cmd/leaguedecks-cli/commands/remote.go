package commands

import (
	"fmt"
	"leaguedecks-backend/internal/components/serviceutil"
	leaguedecksv1 "leaguedecks-backend/proto/leaguedecks/v1"
	"leaguedecks-backend/proto/leaguedecks/v1/leaguedecksv1connect"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	remoteURL   string
	remoteToken string
)

func init() {
	remoteCmd.PersistentFlags().StringVar(&remoteURL, "url", "http://localhost:8000", "Base url of a running leaguedecks daemon.")
	remoteCmd.PersistentFlags().StringVar(&remoteToken, "token", "", "Bearer token of the daemon.")

	remoteStartCmd.Flags().String("date", "", "Date as YYYYMMDD, defaults to yesterday (UTC+9).")
	remoteStartCmd.Flags().Bool("force", false, "Re-collect events that already have rankings.")

	remoteCmd.AddCommand(remoteStartCmd)
	remoteCmd.AddCommand(remoteLatestCmd)
	remoteCmd.AddCommand(remoteAssignCmd)
	rootCmd.AddCommand(remoteCmd)
}

func remoteClient() leaguedecksv1connect.LeagueDecksServiceClient {
	var opts []connect.ClientOption
	if remoteToken != "" {
		opts = append(opts, connect.WithInterceptors(serviceutil.ProvideAccessTokenInterceptor(remoteToken)))
	}
	return leaguedecksv1connect.NewInstrumentedLeagueDecksServiceClient(
		leaguedecksv1connect.NewLeagueDecksServiceClient(http.DefaultClient, remoteURL, opts...),
	)
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Talks to a running daemon instead of opening the database.",
}

var remoteStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Triggers a run on the daemon.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		force, _ := cmd.Flags().GetBool("force")

		res, err := remoteClient().StartRun(cmd.Context(), connect.NewRequest(&leaguedecksv1.StartRunRequest{
			Date:  date,
			Force: force,
		}))
		if err != nil {
			return err
		}
		fmt.Println("started execution:", res.Msg.GetExecutionId())
		return nil
	},
}

var remoteLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Prints the daemon's most recently started execution.",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := remoteClient().LatestExecution(cmd.Context(), connect.NewRequest(&leaguedecksv1.LatestExecutionRequest{}))
		if err != nil {
			return err
		}
		e := res.Msg.GetExecution()

		t := newTable()
		t.AppendRow(table.Row{"id", e.GetId()})
		t.AppendRow(table.Row{"status", e.GetStatus()})
		t.AppendRow(table.Row{"phase", e.GetPhase()})
		t.AppendRow(table.Row{"target date", e.GetTargetDate()})
		t.AppendRow(table.Row{"started", time.UnixMilli(e.GetStartedAt()).Format(time.RFC3339)})
		if e.GetEndedAt() != 0 {
			t.AppendRow(table.Row{"duration", e.GetDurationHuman()})
		}
		if e.GetError() != "" {
			t.AppendRow(table.Row{"error", e.GetError()})
		}
		t.Render()

		if e.GetSummary() != nil {
			c := newTable()
			c.AppendHeader(table.Row{"category", "events", "rankings", "deckable", "images", "snapshot"})
			for _, counts := range e.GetSummary().GetCategories() {
				c.AppendRow(table.Row{
					counts.GetCategory(),
					counts.GetEvents(),
					counts.GetRankings(),
					counts.GetDeckable(),
					counts.GetImageStored(),
					counts.GetSnapshotted(),
				})
			}
			c.Render()
		}
		for _, line := range e.GetLogs() {
			fmt.Println(line)
		}
		return nil
	},
}

var remoteAssignCmd = &cobra.Command{
	Use:   "assign <group id>=<deck name>...",
	Short: "Assigns deck names to ranking groups on the daemon.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &leaguedecksv1.AssignDeckNamesRequest{}
		for _, arg := range args {
			groupID, deckName, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("expected <group id>=<deck name>, got %q", arg)
			}
			req.Assignments = append(req.Assignments, &leaguedecksv1.DeckNameAssignment{
				GroupId:  groupID,
				DeckName: deckName,
			})
		}

		res, err := remoteClient().AssignDeckNames(cmd.Context(), connect.NewRequest(req))
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"group", "result", "note"})
		for _, u := range res.Msg.GetUpdated() {
			note := ""
			if u.GetSuggestion() != "" {
				note = "similar to " + u.GetSuggestion()
			}
			t.AppendRow(table.Row{u.GetGroupId(), u.GetDeckName(), note})
		}
		for _, f := range res.Msg.GetFailed() {
			t.AppendRow(table.Row{f.GetGroupId(), "failed", f.GetError()})
		}
		t.Render()
		return nil
	},
}
